package entities

import "time"

type Field struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OwnerID   string  `gorm:"index" json:"ownerId"`
	Name      string  `json:"name"`
	SizeAcres float64 `json:"sizeAcres"`
	SoilType  string  `json:"soilType"` // clay|loam|sand|silt|peat
	Location  string  `json:"location"`
	Status    string  `json:"status"` // active|fallow|preparation
	Notes     string  `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
