package entities

import "time"

type Crop struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	OwnerID         string     `gorm:"index" json:"ownerId"`
	Name            string     `json:"name"`
	Variety         string     `json:"variety"`
	FieldName       string     `json:"fieldName"` // loose reference by name, not a key
	Status          string     `json:"status"`    // planned|planted|growing|harvested
	PlantingDate    *time.Time `json:"plantingDate"`
	ExpectedHarvest *time.Time `json:"expectedHarvest"`
	AreaAcres       *float64   `json:"areaAcres"`
	Notes           string     `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
