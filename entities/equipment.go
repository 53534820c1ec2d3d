package entities

import "time"

type Equipment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	OwnerID      string     `gorm:"index" json:"ownerId"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`   // tractor|harvester|irrigation|vehicle|tool|other
	Status       string     `json:"status"` // operational|maintenance|broken|retired
	PurchaseDate *time.Time `json:"purchaseDate"`
	LastServiced *time.Time `json:"lastServiced"`
	Notes        string     `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Equipment) TableName() string { return "equipment" }
