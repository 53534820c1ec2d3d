package entities

import "time"

type InventoryItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OwnerID    string   `gorm:"index" json:"ownerId"`
	Name       string   `json:"name"`
	Category   string   `json:"category"` // seeds|fertilizer|pesticide|feed|fuel|tools|other
	Quantity   float64  `json:"quantity"`
	Unit       string   `json:"unit"`
	LowStockAt *float64 `json:"lowStockAt"` // restock threshold, same unit as Quantity
	Notes      string   `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (InventoryItem) TableName() string { return "inventory_items" }
