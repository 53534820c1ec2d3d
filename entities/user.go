package entities

import "time"

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"` // stored lowercased
	Password     string     `json:"-"`                        // bcrypt hash, never serialized
	FarmName     string     `json:"farmName"`
	FarmLocation string     `json:"farmLocation"`
	FarmSize     *float64   `json:"farmSize"` // acres
	Phone        string     `json:"phone"`
	Role         string     `json:"role"` // owner
	LastLogin    *time.Time `json:"lastLogin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
