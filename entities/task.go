package entities

import "time"

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OwnerID     string     `gorm:"index" json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"` // planting|irrigation|fertilizing|harvesting|maintenance|other
	Status      string     `json:"status"`   // pending|in_progress|completed
	Priority    string     `json:"priority"` // low|medium|high
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       string     `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
