package repository

import "farmhub/entities"

type InventoryRepository interface {
	ListByOwner(ownerID string) ([]entities.InventoryItem, error)
	Create(it *entities.InventoryItem) error
	FindOwned(id uint, ownerID string) (*entities.InventoryItem, error)
	Save(it *entities.InventoryItem) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
