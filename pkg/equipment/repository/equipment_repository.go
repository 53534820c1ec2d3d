package repository

import "farmhub/entities"

type EquipmentRepository interface {
	ListByOwner(ownerID string) ([]entities.Equipment, error)
	Create(eq *entities.Equipment) error
	FindOwned(id uint, ownerID string) (*entities.Equipment, error)
	Save(eq *entities.Equipment) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
