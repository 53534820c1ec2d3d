package repository

import "farmhub/entities"

type FieldRepository interface {
	ListByOwner(ownerID string) ([]entities.Field, error)
	Create(f *entities.Field) error
	FindOwned(id uint, ownerID string) (*entities.Field, error)
	Save(f *entities.Field) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
