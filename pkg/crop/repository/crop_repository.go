package repository

import "farmhub/entities"

type CropRepository interface {
	ListByOwner(ownerID string) ([]entities.Crop, error)
	Create(cr *entities.Crop) error
	// FindOwned filters by id AND owner so a cross-owner id behaves
	// exactly like a missing one.
	FindOwned(id uint, ownerID string) (*entities.Crop, error)
	Save(cr *entities.Crop) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
