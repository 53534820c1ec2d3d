package repository

import "farmhub/entities"

type TaskRepository interface {
	ListByOwner(ownerID string) ([]entities.Task, error)
	Create(t *entities.Task) error
	FindOwned(id uint, ownerID string) (*entities.Task, error)
	Save(t *entities.Task) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
