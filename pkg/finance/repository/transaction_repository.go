package repository

import "farmhub/entities"

type TransactionRepository interface {
	ListByOwner(ownerID string) ([]entities.Transaction, error)
	Create(tx *entities.Transaction) error
	FindOwned(id uint, ownerID string) (*entities.Transaction, error)
	Save(tx *entities.Transaction) error
	DeleteOwned(id uint, ownerID string) (bool, error)
}
