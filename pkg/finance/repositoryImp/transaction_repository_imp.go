package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/finance/repository"
)

type transactionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TransactionRepository { return &transactionRepo{db} }

func (r *transactionRepo) ListByOwner(ownerID string) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := r.db.Where("owner_id = ?", ownerID).Order("date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *transactionRepo) Create(tx *entities.Transaction) error { return r.db.Create(tx).Error }

func (r *transactionRepo) FindOwned(id uint, ownerID string) (*entities.Transaction, error) {
	var tx entities.Transaction
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) Save(tx *entities.Transaction) error { return r.db.Save(tx).Error }

func (r *transactionRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Transaction{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
