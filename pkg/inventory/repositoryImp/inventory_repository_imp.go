package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/inventory/repository"
)

type inventoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db} }

func (r *inventoryRepo) ListByOwner(ownerID string) ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) Create(it *entities.InventoryItem) error { return r.db.Create(it).Error }

func (r *inventoryRepo) FindOwned(id uint, ownerID string) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *inventoryRepo) Save(it *entities.InventoryItem) error { return r.db.Save(it).Error }

func (r *inventoryRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.InventoryItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
