package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/equipment/repository"
)

type equipmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EquipmentRepository { return &equipmentRepo{db} }

func (r *equipmentRepo) ListByOwner(ownerID string) ([]entities.Equipment, error) {
	var out []entities.Equipment
	if err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *equipmentRepo) Create(eq *entities.Equipment) error { return r.db.Create(eq).Error }

func (r *equipmentRepo) FindOwned(id uint, ownerID string) (*entities.Equipment, error) {
	var eq entities.Equipment
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&eq).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *equipmentRepo) Save(eq *entities.Equipment) error { return r.db.Save(eq).Error }

func (r *equipmentRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Equipment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
