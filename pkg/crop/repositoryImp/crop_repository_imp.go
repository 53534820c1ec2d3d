package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) ListByOwner(ownerID string) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) Create(cr *entities.Crop) error { return r.db.Create(cr).Error }

func (r *cropRepo) FindOwned(id uint, ownerID string) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *cropRepo) Save(cr *entities.Crop) error { return r.db.Save(cr).Error }

func (r *cropRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Crop{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
