package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) ListByOwner(ownerID string) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindOwned(id uint, ownerID string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Save(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Field{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
