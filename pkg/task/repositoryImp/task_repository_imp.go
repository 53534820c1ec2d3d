package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

// ListByOwner orders by due date; undated tasks sort last in SQLite.
func (r *taskRepo) ListByOwner(ownerID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("owner_id = ?", ownerID).Order("due_date IS NULL, due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) FindOwned(id uint, ownerID string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Save(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) DeleteOwned(id uint, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
