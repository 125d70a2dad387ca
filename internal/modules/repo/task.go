package repo

import (
	"context"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"gorm.io/gorm"
)

const newestFirst = "created_at DESC, id DESC"

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	Get(ctx context.Context, id uint) (*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]model.Task, error)
	ListCurrent(ctx context.Context) ([]model.Task, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Task, error)
	ListCreatedOutside(ctx context.Context, start, end time.Time) ([]model.Task, error)
	ListBySession(ctx context.Context, sessionID uint) ([]model.Task, error)
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) Get(ctx context.Context, id uint) (*model.Task, error) {
	var t model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Update writes only model.UpdatableColumns, so an archive that lands between
// the caller's read and this write is never undone.
func (r *taskRepo) Update(ctx context.Context, t *model.Task) error {
	res := r.db.WithContext(ctx).Model(t).Select(model.UpdatableColumns).Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	var items []model.Task
	return items, r.db.WithContext(ctx).Order(newestFirst).Find(&items).Error
}

func (r *taskRepo) ListCurrent(ctx context.Context) ([]model.Task, error) {
	var items []model.Task
	return items, r.db.WithContext(ctx).Where("session_id IS NULL").Order(newestFirst).Find(&items).Error
}

// ListCreatedBetween returns tasks with start <= created_at < end.
func (r *taskRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	var items []model.Task
	return items, r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
		Order(newestFirst).
		Find(&items).Error
}

// ListCreatedOutside is the complement of ListCreatedBetween.
func (r *taskRepo) ListCreatedOutside(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	var items []model.Task
	return items, r.db.WithContext(ctx).
		Where("created_at < ? OR created_at >= ?", start.UTC(), end.UTC()).
		Order(newestFirst).
		Find(&items).Error
}

func (r *taskRepo) ListBySession(ctx context.Context, sessionID uint) ([]model.Task, error) {
	var items []model.Task
	return items, r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order(newestFirst).Find(&items).Error
}
