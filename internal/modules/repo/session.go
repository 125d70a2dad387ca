package repo

import (
	"context"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"gorm.io/gorm"
)

type SessionRepo interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id uint) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	ArchiveCurrent(ctx context.Context, s *model.Session, at time.Time) (int64, error)
}

type sessionRepo struct{ db *gorm.DB }

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) Get(ctx context.Context, id uint) (*model.Session, error) {
	var s model.Session
	if err := r.withTaskCount(ctx).Where("sessions.id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var items []model.Session
	return items, r.withTaskCount(ctx).Order("sessions.created_at DESC, sessions.id DESC").Find(&items).Error
}

// ArchiveCurrent inserts s and moves every current task into it inside one
// transaction. The conditional UPDATE claims rows atomically: a task taken by
// a concurrent archive no longer matches "session_id IS NULL".
func (r *sessionRepo) ArchiveCurrent(ctx context.Context, s *model.Session, at time.Time) (int64, error) {
	var moved int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Task{}).
			Where("session_id IS NULL").
			Updates(map[string]any{
				"session_id": s.ID,
				"updated_at": at.UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.TaskCount = moved
	return moved, nil
}

func (r *sessionRepo) withTaskCount(ctx context.Context) *gorm.DB {
	count := r.db.Model(&model.Task{}).Select("COUNT(*)").Where("tasks.session_id = sessions.id")
	return r.db.WithContext(ctx).Model(&model.Session{}).Select("sessions.*, (?) AS task_count", count)
}
