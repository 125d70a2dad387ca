package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/blob"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/repo"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/civilday"
	"go.uber.org/zap"
)

type SessionService interface {
	Create(ctx context.Context, in CreateSessionInput) (*model.Session, error)
	Archive(ctx context.Context, in CreateSessionInput) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	Get(ctx context.Context, id uint) (*model.Session, error)
}

// SnapshotStore receives a JSON copy of every archived session.
type SnapshotStore interface {
	PutJSON(ctx context.Context, key string, data any) (*blob.UploadedMeta, error)
}

type sessionService struct {
	sessions  repo.SessionRepo
	tasks     repo.TaskRepo
	cal       *civilday.Calendar
	log       *zap.Logger
	snapshots SnapshotStore
}

// NewSessionService wires the session store. snapshots may be nil, in which
// case archives are not copied to blob storage.
func NewSessionService(sessions repo.SessionRepo, tasks repo.TaskRepo, cal *civilday.Calendar, log *zap.Logger, snapshots SnapshotStore) SessionService {
	return &sessionService{
		sessions:  sessions,
		tasks:     tasks,
		cal:       cal,
		log:       log,
		snapshots: snapshots,
	}
}

type CreateSessionInput struct {
	Name *string
	Note *string
}

const defaultNameLayout = "2006-01-02 15:04"

func (s *sessionService) newSession(in CreateSessionInput) *model.Session {
	now := s.cal.Now()
	name := ""
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}
	if name == "" {
		name = "Session " + now.Format(defaultNameLayout)
	}
	return &model.Session{Name: name, Note: in.Note, CreatedAt: now}
}

func (s *sessionService) Create(ctx context.Context, in CreateSessionInput) (*model.Session, error) {
	ss := s.newSession(in)
	if err := s.sessions.Create(ctx, ss); err != nil {
		return nil, storeErr("create session", err)
	}
	return ss, nil
}

// Archive creates a session and moves every current task into it in one
// transaction. With no current tasks the session is created empty.
func (s *sessionService) Archive(ctx context.Context, in CreateSessionInput) (*model.Session, error) {
	ss := s.newSession(in)
	moved, err := s.sessions.ArchiveCurrent(ctx, ss, ss.CreatedAt)
	if err != nil {
		return nil, storeErr("archive current tasks", err)
	}
	s.log.Info("archived current tasks",
		zap.Uint("session_id", ss.ID),
		zap.String("name", ss.Name),
		zap.Int64("moved", moved))

	if s.snapshots != nil {
		s.uploadSnapshot(ctx, ss)
	}
	return ss, nil
}

type sessionSnapshot struct {
	Session *model.Session `json:"session"`
	Tasks   []model.Task   `json:"tasks"`
}

// uploadSnapshot never fails the archive; the rows are already committed.
func (s *sessionService) uploadSnapshot(ctx context.Context, ss *model.Session) {
	tasks, err := s.tasks.ListBySession(ctx, ss.ID)
	if err != nil {
		s.log.Warn("snapshot: list session tasks", zap.Uint("session_id", ss.ID), zap.Error(err))
		return
	}
	key := fmt.Sprintf("sessions/%d/snapshot.json", ss.ID)
	meta, err := s.snapshots.PutJSON(ctx, key, sessionSnapshot{Session: ss, Tasks: tasks})
	if err != nil {
		s.log.Warn("snapshot: upload", zap.String("key", key), zap.Error(err))
		return
	}
	s.log.Debug("snapshot uploaded", zap.String("key", meta.Key), zap.Int64("size", meta.SizeB))
}

func (s *sessionService) List(ctx context.Context) ([]model.Session, error) {
	items, err := s.sessions.List(ctx)
	if err != nil {
		return nil, storeErr("list sessions", err)
	}
	return items, nil
}

func (s *sessionService) Get(ctx context.Context, id uint) (*model.Session, error) {
	ss, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, notFound("session", id, err)
	}
	return ss, nil
}
