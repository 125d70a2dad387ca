package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/repo"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/civilday"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, id uint, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]model.Task, error)
	ListCurrent(ctx context.Context) ([]model.Task, error)
	ListToday(ctx context.Context) ([]model.Task, error)
	ListForDay(ctx context.Context, t time.Time) ([]model.Task, error)
	ListHistory(ctx context.Context) (map[string][]model.Task, error)
	ListForSession(ctx context.Context, sessionID uint) ([]model.Task, error)
	ListForDayLabel(ctx context.Context, label string) ([]model.Task, error)
}

type taskService struct {
	tasks    repo.TaskRepo
	sessions repo.SessionRepo
	cal      *civilday.Calendar
	log      *zap.Logger
}

func NewTaskService(tasks repo.TaskRepo, sessions repo.SessionRepo, cal *civilday.Calendar, log *zap.Logger) TaskService {
	return &taskService{
		tasks:    tasks,
		sessions: sessions,
		cal:      cal,
		log:      log,
	}
}

type CreateTaskInput struct {
	Name         string
	Description  string
	TargetMarket string
	Timeline     string
	Resources    *string
	Assumptions  []string
	AIAnalysis   map[string]any
	Metadata     map[string]any
	// CreatedAt overrides the creation instant, e.g. when importing.
	CreatedAt *time.Time
}

// UpdateTaskInput carries only the fields being changed; nil means keep.
type UpdateTaskInput struct {
	Name         *string
	Description  *string
	TargetMarket *string
	Timeline     *string
	Resources    *string
	Assumptions  *[]string
	AIAnalysis   *map[string]any
	Metadata     *map[string]any
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}

	now := s.cal.Now()
	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.UTC()
	}

	assumptions := in.Assumptions
	if assumptions == nil {
		assumptions = []string{}
	}

	t := &model.Task{
		Name:         name,
		Description:  in.Description,
		TargetMarket: in.TargetMarket,
		Timeline:     in.Timeline,
		Resources:    in.Resources,
		Assumptions:  datatypes.JSONSlice[string](assumptions),
		AIAnalysis:   jsonMap(in.AIAnalysis),
		Metadata:     jsonMap(in.Metadata),
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, storeErr("create task", err)
	}
	return t, nil
}

func (s *taskService) Update(ctx context.Context, id uint, in UpdateTaskInput) (*model.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, notFound("task", id, err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		t.Name = name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.TargetMarket != nil {
		t.TargetMarket = *in.TargetMarket
	}
	if in.Timeline != nil {
		t.Timeline = *in.Timeline
	}
	if in.Resources != nil {
		t.Resources = in.Resources
	}
	if in.Assumptions != nil {
		t.Assumptions = datatypes.JSONSlice[string](*in.Assumptions)
	}
	if in.AIAnalysis != nil {
		t.AIAnalysis = jsonMap(*in.AIAnalysis)
	}
	if in.Metadata != nil {
		t.Metadata = jsonMap(*in.Metadata)
	}
	t.UpdatedAt = s.cal.Now()

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, notFound("task", id, err)
	}

	// re-read so session_id reflects any archive that raced this update
	fresh, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, notFound("task", id, err)
	}
	return fresh, nil
}

func (s *taskService) Delete(ctx context.Context, id uint) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return notFound("task", id, err)
	}
	return nil
}

func (s *taskService) ListAll(ctx context.Context) ([]model.Task, error) {
	rows, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list tasks", err)
	}
	return rows, nil
}

func (s *taskService) ListCurrent(ctx context.Context) ([]model.Task, error) {
	rows, err := s.tasks.ListCurrent(ctx)
	if err != nil {
		return nil, storeErr("list current tasks", err)
	}
	return rows, nil
}

func (s *taskService) ListToday(ctx context.Context) ([]model.Task, error) {
	return s.ListForDay(ctx, s.cal.Now())
}

func (s *taskService) ListForDay(ctx context.Context, t time.Time) ([]model.Task, error) {
	start, end := s.cal.Bounds(t)
	rows, err := s.tasks.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, storeErr("list tasks for day", err)
	}
	return rows, nil
}

// ListHistory groups every task outside today's bucket by its civil date.
// Each group keeps newest-first order.
func (s *taskService) ListHistory(ctx context.Context) (map[string][]model.Task, error) {
	start, end := s.cal.Today()
	rows, err := s.tasks.ListCreatedOutside(ctx, start, end)
	if err != nil {
		return nil, storeErr("list task history", err)
	}

	groups := make(map[string][]model.Task)
	for _, t := range rows {
		label := s.cal.Label(t.CreatedAt)
		groups[label] = append(groups[label], t)
	}
	return groups, nil
}

func (s *taskService) ListForSession(ctx context.Context, sessionID uint) ([]model.Task, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, notFound("session", sessionID, err)
	}
	rows, err := s.tasks.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, storeErr("list session tasks", err)
	}
	return rows, nil
}

func (s *taskService) ListForDayLabel(ctx context.Context, label string) ([]model.Task, error) {
	start, end, err := s.cal.ParseLabel(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	rows, err := s.tasks.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, storeErr("list tasks for "+label, err)
	}
	return rows, nil
}

func jsonMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}
