package handler

import (
	"context"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, in service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id uint, in service.UpdateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) tasks(args mock.Arguments) ([]model.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) ListAll(ctx context.Context) ([]model.Task, error) {
	return m.tasks(m.Called(ctx))
}

func (m *MockTaskService) ListCurrent(ctx context.Context) ([]model.Task, error) {
	return m.tasks(m.Called(ctx))
}

func (m *MockTaskService) ListToday(ctx context.Context) ([]model.Task, error) {
	return m.tasks(m.Called(ctx))
}

func (m *MockTaskService) ListForDay(ctx context.Context, t time.Time) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, t))
}

func (m *MockTaskService) ListHistory(ctx context.Context) (map[string][]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Task), args.Error(1)
}

func (m *MockTaskService) ListForSession(ctx context.Context, sessionID uint) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, sessionID))
}

func (m *MockTaskService) ListForDayLabel(ctx context.Context, label string) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, label))
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, in service.CreateSessionInput) (*model.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) Archive(ctx context.Context, in service.CreateSessionInput) (*model.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context) ([]model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id uint) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, scenario string, extra map[string]any) (map[string]any, error) {
	args := m.Called(ctx, scenario, extra)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAnalysisService) Calls() int64 {
	return int64(m.Called().Int(0))
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
