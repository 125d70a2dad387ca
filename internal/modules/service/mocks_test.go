package service

import (
	"context"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/blob"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/civilday"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepo is a mock implementation of TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Get(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) list(args mock.Arguments) ([]model.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	return m.list(m.Called(ctx))
}

func (m *MockTaskRepo) ListCurrent(ctx context.Context) ([]model.Task, error) {
	return m.list(m.Called(ctx))
}

func (m *MockTaskRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	return m.list(m.Called(ctx, start, end))
}

func (m *MockTaskRepo) ListCreatedOutside(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	return m.list(m.Called(ctx, start, end))
}

func (m *MockTaskRepo) ListBySession(ctx context.Context, sessionID uint) ([]model.Task, error) {
	return m.list(m.Called(ctx, sessionID))
}

// MockSessionRepo is a mock implementation of SessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id uint) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepo) List(ctx context.Context) ([]model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionRepo) ArchiveCurrent(ctx context.Context, s *model.Session, at time.Time) (int64, error) {
	args := m.Called(ctx, s, at)
	return args.Get(0).(int64), args.Error(1)
}

// MockSnapshotStore is a mock implementation of SnapshotStore
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) PutJSON(ctx context.Context, key string, data any) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, key, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

// MockProvider is a mock implementation of llm.Provider
type MockProvider struct {
	mock.Mock
	name, model string
}

func (m *MockProvider) Name() string  { return m.name }
func (m *MockProvider) Model() string { return m.model }

func (m *MockProvider) GenerateJSON(ctx context.Context, system string, payload map[string]any) (map[string]any, error) {
	args := m.Called(ctx, system, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockAnalysisCache is a mock implementation of AnalysisCache
type MockAnalysisCache struct {
	mock.Mock
}

func (m *MockAnalysisCache) Get(ctx context.Context, key string) (map[string]any, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(map[string]any), args.Bool(1), args.Error(2)
}

func (m *MockAnalysisCache) Set(ctx context.Context, key string, v map[string]any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

// 2024-06-01 23:50 in Chicago (CDT, UTC-5)
var fixedNow = time.Date(2024, 6, 2, 4, 50, 0, 0, time.UTC)

func testCalendar() *civilday.Calendar {
	cal, err := civilday.New("America/Chicago")
	if err != nil {
		panic(err)
	}
	return cal.WithClock(func() time.Time { return fixedNow })
}
