package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/blob"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestSessionService_Create(t *testing.T) {
	ctx := context.Background()
	note := "board prep"

	tests := []struct {
		name     string
		in       CreateSessionInput
		wantName string
	}{
		{name: "default name", in: CreateSessionInput{}, wantName: "Session 2024-06-02 04:50"},
		{name: "blank name falls back", in: CreateSessionInput{Name: strPtr("  ")}, wantName: "Session 2024-06-02 04:50"},
		{name: "explicit name", in: CreateSessionInput{Name: strPtr("Q3 planning"), Note: &note}, wantName: "Q3 planning"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &MockSessionRepo{}
			sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Return(nil)
			svc := NewSessionService(sessions, &MockTaskRepo{}, testCalendar(), zap.NewNop(), nil)

			got, err := svc.Create(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, fixedNow, got.CreatedAt)
			assert.Equal(t, tt.in.Note, got.Note)
			sessions.AssertExpectations(t)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		sessions := &MockSessionRepo{}
		sessions.On("Create", ctx, mock.Anything).Return(errors.New("database is locked"))
		svc := NewSessionService(sessions, &MockTaskRepo{}, testCalendar(), zap.NewNop(), nil)

		_, err := svc.Create(ctx, CreateSessionInput{})
		assert.ErrorContains(t, err, "database is locked")
		assert.ErrorIs(t, err, ErrStore)
	})
}

func TestSessionService_Archive(t *testing.T) {
	ctx := context.Background()

	archiveOK := func(sessions *MockSessionRepo, moved int64) {
		sessions.On("ArchiveCurrent", ctx, mock.AnythingOfType("*model.Session"), fixedNow).
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*model.Session)
				s.ID = 5
				s.TaskCount = moved
			}).
			Return(moved, nil)
	}

	t.Run("without blob storage", func(t *testing.T) {
		sessions, tasks := &MockSessionRepo{}, &MockTaskRepo{}
		archiveOK(sessions, 2)
		svc := NewSessionService(sessions, tasks, testCalendar(), zap.NewNop(), nil)

		got, err := svc.Archive(ctx, CreateSessionInput{Name: strPtr("Friday")})
		require.NoError(t, err)
		assert.Equal(t, uint(5), got.ID)
		assert.Equal(t, "Friday", got.Name)
		assert.Equal(t, int64(2), got.TaskCount)
		tasks.AssertNotCalled(t, "ListBySession", mock.Anything, mock.Anything)
	})

	t.Run("empty archive", func(t *testing.T) {
		sessions := &MockSessionRepo{}
		archiveOK(sessions, 0)
		svc := NewSessionService(sessions, &MockTaskRepo{}, testCalendar(), zap.NewNop(), nil)

		got, err := svc.Archive(ctx, CreateSessionInput{})
		require.NoError(t, err)
		assert.Equal(t, "Session 2024-06-02 04:50", got.Name)
		assert.Zero(t, got.TaskCount)
	})

	t.Run("uploads snapshot", func(t *testing.T) {
		sessions, tasks, store := &MockSessionRepo{}, &MockTaskRepo{}, &MockSnapshotStore{}
		archiveOK(sessions, 1)
		tasks.On("ListBySession", ctx, uint(5)).Return([]model.Task{{ID: 9, Name: "a"}}, nil)
		store.On("PutJSON", ctx, "sessions/5/snapshot.json", mock.MatchedBy(func(v sessionSnapshot) bool {
			return v.Session.ID == 5 && len(v.Tasks) == 1 && v.Tasks[0].ID == 9
		})).Return(&blob.UploadedMeta{Key: "sessions/5/snapshot.json"}, nil)

		svc := NewSessionService(sessions, tasks, testCalendar(), zap.NewNop(), store)
		_, err := svc.Archive(ctx, CreateSessionInput{})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("snapshot failure does not fail the archive", func(t *testing.T) {
		sessions, tasks, store := &MockSessionRepo{}, &MockTaskRepo{}, &MockSnapshotStore{}
		archiveOK(sessions, 1)
		tasks.On("ListBySession", ctx, uint(5)).Return([]model.Task{}, nil)
		store.On("PutJSON", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("AccessDenied"))

		svc := NewSessionService(sessions, tasks, testCalendar(), zap.NewNop(), store)
		got, err := svc.Archive(ctx, CreateSessionInput{})
		require.NoError(t, err)
		assert.Equal(t, uint(5), got.ID)
	})

	t.Run("transaction failure", func(t *testing.T) {
		sessions, store := &MockSessionRepo{}, &MockSnapshotStore{}
		sessions.On("ArchiveCurrent", ctx, mock.Anything, mock.Anything).Return(int64(0), errors.New("rollback"))

		svc := NewSessionService(sessions, &MockTaskRepo{}, testCalendar(), zap.NewNop(), store)
		_, err := svc.Archive(ctx, CreateSessionInput{})
		assert.ErrorContains(t, err, "archive current tasks")
		store.AssertNotCalled(t, "PutJSON", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSessionService_Get(t *testing.T) {
	ctx := context.Background()
	sessions := &MockSessionRepo{}
	sessions.On("Get", ctx, uint(1)).Return(&model.Session{ID: 1, TaskCount: 3}, nil)
	sessions.On("Get", ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewSessionService(sessions, &MockTaskRepo{}, testCalendar(), zap.NewNop(), nil)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TaskCount)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
