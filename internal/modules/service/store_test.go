package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	dbpkg "github.com/Shreyaj-Padigala/ProSolve/internal/infra/db"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

type stores struct {
	tasks    TaskService
	sessions SessionService
}

func newStores(t *testing.T) stores {
	t.Helper()
	d, err := dbpkg.New(&config.Config{Database: config.DBCfg{
		DSN:     filepath.Join(t.TempDir(), "service_test.db"),
		MaxOpen: 4,
	}}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(d))
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tr, sr := repo.NewTaskRepo(d), repo.NewSessionRepo(d)
	cal := testCalendar()
	return stores{
		tasks:    NewTaskService(tr, sr, cal, zap.NewNop()),
		sessions: NewSessionService(sr, tr, cal, zap.NewNop(), nil),
	}
}

func TestStores_TodayAndHistoryPartitionAllTasks(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	// offsets from fixedNow, which is 23:50 local on June 1
	for i, offset := range []time.Duration{
		0,
		-23 * time.Hour,  // 00:50 local, still June 1
		-24 * time.Hour,  // 23:50 local May 31
		10 * time.Minute, // 00:00 local June 2
		-48 * time.Hour,
		-30 * 24 * time.Hour,
	} {
		at := fixedNow.Add(offset)
		_, err := s.tasks.Create(ctx, CreateTaskInput{Name: string(rune('a' + i)), CreatedAt: &at})
		require.NoError(t, err)
	}

	all, err := s.tasks.ListAll(ctx)
	require.NoError(t, err)
	today, err := s.tasks.ListToday(ctx)
	require.NoError(t, err)
	history, err := s.tasks.ListHistory(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, taskNames(today))
	assert.Equal(t, []string{"d"}, taskNames(history["2024-06-02"]))
	assert.Equal(t, []string{"c"}, taskNames(history["2024-05-31"]))
	assert.NotContains(t, history, "2024-06-01")

	seen := map[uint]bool{}
	for _, tk := range today {
		seen[tk.ID] = true
	}
	for _, group := range history {
		for _, tk := range group {
			require.False(t, seen[tk.ID], "task %d in two buckets", tk.ID)
			seen[tk.ID] = true
		}
	}
	assert.Len(t, seen, len(all))

	// the label view agrees with today's bucket
	byLabel, err := s.tasks.ListForDayLabel(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, taskIDs(today), taskIDs(byLabel))
}

func TestStores_ArchiveLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	a, err := s.tasks.Create(ctx, CreateTaskInput{Name: "a"})
	require.NoError(t, err)
	_, err = s.tasks.Create(ctx, CreateTaskInput{Name: "b"})
	require.NoError(t, err)

	archived, err := s.sessions.Archive(ctx, CreateSessionInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), archived.TaskCount)

	current, err := s.tasks.ListCurrent(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	// updating an archived task keeps it archived
	updated, err := s.tasks.Update(ctx, a.ID, UpdateTaskInput{Name: strPtr("a2")})
	require.NoError(t, err)
	require.NotNil(t, updated.SessionID)
	assert.Equal(t, archived.ID, *updated.SessionID)
	assert.True(t, a.CreatedAt.Equal(updated.CreatedAt))

	members, err := s.tasks.ListForSession(ctx, archived.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a2", "b"}, taskNames(members))

	_, err = s.tasks.ListForSession(ctx, archived.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.tasks.Delete(ctx, a.ID))
	assert.ErrorIs(t, s.tasks.Delete(ctx, a.ID), ErrNotFound)
	_, err = s.tasks.Update(ctx, a.ID, UpdateTaskInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.sessions.Get(ctx, archived.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TaskCount)
}

// Any interleaving of creates and archives leaves every task in exactly one
// place, and never moves an archived task again.
func TestStores_ArchiveInterleavingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		s := newStores(t)

		owner := map[uint]uint{} // task id -> session id, 0 while current
		steps := rapid.SliceOfN(rapid.Bool(), 1, 12).Draw(rt, "steps")
		for i, archive := range steps {
			if !archive {
				tk, err := s.tasks.Create(ctx, CreateTaskInput{Name: "t"})
				if err != nil {
					rt.Fatalf("create %d: %v", i, err)
				}
				owner[tk.ID] = 0
				continue
			}
			ss, err := s.sessions.Archive(ctx, CreateSessionInput{})
			if err != nil {
				rt.Fatalf("archive %d: %v", i, err)
			}
			var want int64
			for id, sid := range owner {
				if sid == 0 {
					owner[id] = ss.ID
					want++
				}
			}
			if ss.TaskCount != want {
				rt.Fatalf("archive %d moved %d tasks, want %d", i, ss.TaskCount, want)
			}
		}

		all, err := s.tasks.ListAll(ctx)
		if err != nil {
			rt.Fatal(err)
		}
		if len(all) != len(owner) {
			rt.Fatalf("have %d tasks, want %d", len(all), len(owner))
		}
		for _, tk := range all {
			var got uint
			if tk.SessionID != nil {
				got = *tk.SessionID
			}
			if got != owner[tk.ID] {
				rt.Fatalf("task %d owned by %d, want %d", tk.ID, got, owner[tk.ID])
			}
		}
	})
}

func taskNames(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}
