package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	dbpkg "github.com/Shreyaj-Padigala/ProSolve/internal/infra/db"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{Database: config.DBCfg{
		DSN:     filepath.Join(t.TempDir(), "prosolve_test.db"),
		MaxOpen: 8,
	}}
	d, err := dbpkg.New(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(d))
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seedTask(t *testing.T, r TaskRepo, name string, createdAt time.Time) *model.Task {
	t.Helper()
	task := &model.Task{Name: name, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, r.Create(context.Background(), task))
	return task
}

func ids(tasks []model.Task) []uint {
	out := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
