package db

import (
	"path/filepath"
	"testing"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dsn      string
		wantName string
		wantErr  bool
	}{
		{dsn: "postgres://u:p@localhost:5432/prosolve", wantName: "postgres"},
		{dsn: "postgresql://localhost/prosolve", wantName: "postgres"},
		{dsn: "host=localhost user=u dbname=prosolve", wantName: "postgres"},
		{dsn: "file::memory:?cache=shared", wantName: "sqlite"},
		{dsn: ":memory:", wantName: "sqlite"},
		{dsn: "", wantErr: true},
		{dsn: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			d, err := Dialector(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestSqlitePath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "in-memory keeps no WAL",
			dsn:  ":memory:",
			want: ":memory:?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate",
		},
		{
			name: "shared memory appends with ampersand",
			dsn:  "file:x?mode=memory&cache=shared",
			want: "file:x?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate",
		},
		{
			name: "sqlalchemy style absolute path",
			dsn:  "sqlite:///" + filepath.Join(dir, "a.db"),
			want: filepath.Join(dir, "a.db") + "?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate&_journal_mode=WAL",
		},
		{
			name: "bare path creates parent directory",
			dsn:  filepath.Join(dir, "nested", "b.db"),
			want: filepath.Join(dir, "nested", "b.db") + "?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate&_journal_mode=WAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sqlitePath(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.DirExists(t, filepath.Join(dir, "nested"))
}

func TestNewAndMigrate(t *testing.T) {
	cfg := &config.Config{Database: config.DBCfg{
		DSN:     "sqlite:///" + filepath.Join(t.TempDir(), "prosolve.db"),
		MaxOpen: 4,
	}}

	d, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(d))

	assert.True(t, d.Migrator().HasTable(&model.Session{}))
	assert.True(t, d.Migrator().HasTable(&model.Task{}))
	assert.True(t, d.Migrator().HasIndex(&model.Task{}, "ix_tasks_session_id"))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/prosolve", RedactDSN("postgres://app:s3cret@db:5432/prosolve"))
	assert.Equal(t, "host=db user=app password=xxxxx dbname=prosolve", RedactDSN("host=db user=app password=s3cret dbname=prosolve"))
	assert.Equal(t, "sqlite://./data/prosolve.db", RedactDSN("sqlite://./data/prosolve.db"))
}
