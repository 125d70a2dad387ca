package db

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// sqlitePragmas make every transaction take the write lock up front, so two
// archive transactions run one after the other.
var sqlitePragmas = []string{
	"_busy_timeout=5000",
	"_foreign_keys=on",
	"_txlock=immediate",
}

func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	d, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(zapWriter{log.Sugar()}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	return d, nil
}

// Dialector picks the gorm driver from the DSN. postgres:// URLs and key=value
// strings go to Postgres; sqlite:// URLs and bare paths go to SQLite.
func Dialector(dsn string) (gorm.Dialector, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return nil, fmt.Errorf("database dsn is empty")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	default:
		path, err := sqlitePath(dsn)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(path), nil
	}
}

// sqlitePath turns sqlite:///rel.db, sqlite:////abs.db, sqlite://rel.db or a
// bare path into a go-sqlite3 DSN with the pragmas appended.
func sqlitePath(dsn string) (string, error) {
	path := dsn
	if rest, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		path = rest
		if strings.HasPrefix(path, "/") {
			path = path[1:]
		}
		if path == "" {
			return "", fmt.Errorf("sqlite dsn %q has no path", dsn)
		}
	}

	file, _, _ := strings.Cut(strings.TrimPrefix(path, "file:"), "?")
	inMemory := file == ":memory:" || strings.Contains(path, "mode=memory")
	if !inMemory && file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return "", fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	params := append([]string{}, sqlitePragmas...)
	if !inMemory {
		params = append(params, "_journal_mode=WAL")
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&"), nil
}

// RedactDSN hides the password of a postgres DSN for logging.
func RedactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		return u.Redacted()
	}
	if strings.Contains(dsn, "password=") {
		fields := strings.Fields(dsn)
		for i, f := range fields {
			if strings.HasPrefix(f, "password=") {
				fields[i] = "password=xxxxx"
			}
		}
		return strings.Join(fields, " ")
	}
	return dsn
}

// Migrate creates or updates the schema.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&model.Session{},
		&model.Task{},
	)
}

// RegisterOpenTelemetryPlugin adds query spans once a tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

type zapWriter struct{ s *zap.SugaredLogger }

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.s.Warnf(format, args...)
}
