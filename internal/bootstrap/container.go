package bootstrap

import (
	"context"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/blob"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/cache"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/db"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/llm"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/logger"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/handler"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/repo"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/civilday"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})
	Register(inj)
	return inj
}

// Register provides everything downstream of *config.Config, so tests can
// supply their own config value.
func Register(inj *do.Injector) {
	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, nil when no address is configured
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})

	// S3, nil when no bucket is configured
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})

	do.Provide(inj, func(i *do.Injector) (*civilday.Calendar, error) {
		return civilday.New(do.MustInvoke[*config.Config](i).Calendar.Timezone)
	})
	do.Provide(inj, func(i *do.Injector) (*metrics.Counter, error) {
		return metrics.NewCounter(), nil
	})

	// LLM provider
	do.Provide(inj, func(i *do.Injector) (llm.Provider, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return llm.New(context.Background(), cfg.LLM, do.MustInvoke[*zap.Logger](i))
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SessionRepo, error) {
		return repo.NewSessionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[*civilday.Calendar](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SessionService, error) {
		// a nil *S3Deps must not become a non-nil SnapshotStore
		var snapshots service.SnapshotStore
		if s3 := do.MustInvoke[*blob.S3Deps](i); s3 != nil {
			snapshots = s3
		}
		return service.NewSessionService(
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[*civilday.Calendar](i),
			do.MustInvoke[*zap.Logger](i),
			snapshots,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AnalysisService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		opts := service.AnalysisOptions{MockOnFail: cfg.LLM.MockOnFail}
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			opts.Cache = cache.NewAnalysisCache(rdb, time.Duration(cfg.Redis.AnalysisTTLSec)*time.Second)
			opts.CacheKey = cache.AnalysisKey
		}
		return service.NewAnalysisService(
			do.MustInvoke[llm.Provider](i),
			llm.NewMock(),
			do.MustInvoke[*metrics.Counter](i),
			do.MustInvoke[*zap.Logger](i),
			opts,
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(
			do.MustInvoke[service.TaskService](i),
			do.MustInvoke[service.AnalysisService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SessionHandler, error) {
		return handler.NewSessionHandler(
			do.MustInvoke[service.SessionService](i),
			do.MustInvoke[service.TaskService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SimulateHandler, error) {
		return handler.NewSimulateHandler(do.MustInvoke[service.AnalysisService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SystemHandler, error) {
		return handler.NewSystemHandler(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[llm.Provider](i),
			do.MustInvoke[*metrics.Counter](i),
		), nil
	})
}
