package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/bootstrap"
	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	dbpkg "github.com/Shreyaj-Padigala/ProSolve/internal/infra/db"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/llm"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/handler"
	"github.com/Shreyaj-Padigala/ProSolve/internal/router"
	"github.com/Shreyaj-Padigala/ProSolve/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := do.Invoke[*zap.Logger](inj)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	tp, err := telemetry.SetupTracing(cmd.Context(), cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin", "err", err)
		}
	}

	if rdb := do.MustInvoke[*redis.Client](inj); rdb != nil {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Sugar().Warnw("redis unreachable, analysis results will not be cached", "addr", cfg.Redis.Addr, "err", err)
		}
		cancel()
		defer func() { _ = rdb.Close() }()
	}

	provider := do.MustInvoke[llm.Provider](inj)
	log.Sugar().Infow("llm provider",
		"provider", provider.Name(),
		"model", provider.Model(),
		"mock", llm.IsMock(provider),
		"mockOnFail", cfg.LLM.MockOnFail,
	)

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		TaskHandler:     do.MustInvoke[*handler.TaskHandler](inj),
		SessionHandler:  do.MustInvoke[*handler.SessionHandler](inj),
		SimulateHandler: do.MustInvoke[*handler.SimulateHandler](inj),
		SystemHandler:   do.MustInvoke[*handler.SystemHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Sugar().Info("server exited")
	return nil
}
