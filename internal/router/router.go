package router

import (
	"net/http"

	_ "github.com/Shreyaj-Padigala/ProSolve/docs"
	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/middleware"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/handler"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/Shreyaj-Padigala/ProSolve/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	TaskHandler     *handler.TaskHandler
	SessionHandler  *handler.SessionHandler
	SimulateHandler *handler.SimulateHandler
	SystemHandler   *handler.SystemHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// opaque JSON fields keep integers above 2^53 exact
	binding.EnableDecoderUseNumber = true

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Log))

	if telemetry.Enabled(d.Config.Telemetry) {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS(d.Config.CORS.AllowOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("route not found", nil))
	})

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// system
	r.GET("/health", d.SystemHandler.Health)
	r.GET("/config", d.SystemHandler.Config)
	r.GET("/metrics", d.SystemHandler.Metrics)

	r.POST("/simulate", d.SimulateHandler.Simulate)

	tasks := r.Group("/tasks")
	{
		tasks.GET("", d.TaskHandler.ListCurrentTasks)
		tasks.POST("", d.TaskHandler.CreateTask)
		tasks.GET("/today", d.TaskHandler.ListTodayTasks)
		tasks.GET("/history", d.TaskHandler.GetTaskHistory)
		tasks.PUT("/:id", d.TaskHandler.UpdateTask)
		tasks.DELETE("/:id", d.TaskHandler.DeleteTask)
	}

	// legacy listing of every task
	r.GET("/scenarios", d.TaskHandler.ListAllTasks)

	sessions := r.Group("/sessions")
	{
		sessions.GET("", d.SessionHandler.ListSessions)
		sessions.POST("", d.SessionHandler.CreateSession)
		sessions.POST("/archive", d.SessionHandler.ArchiveSession)
		sessions.GET("/:id", d.SessionHandler.GetSession)
		sessions.GET("/:id/tasks", d.SessionHandler.GetSessionTasks)
	}
	return r
}
