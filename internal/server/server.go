package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	log    *zap.Logger
}

// Init connects to the task store when one is configured and builds the
// HTTP router. Without DB_HOST the service runs in degraded mode.
func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	var (
		db    *gorm.DB
		store *service.Store
	)

	if cfg.StoreConfigured() {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		log.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

		if cfg.AutoMigrate {
			if err := Migrate(db); err != nil {
				return nil, err
			}
			log.Info("schema migrated")
		}
		store = service.NewGormStore(db)
	} else {
		log.Warn("DB_HOST not set, task store is not configured; reads return empty results and writes fail")
	}

	svc := service.New(store, log.Named("service"))

	return &Server{
		Engine: NewRouter(svc, log, cfg.JWTSecret),
		DB:     db,
		Config: cfg,
		log:    log,
	}, nil
}

// Migrate creates or updates the task schema.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}
	err := db.AutoMigrate(
		&model.Project{},
		&model.Task{},
		&model.Subtask{},
		&model.Comment{},
		&model.File{},
		&model.Attachment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// NewRouter wires every route onto a fresh gin engine. An empty jwtSecret
// leaves the API unauthenticated.
func NewRouter(svc handler.TaskService, log *zap.Logger, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log.Named("http")))

	healthHandler := handler.NewHealthHandler(svc)
	projectHandler := handler.NewProjectHandler(svc)
	taskHandler := handler.NewTaskHandler(svc)
	subtaskHandler := handler.NewSubtaskHandler(svc)
	commentHandler := handler.NewCommentHandler(svc)
	attachmentHandler := handler.NewAttachmentHandler(svc)

	// Public routes
	r.GET("/health", healthHandler.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/")
	if jwtSecret != "" {
		api.Use(middleware.JWTAuthMiddleware(jwtSecret))
	}
	{
		// Project routes
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.PATCH("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		// Task routes
		api.GET("/tasks", taskHandler.List)
		api.GET("/tasks/stats", taskHandler.Stats)
		api.GET("/tasks/alerts", taskHandler.Alerts)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		// Subtask routes
		api.POST("/tasks/:id/subtasks", subtaskHandler.Create)
		api.PATCH("/subtasks/:id", subtaskHandler.Update)
		api.PATCH("/subtasks/:id/toggle", subtaskHandler.Toggle)
		api.DELETE("/subtasks/:id", subtaskHandler.Delete)

		// Comment routes
		api.POST("/tasks/:id/comments", commentHandler.Create)
		api.DELETE("/comments/:id", commentHandler.Delete)

		// Attachment routes
		api.POST("/tasks/:id/attachments", attachmentHandler.Attach)
		api.DELETE("/tasks/:id/attachments/:file_id", attachmentHandler.Detach)
	}

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.log.Info("server listening", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	s.log.Info("server exited properly")
}
