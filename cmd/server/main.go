package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/schoolsync/ptm-api/api/swagger"
	"github.com/schoolsync/ptm-api/internal/handler"
	"github.com/schoolsync/ptm-api/internal/middleware"
	"github.com/schoolsync/ptm-api/internal/repository"
	"github.com/schoolsync/ptm-api/internal/service"
	"github.com/schoolsync/ptm-api/internal/session"
	"github.com/schoolsync/ptm-api/pkg/cache"
	"github.com/schoolsync/ptm-api/pkg/config"
	"github.com/schoolsync/ptm-api/pkg/database"
	"github.com/schoolsync/ptm-api/pkg/logger"
	corsmiddleware "github.com/schoolsync/ptm-api/pkg/middleware/cors"
	reqidmiddleware "github.com/schoolsync/ptm-api/pkg/middleware/requestid"
)

// @title Parent-Teacher Meeting API
// @version 1.0.0
// @description Meeting scheduling between parents and teachers
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	cacheSvc := (*service.CacheService)(nil)
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, running without cache", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	validate := validator.New()
	sessions := session.NewCodec(cfg.Session, cfg.Env == config.EnvProduction)

	authSvc := service.NewAuthService(repository.NewAuthRepository(db), validate, logr)
	meetingRepo := repository.NewMeetingRepository(db)
	meetingSvc := service.NewMeetingService(meetingRepo, validate, logr)
	directorySvc := service.NewDirectoryService(
		repository.NewTeacherRepository(db),
		repository.NewStudentRepository(db),
		cacheSvc,
		logr,
	)

	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(meetingRepo, logr)
	}

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	meetingHandler := newMeetingHandler(meetingSvc, exportSvc, sessions)
	studentHandler := handler.NewStudentHandler(directorySvc)
	teacherHandler := handler.NewTeacherHandler(directorySvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/auth/check", authHandler.Check)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/meetings", meetingHandler.Create)
		api.GET("/meetings", meetingHandler.List)
		api.PATCH("/meetings", meetingHandler.UpdateStatus)
		if cfg.Export.Enabled {
			api.GET("/meetings/export", meetingHandler.Export)
		}

		api.GET("/students", studentHandler.List)
		api.GET("/teachers", teacherHandler.List)
	}

	// The dashboards themselves are rendered by the frontend; these routes
	// exist so the role guard has something to protect and redirect from.
	guard := middleware.DashboardGuard(sessions)
	r.GET("/parent/dashboard", guard, dashboardStub("parent"))
	r.GET("/teacher/dashboard", guard, dashboardStub("teacher"))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newMeetingHandler(meetings *service.MeetingService, exports *service.ExportService, sessions *session.Codec) *handler.MeetingHandler {
	if exports == nil {
		return handler.NewMeetingHandler(meetings, nil, sessions)
	}
	return handler.NewMeetingHandler(meetings, exports, sessions)
}

func dashboardStub(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dashboard": role})
	}
}
