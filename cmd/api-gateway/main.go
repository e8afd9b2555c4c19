package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/ta-portal-api/api/swagger"
	"github.com/noah-isme/ta-portal-api/internal/handler"
	"github.com/noah-isme/ta-portal-api/internal/middleware"
	"github.com/noah-isme/ta-portal-api/internal/repository"
	"github.com/noah-isme/ta-portal-api/internal/service"
	"github.com/noah-isme/ta-portal-api/pkg/cache"
	"github.com/noah-isme/ta-portal-api/pkg/config"
	"github.com/noah-isme/ta-portal-api/pkg/database"
	"github.com/noah-isme/ta-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/ta-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/ta-portal-api/pkg/middleware/requestid"
)

// @title TA Portal API
// @version 1.0.0
// @description Teaching-assistant allocation portal
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := database.Migrate(migrateCtx, db, cfg.Database.MigrationsDir); err != nil {
		cancel()
		logr.Fatal("failed to run migrations", zap.Error(err))
	}
	cancel()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, course cache disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	teacherCourseRepo := repository.NewTeacherCourseRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	metricsService := service.NewMetricsService()

	var cacheService *service.CacheService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Courses.CacheTTL, logr, cfg.Courses.CacheEnabled)
	}

	authService := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	courseService := service.NewCourseService(courseRepo, teacherRepo, cacheService, validate, logr)
	assignmentService := service.NewAssignmentService(teacherRepo, courseRepo, teacherCourseRepo, cacheService, validate, logr)
	teacherService := service.NewTeacherService(teacherRepo, teacherCourseRepo, logr)
	slotService := service.NewSlotService(slotRepo, teacherRepo, courseRepo, teacherCourseRepo, validate, logr)
	applicationService := service.NewApplicationService(applicationRepo, slotRepo, teacherRepo, logr)
	studentService := service.NewStudentService(studentRepo, slotRepo, applicationRepo, validate, logr)
	exportService := service.NewExportService(applicationService, cfg.Exports.Enabled, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	metricsHandler := handler.NewMetricsHandler(metricsService, func(ctx context.Context) (int64, error) {
		return database.MigrationVersion(ctx, db)
	})

	handler.RegisterRoutes(r, handler.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Admin:       handler.NewAdminHandler(courseService, assignmentService),
		Slot:        handler.NewSlotHandler(slotService, teacherService),
		Application: handler.NewApplicationHandler(applicationService, studentService),
		Student:     handler.NewStudentHandler(studentService),
		Export:      handler.NewExportHandler(exportService),
		Metrics:     metricsHandler,
	}, authService)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
