package app

import (
	"fmt"
	"time"

	"jobtrack_backend/internal/auth"
	"jobtrack_backend/internal/config"
	"jobtrack_backend/internal/handlers"
	"jobtrack_backend/internal/logger"
	"jobtrack_backend/internal/middleware"
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/routes"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects to the database and starts the HTTP
// server. Fatal on any bootstrap failure.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.Job{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call this with
// their own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// The signing key lives in the token manager from here on; nothing
	// reads it from ambient process state at call time.
	tokens := auth.NewTokenManager(
		[]byte(cfg.JWT.Secret),
		time.Duration(cfg.JWT.TTL)*time.Minute,
	)

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)

	authService := services.NewAuthService(userRepo, tokens)
	jobService := services.NewJobService(jobRepo)

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, authService),
		JobHandler:  handlers.NewJobHandler(baseHandler, jobService),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokens))

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
