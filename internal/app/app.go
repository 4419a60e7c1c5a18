package app

import (
	"fmt"

	"github.com/hello383/Sway/internal/config"
	"github.com/hello383/Sway/internal/email"
	"github.com/hello383/Sway/internal/handlers"
	"github.com/hello383/Sway/internal/identity"
	"github.com/hello383/Sway/internal/logger"
	"github.com/hello383/Sway/internal/middleware"
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/routes"
	"github.com/hello383/Sway/internal/services"
	"github.com/hello383/Sway/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
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

	if err := gormDB.AutoMigrate(&models.Profile{}, &models.JobPosting{}); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:         cfg.Email.SMTPHost,
			Port:         cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUsername,
			Password:     cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
			FromName:     cfg.Email.FromName,
			UseTLS:       cfg.Email.UseTLS,
			TemplatesDir: cfg.Email.TemplatesDir,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailService = smtpProvider
	} else {
		logger.Warn("SMTP not configured, outgoing email disabled")
		emailService = &MockEmailProvider{}
	}

	var identityProvider identity.Provider
	if cfg.Auth.AdminURL != "" && cfg.Auth.ServiceKey != "" {
		identityProvider = identity.NewHTTPProvider(cfg.Auth.AdminURL, cfg.Auth.ServiceKey)
	} else {
		logger.Warn("Auth admin API not configured, signups will stay unlinked")
		identityProvider = identity.Noop{}
	}

	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()

	return &services.ServiceContainer{
		SignupService:  services.NewSignupService(profileRepo, emailService, identityProvider),
		ProfileService: services.NewProfileService(profileRepo),
		StatsService:   services.NewStatsService(profileRepo, jobRepo),
		JobService:     services.NewJobService(jobRepo, profileRepo, emailService),
		GateService:    services.NewGateService(profileRepo),
		EmailService:   emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ProfileHandler:  handlers.NewProfileHandler(baseHandler, container.SignupService, container.ProfileService),
		CampaignHandler: handlers.NewCampaignHandler(baseHandler, container.SignupService),
		StatsHandler:    handlers.NewStatsHandler(baseHandler, container.StatsService),
		JobHandler:      handlers.NewJobHandler(baseHandler, container.JobService),
		RefdataHandler:  handlers.NewRefdataHandler(baseHandler),
		SessionHandler:  handlers.NewSessionHandler(baseHandler, container.GateService, container.ProfileService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
