package app

import (
	"context"
	"fmt"

	"networknode/database"
	"networknode/internal/completion"
	"networknode/internal/config"
	"networknode/internal/email"
	"networknode/internal/handlers"
	"networknode/internal/identity"
	"networknode/internal/logger"
	"networknode/internal/middleware"
	"networknode/internal/repositories"
	"networknode/internal/routes"
	"networknode/internal/services"
	"networknode/internal/validator"
	"networknode/pkg/apperrors"

	_ "networknode/docs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies - внешние зависимости, которые можно подменить (тесты, локальная разработка).
// Пустые поля собираются из конфигурации.
type Dependencies struct {
	Identity identity.Provider
	Email    email.Provider
}

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Init("")
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	if err := database.AutoMigrate(context.Background(), gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB, Dependencies{})

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, deps Dependencies) *gin.Engine {
	if deps.Identity == nil {
		deps.Identity = identity.NewGoTrueClient(identity.GoTrueConfig{
			URL:        cfg.Identity.URL,
			AnonKey:    cfg.Identity.AnonKey,
			Timeout:    cfg.IdentityTimeout(),
			RetryCount: cfg.Identity.RetryCount,
		})
	}
	if deps.Email == nil {
		deps.Email = newEmailProvider(cfg)
	}

	sessions := identity.NewSessionManager(
		deps.Identity,
		identity.NewTokenVerifier(cfg.Identity.JWTSecret),
		identity.SessionOptions{Secure: cfg.Session.CookieSecure},
	)

	// 1. Сервисы
	serviceContainer := initializeServices(cfg, gormDB, deps.Email)

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, sessions)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB, sessions)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.ProfileGate(serviceContainer.Checker))

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if !smtpCfg.Enabled() {
		logger.Warn("SMTP is not configured, meeting notifications are logged only")
		return &MockEmailProvider{}
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}
	if dir := cfg.Email.TemplatesDir; dir != "" {
		if err := templates.LoadTemplates(dir); err != nil {
			logger.Fatal("Failed to load email templates", "dir", dir, "error", err)
		}
	}
	provider := email.NewSMTPProvider(smtpCfg, templates)
	if err := provider.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}
	return provider
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) *services.ServiceContainer {
	// --- Репозитории ---
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	startupRepo := repositories.NewStartupRepository()
	meetingRepo := repositories.NewMeetingRepository()

	// --- Проверка заполненности профиля ---
	checker := completion.NewCachedChecker(
		completion.NewProfileChecker(gormDB, profileRepo, completion.RequiredProfileFields),
		cfg.CompletionCacheTTL(),
	)

	// --- Сервисы ---
	emailService := services.NewEmailService(emailProvider, cfg.Site.URL)
	profileService := services.NewProfileService(profileRepo, checker)
	authService := services.NewAuthService(profileService, checker)
	jobService := services.NewJobService(jobRepo)
	startupService := services.NewStartupService(startupRepo)
	meetingService := services.NewMeetingService(meetingRepo, profileRepo, emailService)
	dashboardService := services.NewDashboardService(jobRepo, startupRepo, checker)

	return &services.ServiceContainer{
		AuthService:      authService,
		ProfileService:   profileService,
		JobService:       jobService,
		StartupService:   startupService,
		MeetingService:   meetingService,
		DashboardService: dashboardService,
		EmailService:     emailService,
		Checker:          checker,
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, sessions *identity.SessionManager) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService, sessions, cfg.Site.URL),
		ProfileHandler:   handlers.NewProfileHandler(baseHandler, services.ProfileService),
		JobHandler:       handlers.NewJobHandler(baseHandler, services.JobService),
		StartupHandler:   handlers.NewStartupHandler(baseHandler, services.StartupService),
		MeetingHandler:   handlers.NewMeetingHandler(baseHandler, services.MeetingService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.DashboardService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sessions *identity.SessionManager) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Site.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.RouteGuard(sessions))
	return router
}
