package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"celobuddy/database"
	"celobuddy/internal/auth"
	"celobuddy/internal/config"
	"celobuddy/internal/email"
	"celobuddy/internal/handlers"
	"celobuddy/internal/logger"
	"celobuddy/internal/middleware"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/routes"
	"celobuddy/internal/services"
	"celobuddy/internal/storage"
	"celobuddy/internal/validator"
	"celobuddy/internal/workers"
	"celobuddy/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Bootstrap загружает конфиг, поднимает логгер и подключается к БД
func Bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connected")

	return cfg, gormDB, nil
}

func Run() {
	cfg, gormDB, err := Bootstrap()
	if err != nil {
		logger.Fatal("Startup failed", "error", err)
	}

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	repos := services.NewRepositories()
	if err := seedFirstAdmin(gormDB, cfg, repos); err != nil {
		// без админа сервер не запускаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	workers.NewMaintenanceWorker(gormDB, repos.Opportunity, repos.SwipeSession).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	apperrors.SetDebug(cfg.IsDevelopment())

	storageInstance, err := storage.NewStorage(context.Background(), storage.FromAppConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider, err := initializeEmail(cfg)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTTTLMinutes)*time.Minute)

	repos := services.NewRepositories()
	serviceContainer := services.NewServiceContainer(repos, services.Deps{
		Tokens:        tokens,
		Storage:       storageInstance,
		EmailProvider: emailProvider,
		Avatar: services.AvatarPolicy{
			MaxSize:      cfg.Upload.MaxAvatarSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
		FeedLimit:    cfg.Feed.Limit,
		PreviewLimit: cfg.Feed.PreviewLimit,
	})

	appHandlers := initializeHandlers(serviceContainer)
	guards := middleware.NewGuards(tokens, repos.Profile, cfg.Auth.AnonKey, cfg.Auth.ServiceKey)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, guards)

	return ginRouter, nil
}

func initializeEmail(cfg *config.Config) (email.Provider, error) {
	if !cfg.Email.Enabled {
		logger.Warn("Email is disabled, welcome emails are logged only")
		return email.NewNoopProvider(), nil
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	provider := email.NewSMTPProvider(email.FromAppConfig(cfg), templates)
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}
	logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	return provider, nil
}

func initializeHandlers(svc *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, svc.AuthService),
		PublicHandler:      handlers.NewPublicHandler(baseHandler, svc.FeedService, svc.SubscriptionService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, svc.ProfileService, svc.DashboardService),
		OnboardingHandler:  handlers.NewOnboardingHandler(baseHandler, svc.OnboardingService),
		NeedHandler:        handlers.NewNeedHandler(baseHandler, svc.NeedService),
		FeedHandler:        handlers.NewFeedHandler(baseHandler, svc.FeedService, svc.SwipeService, svc.ProfileService),
		MatchHandler:       handlers.NewMatchHandler(baseHandler, svc.MatchService),
		FeedbackHandler:    handlers.NewFeedbackHandler(baseHandler, svc.FeedbackService),
		OpportunityHandler: handlers.NewOpportunityHandler(baseHandler, svc.OpportunityService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, svc.AnalyticsService, svc.ExportService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	// локальные аватары отдаем сами, S3 отдает их по своему URL
	if cfg.Storage.Type == "local" && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}
	return router
}

// seedFirstAdmin создает админа из конфига, если его еще нет.
// Онбординг админу не нужен: без записи шага он считается завершенным.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config, repos *services.Repositories) error {
	adminEmail := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	if adminEmail == "" || cfg.Admin.Password == "" {
		logger.Warn("admin.email or admin.password is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	_, err := repos.User.FindByEmail(tx, adminEmail)
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{Email: adminEmail, PasswordHash: hash}
	if err := repos.User.Create(tx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	profile := &models.Profile{
		ID:       admin.ID,
		Email:    adminEmail,
		FullName: cfg.Admin.FullName,
		Role:     models.UserRoleAdmin,
	}
	if err := repos.Profile.Create(tx, profile); err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
