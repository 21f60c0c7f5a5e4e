package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/config"
	"github.com/udyogbooks/backoffice-api/internal/infrastructure/database"
	"github.com/udyogbooks/backoffice-api/internal/infrastructure/repository"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/handler"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/routes"
	"github.com/udyogbooks/backoffice-api/pkg/email"
	"github.com/udyogbooks/backoffice-api/pkg/oauth"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	itemRepo := repository.NewItemRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationItemRepo := repository.NewQuotationItemRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	ticketItemRepo := repository.NewTicketItemRepository(db)
	challanRepo := repository.NewChallanRepository(db)
	challanItemRepo := repository.NewChallanItemRepository(db)
	timeLogRepo := repository.NewTimeLogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPass,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromAddress,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleService)
	clientService := service.NewClientService(clientRepo)
	itemService := service.NewItemService(itemRepo)
	quotationService := service.NewQuotationService(quotationRepo, quotationItemRepo, clientRepo, settingsRepo, emailService, cfg.Business)
	ticketService := service.NewTicketService(ticketRepo, ticketItemRepo, quotationRepo, clientRepo, itemRepo, settingsRepo)
	challanService := service.NewChallanService(challanRepo, challanItemRepo, ticketRepo, clientRepo, cfg.Business)
	timeLogService := service.NewTimeLogService(timeLogRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, itemRepo)
	reportService := service.NewReportService(quotationRepo, ticketRepo, challanRepo, timeLogRepo, itemRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleService),
		Client:    handler.NewClientHandler(clientService),
		Item:      handler.NewItemHandler(itemService),
		Quotation: handler.NewQuotationHandler(quotationService),
		Ticket:    handler.NewTicketHandler(ticketService),
		Challan:   handler.NewChallanHandler(challanService),
		TimeLog:   handler.NewTimeLogHandler(timeLogService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
