package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udyogbooks/backoffice-api/internal/config"
	domainRepo "github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/handler"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/middleware"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Client    *handler.ClientHandler
	Item      *handler.ItemHandler
	Quotation *handler.QuotationHandler
	Ticket    *handler.TicketHandler
	Challan   *handler.ChallanHandler
	TimeLog   *handler.TimeLogHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// Clients
	registerClientRoutes(protected, h)

	// Items
	registerItemRoutes(protected, h)

	// Quotations
	registerQuotationRoutes(protected, h)

	// Tickets
	registerTicketRoutes(protected, h, deps)

	// Challans
	registerChallanRoutes(protected, h)

	// Time logs
	registerTimeLogRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.Summary)
		dashboard.GET("/top-clients", h.Dashboard.TopClients)
		dashboard.GET("/monthly-sales", h.Dashboard.MonthlySales)
		dashboard.GET("/hours-by-user", h.Dashboard.HoursByUser)
		dashboard.GET("/daily-revenue", h.Dashboard.DailyRevenue)
		dashboard.GET("/recent", h.Dashboard.Recent)
		dashboard.GET("/low-stock", h.Dashboard.LowStock)
	}
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	clients.Use(middleware.RequirePermission("manage-clients"))
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	items.Use(middleware.RequirePermission("manage-items"))
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.POST("/import", h.Item.ImportCSV)
		items.GET("/low-stock", h.Item.LowStock)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.GET("/:id/pdf", h.Quotation.DownloadPDF)
		quotations.POST("/:id/send", h.Quotation.Send)
	}
}

func registerTicketRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	tickets := protected.Group("/tickets")
	tickets.Use(middleware.RequirePermission("manage-tickets"))
	{
		tickets.GET("", h.Ticket.List)
		// Ticket creation moves stock, so duplicate submissions must
		// be deduplicated via the Idempotency-Key header.
		idem := middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		})
		tickets.POST("", idem, h.Ticket.Create)
		tickets.POST("/from-quotation", idem, h.Ticket.CreateFromQuotation)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.PUT("/:id", h.Ticket.Update)
		tickets.DELETE("/:id", h.Ticket.Delete)
		tickets.PUT("/:id/status", h.Ticket.UpdateStatus)
	}
}

func registerChallanRoutes(protected *gin.RouterGroup, h *Handlers) {
	challans := protected.Group("/challans")
	challans.Use(middleware.RequirePermission("manage-challans"))
	{
		challans.GET("", h.Challan.List)
		challans.POST("", h.Challan.Create)
		challans.POST("/from-ticket", h.Challan.CreateFromTicket)
		challans.GET("/:id", h.Challan.Get)
		challans.PUT("/:id", h.Challan.Update)
		challans.DELETE("/:id", h.Challan.Delete)
		challans.PUT("/:id/status", h.Challan.UpdateStatus)
		challans.GET("/:id/pdf", h.Challan.DownloadPDF)
	}
}

func registerTimeLogRoutes(protected *gin.RouterGroup, h *Handlers) {
	timelogs := protected.Group("/timelogs")
	timelogs.Use(middleware.RequirePermission("manage-timelogs"))
	{
		timelogs.GET("", h.TimeLog.List)
		timelogs.POST("", h.TimeLog.Create)
		timelogs.GET("/summary", h.TimeLog.Summary)
		timelogs.GET("/:id", h.TimeLog.Get)
		timelogs.PUT("/:id", h.TimeLog.Update)
		timelogs.DELETE("/:id", h.TimeLog.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/:kind", h.Report.Get)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/roles", h.User.ListRoles)
		users.GET("/:id", h.User.Get)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id/roles", h.User.RemoveRole)
	}
}
