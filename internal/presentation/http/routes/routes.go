package routes

import (
	"time"

	"github.com/balihai/hoa-api/internal/config"
	"github.com/balihai/hoa-api/internal/presentation/http/handler"
	"github.com/balihai/hoa-api/internal/presentation/http/middleware"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Resident     *handler.ResidentHandler
	Billing      *handler.BillingHandler
	Expense      *handler.ExpenseHandler
	Announcement *handler.AnnouncementHandler
	Complaint    *handler.ComplaintHandler
	Report       *handler.ReportHandler
	Dashboard    *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

	// Locally stored receipt uploads are served straight from disk
	if deps.Cfg.Storage.Driver == "local" {
		router.Static(deps.Cfg.Storage.PublicPrefix, deps.Cfg.Storage.Path)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/auth/refresh", h.Auth.RefreshToken)

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

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	staff := middleware.RequireRole("admin", "staff")
	admin := middleware.RequireRole("admin")
	resident := middleware.RequireRole("resident")

	// Auth
	rg.GET("/auth/me", h.Auth.Me)
	rg.POST("/auth/change-password", h.Auth.ChangePassword)

	// Residents
	residents := rg.Group("/residents", staff)
	{
		residents.POST("", h.Resident.Create)
		residents.GET("", h.Resident.List)
		residents.GET("/:id", h.Resident.Get)
		residents.PUT("/:id", h.Resident.Update)
		residents.DELETE("/:id", admin, h.Resident.Delete)
		residents.POST("/:id/account", h.Resident.ProvisionAccount)
	}

	// Invoices
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", staff, h.Billing.CreateInvoice)
		invoices.GET("", staff, h.Billing.ListInvoices)
		invoices.GET("/:id", h.Billing.GetInvoice)
		invoices.GET("/:id/transactions", staff, h.Billing.ListInvoiceTransactions)
		invoices.POST("/:id/payments", staff, h.Billing.RecordPayment)
		invoices.POST("/:id/proof", resident, h.Billing.SubmitProof)
	}

	// Transactions and the approval workflow
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", staff, h.Billing.ListTransactions)
		transactions.GET("/:id", h.Billing.GetTransaction)
		transactions.POST("/:id/approve", staff, h.Billing.ApprovePayment)
		transactions.POST("/:id/reject", staff, h.Billing.RejectPayment)
	}

	// Resident self-service
	rg.GET("/my/invoices", resident, h.Billing.MyInvoices)

	// Expenses
	expenses := rg.Group("/expenses", staff)
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", admin, h.Expense.Delete)
	}

	// Announcements: everyone reads, staff write
	announcements := rg.Group("/announcements")
	{
		announcements.GET("", h.Announcement.List)
		announcements.GET("/:id", h.Announcement.Get)
		announcements.POST("", staff, h.Announcement.Create)
		announcements.PUT("/:id", staff, h.Announcement.Update)
		announcements.POST("/:id/reuse", staff, h.Announcement.Reuse)
		announcements.DELETE("/:id", staff, h.Announcement.Delete)
	}

	// Complaints
	complaints := rg.Group("/complaints")
	{
		complaints.POST("", h.Complaint.Create)
		complaints.GET("", h.Complaint.List)
		complaints.GET("/:id", h.Complaint.Get)
		complaints.PATCH("/:id/status", staff, h.Complaint.UpdateStatus)
		complaints.POST("/:id/archive", staff, h.Complaint.Archive)
		complaints.DELETE("/:id", admin, h.Complaint.Delete)
	}

	// Reports and dashboard
	rg.GET("/reports", staff, h.Report.Generate)
	rg.GET("/dashboard", staff, h.Dashboard.Stats)
}
