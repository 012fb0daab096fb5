package routes

import (
	"time"

	"github.com/artclub/backoffice-api/internal/config"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/internal/presentation/http/handler"
	"github.com/artclub/backoffice-api/internal/presentation/http/middleware"
	"github.com/artclub/backoffice-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Transaction *handler.TransactionHandler
	Settings    *handler.SettingsHandler
	Artist      *handler.ArtistHandler
	Audit       *handler.AuditHandler
	Location    *handler.LocationHandler
	Printer     *handler.PrinterHandler
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

	// API v1 routes: everything behind admin authentication
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-admin rate limiter
		rateLimiter := middleware.NewAdminRateLimiter(middleware.RateLimiterConfig{
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

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	registerPosRoutes(protected, h, deps)
	registerSettingsRoutes(protected, h)
	registerArtistRoutes(protected, h)
	registerReferenceRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerPosRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	pos := protected.Group("/pos")
	{
		transactions := pos.Group("/transactions")
		{
			transactions.GET("", h.Transaction.List)
			transactions.GET("/:id", h.Transaction.Get)
			// Document issuance is idempotent in the service; the middleware
			// additionally replays the HTTP response for repeated keys.
			transactions.POST("/:id/documents", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}), h.Transaction.EnsureDocuments)
			transactions.POST("/:id/print", h.Printer.PrintReceipt)
		}

		pos.GET("/audit/verify", h.Audit.Verify)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/seller", h.Settings.GetSettings)
		// Changing the seller identity alters every document issued from
		// then on, so writes are reserved for the admin role.
		settings.PUT("/seller", middleware.RequireRole("admin"), h.Settings.UpdateSettings)
	}
}

func registerArtistRoutes(protected *gin.RouterGroup, h *Handlers) {
	artists := protected.Group("/artists")
	{
		artists.GET("", h.Artist.List)
		artists.POST("", h.Artist.Create)
		artists.GET("/:id", h.Artist.Get)
	}

	applications := protected.Group("/applications")
	{
		applications.GET("", h.Artist.ListApplications)
		applications.POST("/:id/approve", h.Artist.Approve)
		applications.POST("/:id/reject", h.Artist.Reject)
	}
}

func registerReferenceRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/locations", h.Location.ListLocations)
	protected.GET("/terminals", h.Location.ListTerminals)
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
