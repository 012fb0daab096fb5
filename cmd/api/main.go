package main

import (
	"context"
	"log"
	"os"

	"github.com/artclub/backoffice-api/internal/application/service"
	"github.com/artclub/backoffice-api/internal/config"
	"github.com/artclub/backoffice-api/internal/infrastructure/database"
	"github.com/artclub/backoffice-api/internal/infrastructure/repository"
	"github.com/artclub/backoffice-api/internal/infrastructure/storage"
	"github.com/artclub/backoffice-api/internal/presentation/http/handler"
	"github.com/artclub/backoffice-api/internal/presentation/http/routes"
	"github.com/artclub/backoffice-api/pkg/email"
	"github.com/artclub/backoffice-api/pkg/printer"
	"github.com/artclub/backoffice-api/pkg/utils"
	"github.com/gin-gonic/gin"
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
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	txRepo := repository.NewTransactionRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	terminalRepo := repository.NewTerminalRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize document storage
	store := newStorage(cfg)

	// Initialize email-backed invoice notifier (optional)
	var notifier service.DocumentNotifier
	if cfg.Email.Enabled {
		emailService := email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromEmail,
		})
		notifier = service.NewEmailDocumentNotifier(emailService)
	}

	// Initialize services
	sequenceService := service.NewSequenceService(counterRepo)
	policy := service.InvoicePolicy{
		B2BThresholdCents: cfg.Documents.B2BInvoiceThresholdCents,
		B2CThresholdCents: cfg.Documents.B2CInvoiceThresholdCents,
	}
	documentService := service.NewDocumentService(
		txRepo, locationRepo, terminalRepo, settingsRepo, auditRepo,
		sequenceService, store, policy, notifier,
	)
	transactionService := service.NewTransactionService(txRepo)
	settingsService := service.NewSettingsService(settingsRepo, auditRepo)
	artistService := service.NewArtistService(artistRepo, applicationRepo, auditRepo)
	auditService := service.NewAuditService(auditRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, txRepo, settingsRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService, documentService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Artist:      handler.NewArtistHandler(artistService),
		Audit:       handler.NewAuditHandler(auditService),
		Location:    handler.NewLocationHandler(locationRepo, terminalRepo),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// newStorage selects the document store from configuration. A misconfigured
// S3 store is fatal: documents are legally required and must not silently
// land on local disk in production.
func newStorage(cfg *config.Config) storage.Storage {
	switch cfg.Storage.Driver {
	case "s3":
		store, err := storage.NewS3Storage(context.Background(), storage.S3Config{
			Bucket:        cfg.Storage.S3Bucket,
			Region:        cfg.Storage.S3Region,
			Endpoint:      cfg.Storage.S3Endpoint,
			AccessKey:     cfg.Storage.S3AccessKey,
			SecretKey:     cfg.Storage.S3SecretKey,
			PublicBaseURL: cfg.Storage.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		return store
	default:
		return storage.NewLocalStorage(cfg.Storage.Path, "")
	}
}
