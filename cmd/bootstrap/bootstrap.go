package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hms-backend/config"
	deliveryHttp "hms-backend/internal/delivery/http"
	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/infrastructure/cache"
	"hms-backend/internal/infrastructure/database"
	"hms-backend/internal/repository"
	"hms-backend/internal/service"
	"hms-backend/internal/service/notify"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/jwt"
	"hms-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.App, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	otpRepo := repository.NewOtpRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	ledgerRepo := repository.NewLedgerRepository()
	admissionRepo := repository.NewAdmissionRepository()
	labRepo := repository.NewLabRequestRepository()
	inventoryRepo := repository.NewInventoryRepository()
	notificationRepo := repository.NewNotificationRepository()
	sequenceRepo := repository.NewSequenceRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	seqService := service.NewSequenceService(sequenceRepo)
	auditSvc := service.NewAuditService(log, auditRepo)
	smsSender := notify.NewSMSSender(cfg.Notify, log)
	emailSender := notify.NewEmailSender(cfg.Notify, log)

	// Initialize usecases
	otpUsecase := usecase.NewOtpUsecase(db, log, cfg.OTP, otpRepo, redisClient, smsSender, emailSender)
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.App, userRepo, profileRepo, seqService, auditSvc, otpUsecase, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, profileRepo, auditRepo, seqService, auditSvc)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, profileRepo, auditSvc)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, appointmentRepo, prescriptionRepo, auditSvc)
	labUsecase := usecase.NewLabUsecase(db, log, labRepo, profileRepo, auditSvc)
	billingUsecase := usecase.NewBillingUsecase(db, log, invoiceRepo, ledgerRepo, appointmentRepo, admissionRepo, seqService, auditSvc)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, inventoryRepo, notificationRepo, auditSvc, cfg.Notify.LowStockThreshold)
	admissionUsecase := usecase.NewAdmissionUsecase(db, log, admissionRepo, profileRepo, auditSvc)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, otpUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	labHandler := handler.NewLabHandler(labUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	admissionHandler := handler.NewAdmissionHandler(admissionUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		appointmentHandler,
		consultationHandler,
		labHandler,
		billingHandler,
		inventoryHandler,
		admissionHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
