package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "suncrest-hotel-backend/internal/api/http"
	"suncrest-hotel-backend/internal/config"
	"suncrest-hotel-backend/internal/gateway"
	"suncrest-hotel-backend/internal/jobs"
	"suncrest-hotel-backend/internal/logger"
	"suncrest-hotel-backend/internal/repository/postgres"
	"suncrest-hotel-backend/internal/scheduler"
	"suncrest-hotel-backend/internal/security"
	"suncrest-hotel-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Suncrest Hotel Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply migrations
	if err := postgres.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Gateway
	gatewayClient := gateway.NewHTTPClient(cfg.Gateway.BaseURL, cfg.Gateway.KeyID, cfg.Gateway.KeySecret, cfg.GatewayTimeout())
	signer := gateway.NewSigner(cfg.Gateway.KeySecret, cfg.Gateway.WebhookSecret)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	availabilitySvc := service.NewAvailabilityService(
		store.RoomTypeRepository,
		store.ReservationRepository,
		cfg.HoldWindow(),
	)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.RoomTypeRepository,
		store.NotificationRepository,
		availabilitySvc,
		gatewayClient,
		signer,
		emailSvc,
		cfg.Gateway.Currency,
		cfg.HoldWindow(),
	)
	adminSvc := service.NewAdminService(
		store.RoomTypeRepository,
		store.ReservationRepository,
		store.NotificationRepository,
	)
	authSvc := service.NewAuthService(store.AdminUserRepository, tokenManager)

	// Initialize HTTP handlers
	bookingHandler := httpapi.NewBookingHandler(availabilitySvc, reservationSvc)
	adminHandler := httpapi.NewAdminHandler(adminSvc, reservationSvc)
	authHandler := httpapi.NewAuthHandler(authSvc)

	router := httpapi.NewRouter(bookingHandler, adminHandler, authHandler, tokenManager)

	// Start reporting scheduler
	jobRunner := jobs.NewJobRunner(&jobs.Services{Email: emailSvc, Admin: adminSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
