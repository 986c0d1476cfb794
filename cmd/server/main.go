package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "handmeup-backend/internal/api/http"
	"handmeup-backend/internal/config"
	"handmeup-backend/internal/logger"
	"handmeup-backend/internal/repository/postgres"
	"handmeup-backend/internal/security"
	"handmeup-backend/internal/service"
	"handmeup-backend/internal/storage"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Hand Me Up backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.AccountRepository, tokenManager)
	profileSvc := service.NewProfileService(store.AccountRepository)
	listingSvc := service.NewListingService(store.ListingRepository, store.BackendUserRepository)
	clothingSvc := service.NewClothingService(store.ClothingRepository, storageService)
	connectionSvc := service.NewConnectionService(store.ConnectionRepository, store.AccountRepository)
	messagingSvc := service.NewMessagingService(store.MessageRepository, store.BackendUserRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ClothingRepository,
		store.PaymentRepository,
		store.AccountRepository,
		emailSvc,
	)
	ratingSvc := service.NewRatingService(store.RatingRepository)
	imageSvc := service.NewImageStorageService(store.ClothingRepository, storageService)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:        httpapi.NewAuthHandler(authSvc),
		Users:       httpapi.NewUserHandler(store.BackendUserRepository, profileSvc),
		Profiles:    httpapi.NewProfileHandler(profileSvc),
		Listings:    httpapi.NewListingHandler(listingSvc),
		Clothing:    httpapi.NewClothingHandler(clothingSvc, profileSvc),
		Connections: httpapi.NewConnectionHandler(connectionSvc),
		Messages:    httpapi.NewMessageHandler(messagingSvc),
		Rentals:     httpapi.NewRentalHandler(rentalSvc),
		Ratings:     httpapi.NewRatingHandler(ratingSvc),
		Images:      httpapi.NewImageHandler(imageSvc),
		Tokens:      tokenManager,
		MockStorage: mockStorage,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
