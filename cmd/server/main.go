package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"communityhub/config"
	_ "communityhub/docs"
	"communityhub/internal/adapters/auth"
	"communityhub/internal/adapters/email"
	"communityhub/internal/adapters/storage"
	deliveryhttp "communityhub/internal/delivery/http"
	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/repository/postgres"
	"communityhub/internal/services"
)

// @title Community Hub API
// @version 1.0
// @description Backend for the community site: event registrations, newsletter subscriptions, and published posts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	// Adapters
	tokenIssuer, tokenVerifier := auth.NewJWTTokens(cfg.JWTSecret)
	passwordHasher := auth.NewBcryptHasher(0)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	renderer := email.NewTemplateRenderer()

	uploader, err := storage.NewS3Uploader(storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
		PublicURL:       cfg.S3PublicURL,
	})
	if err != nil {
		// Uploads stay disabled without a bucket; everything else runs.
		logger.Warn("uploads disabled", "err", err)
		uploader = nil
	}

	// Repositories
	registrationRepo := postgres.NewRegistrationRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)
	postRepo := postgres.NewPostRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	registrationService := services.NewRegistrationService(registrationRepo, cfg.EnforceUniqueRegistration)
	subscriptionService := services.NewSubscriptionService(subscriberRepo, emailService)
	newsletterService := services.NewNewsletterService(subscriberRepo, mailer, renderer)
	contentService := services.NewContentService(postRepo)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, passwordHasher, tokenIssuer, cfg.TokenExpiry)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	subscriptionController := controllers.NewSubscriptionController(logger, subscriptionService)
	newsletterController := controllers.NewNewsletterController(logger, newsletterService)
	contentController := controllers.NewContentController(logger, contentService, uploader)

	mux := deliveryhttp.NewRouter(
		logger,
		tokenVerifier,
		authController,
		registrationController,
		subscriptionController,
		newsletterController,
		contentController,
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
