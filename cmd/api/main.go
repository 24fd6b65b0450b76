package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/rjwedding/rsvp-backend/internal/guestlist"
	hmw "github.com/rjwedding/rsvp-backend/internal/http/handlers"
	rlmw "github.com/rjwedding/rsvp-backend/internal/http/middleware"
	"github.com/rjwedding/rsvp-backend/internal/platform/mailer"
	"github.com/rjwedding/rsvp-backend/internal/platform/objstore"
	"github.com/rjwedding/rsvp-backend/internal/repo/postgres"
	"github.com/rjwedding/rsvp-backend/internal/service"
	"github.com/rjwedding/rsvp-backend/pkg/config"
	"github.com/rjwedding/rsvp-backend/pkg/database"
	"github.com/rjwedding/rsvp-backend/pkg/events"
	"github.com/rjwedding/rsvp-backend/pkg/logger"
	mw "github.com/rjwedding/rsvp-backend/pkg/middleware"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Redis for rate limiting
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Object store for guest photos
	photoStore, err := objstore.NewMinioStore(cfg.Storage)
	if err != nil {
		logger.Error("Failed to initialize object store", "error", err)
		os.Exit(1)
	}

	var mail mailer.Service
	if cfg.Email.DevMode {
		mail = mailer.NewDevMailer()
	} else {
		mail = mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Initialize repository and services
	guestRepo := postgres.NewGuestRepo(pool)
	validator := guestlist.NewValidator(cfg.Wedding.AdminName)

	guestService := service.NewGuestService(guestRepo, eventBus, mail)
	adminService := service.NewAdminService(guestRepo, validator, eventBus)
	photoService := service.NewPhotoService(photoStore, eventBus)

	h := hmw.New(guestService, adminService, photoService, cfg)

	rateLimiter := rlmw.NewRateLimiter(redisClient, rlmw.RateLimitConfig{
		Requests: 120,
		Window:   time.Minute,
		KeyFunc:  rlmw.ClientIPKeyFunc,
	})

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(rateLimiter.Middleware())

	r.Mount("/", h.Routes())

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down RSVP service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("RSVP service shutdown error", "error", err)
		}
	}()

	logger.Info("Starting RSVP service", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("RSVP service error", "error", err)
		os.Exit(1)
	}
}
