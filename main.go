package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/robinroyhansen/maler-christensen-api/app/db"
	appLogger "github.com/robinroyhansen/maler-christensen-api/app/logger"
	appMiddleware "github.com/robinroyhansen/maler-christensen-api/app/middleware"
	"github.com/robinroyhansen/maler-christensen-api/app/observability/metrics"
	"github.com/robinroyhansen/maler-christensen-api/app/tracer"
	"github.com/robinroyhansen/maler-christensen-api/config"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/audit"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/blog"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/gallery"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/leads"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/overrides"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/pages"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/redirects"
	"github.com/robinroyhansen/maler-christensen-api/internal/api/reviews"
	"github.com/robinroyhansen/maler-christensen-api/internal/router"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.Init()

	// --- Database setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Migrations run before the main pool is opened.
	if err = database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	company := types.CompanyProfile{
		Name:            cfg.Company.Name,
		Phone:           cfg.Company.Phone,
		BaseCity:        cfg.Company.BaseCity,
		TrustpilotScore: cfg.Company.TrustpilotScore,
	}

	// --- Dependency injection ---
	overridesRepo := overrides.NewPostgresOverridesRepo(pool, logger)
	leadsRepo := leads.NewPostgresLeadsRepo(pool, logger)
	reviewsRepo := reviews.NewPostgresReviewsRepo(pool, logger)
	blogRepo := blog.NewPostgresBlogRepo(pool, logger)
	galleryRepo := gallery.NewPostgresGalleryRepo(pool, logger)
	redirectsRepo := redirects.NewPostgresRedirectsRepo(pool, logger)

	pagesService := pages.NewPagesService(overridesRepo, company, logger)
	overridesService := overrides.NewOverridesService(overridesRepo, company, pagesService, logger)
	leadsService := leads.NewLeadsService(leadsRepo, logger)
	reviewsService := reviews.NewReviewsService(reviewsRepo, logger)
	blogService := blog.NewBlogService(blogRepo, logger)
	auditService := audit.NewAuditService(overridesService, blogRepo, galleryRepo, company, logger)

	redirectResolver := redirects.NewResolver(redirectsRepo, logger)
	if err := redirectResolver.Reload(ctx); err != nil {
		logger.Warn("Failed to load redirect rules at startup", slog.Any("error", err))
	}

	authenticator := appMiddleware.NewAuthenticator(cfg.Auth.JWTSecret)

	routerConfig := &router.Config{
		PagesHandler:     pages.NewPagesHandler(pagesService, logger),
		OverridesHandler: overrides.NewOverridesHandler(overridesService, logger),
		LeadsHandler:     leads.NewLeadsHandler(leadsService, logger),
		ReviewsHandler:   reviews.NewReviewsHandler(reviewsService, logger),
		BlogHandler:      blog.NewBlogHandler(blogService, logger),
		GalleryHandler:   gallery.NewGalleryHandler(galleryRepo, logger),
		RedirectsHandler: redirects.NewRedirectsHandler(redirectsRepo, redirectResolver, logger),
		AuditHandler:     audit.NewAuditHandler(auditService, logger),
		RedirectResolver: redirectResolver,
		RequireAdmin:     authenticator.RequireAdmin,
	}
	apiRouter := router.SetupRouter(routerConfig)

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(60 * time.Second))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", apiRouter)

	// --- HTTP server ---
	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	if mode == "development" || mode == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		return slog.New(tint.NewHandler(os.Stdout, tintOpts))
	}
	jsonOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
}
