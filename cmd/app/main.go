package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/api"
	"github.com/vincegoalt/rydercup2027-api/internal/config"
	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/database"
	"github.com/vincegoalt/rydercup2027-api/internal/mailer"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
	"github.com/vincegoalt/rydercup2027-api/internal/seeder"
	"github.com/vincegoalt/rydercup2027-api/internal/service"
	"github.com/vincegoalt/rydercup2027-api/internal/stats"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load and validate the embedded catalog before touching anything else;
	// a bad catalog is a build defect and must not serve
	catalog, err := content.Load()
	if err != nil {
		logger.Fatal("Invalid content catalog", zap.Error(err))
	}

	identities, err := routes.Generate(catalog)
	if err != nil {
		logger.Fatal("Failed to generate routes", zap.Error(err))
	}
	if err := routes.ValidateCrossLinks(catalog, identities); err != nil {
		logger.Fatal("Catalog cross-links are broken", zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("locations", len(catalog.Locations)),
		zap.Int("courses", len(catalog.Courses)),
		zap.Int("hotels", len(catalog.Hotels)),
		zap.Int("faqs", len(catalog.FAQs)),
		zap.Int("routes", len(identities)),
	)

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db)

	ctx := context.Background()
	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Warn("Failed to check if database is empty", zap.Error(err))
	} else if isEmpty {
		logger.Info("Database is empty, seeding catalog...")
		if err := seeder.Seed(ctx, repos, catalog, logger); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Info("Database seeded successfully")
	}

	var sender mailer.Sender
	if cfg.Mail.Enabled() {
		client, err := mailer.New(cfg.Mail.BaseURL, cfg.Mail.APIKey, time.Duration(cfg.Mail.TimeoutSec)*time.Second)
		if err != nil {
			logger.Fatal("Failed to create mail client", zap.Error(err))
		}
		sender = client
	} else {
		logger.Warn("MAIL_API_KEY not set, form submissions will not send email")
	}

	svc := service.NewService(repos, catalog, cfg.Site.BaseURL)
	statsCollector := stats.NewCollector(db, cfg.DB)
	forms := api.NewFormHandler(sender, cfg.Mail, logger)
	router := api.NewRouter(svc, statsCollector, forms)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	var m *migrate.Migrate

	if cfg.DB.IsMemory() {
		// Use driver instance directly to avoid DSN parsing issues with in-memory SQLite
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		var err error
		m, err = migrate.New("file://migrations/postgres", cfg.DB.DSN())
		if err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
