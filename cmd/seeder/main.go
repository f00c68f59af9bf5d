package main

import (
	"context"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/vincegoalt/rydercup2027-api/internal/config"
	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/database"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
	"github.com/vincegoalt/rydercup2027-api/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Loading content catalog...")
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

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	ctx := context.Background()
	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		m, err := migrate.New("file://migrations/sqlite", "sqlite3://"+cfg.DB.DSN())
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}

		// Fast truncate so reseeding a shared in-memory DB starts clean
		_, _ = db.Exec("DELETE FROM faqs; DELETE FROM hotels; DELETE FROM courses; DELETE FROM locations;")
	}

	repos := repository.NewRepositories(db)
	if err := seeder.Seed(ctx, repos, catalog, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	logger.Info("Catalog import completed successfully!",
		zap.Int("locations", len(catalog.Locations)),
		zap.Int("courses", len(catalog.Courses)),
		zap.Int("hotels", len(catalog.Hotels)),
		zap.Int("faqs", len(catalog.FAQs)),
	)
}
