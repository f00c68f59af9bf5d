// Package seeder loads the embedded content catalog into the database.
package seeder

import (
	"context"
	"fmt"

	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
	"go.uber.org/zap"
)

// Seed bulk-inserts the catalog through the repositories. The catalog is
// assumed validated; insertion order is preserved so derived rankings break
// ties the same way the catalog files do.
func Seed(ctx context.Context, repos *repository.Container, c *content.Catalog, logger *zap.Logger) error {
	logger.Info("Inserting locations...", zap.Int("count", len(c.Locations)))
	if err := repos.Location.BulkInsertLocations(ctx, c.Locations); err != nil {
		return fmt.Errorf("failed to insert locations: %w", err)
	}

	logger.Info("Inserting courses...", zap.Int("count", len(c.Courses)))
	if err := repos.Course.BulkInsertCourses(ctx, c.Courses); err != nil {
		return fmt.Errorf("failed to insert courses: %w", err)
	}

	logger.Info("Inserting hotels...", zap.Int("count", len(c.Hotels)))
	if err := repos.Hotel.BulkInsertHotels(ctx, c.Hotels); err != nil {
		return fmt.Errorf("failed to insert hotels: %w", err)
	}

	logger.Info("Inserting FAQs...", zap.Int("count", len(c.FAQs)))
	if err := repos.FAQ.BulkInsertFAQs(ctx, c.FAQs); err != nil {
		return fmt.Errorf("failed to insert faqs: %w", err)
	}

	return nil
}
