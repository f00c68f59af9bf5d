package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

// LocationRepository defines operations for locations
type LocationRepository interface {
	ListLocations(ctx context.Context, lang model.Locale) ([]model.LocationView, error)
	GetLocationBySlug(ctx context.Context, slug string, lang model.Locale) (*model.LocationView, error)
	BulkInsertLocations(ctx context.Context, locations []model.Location) error
}

// CourseRepository defines operations for golf courses
type CourseRepository interface {
	ListCourses(ctx context.Context, lang model.Locale) ([]model.CourseView, error)
	ListCoursesWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.CourseView, error)
	GetCourseBySlug(ctx context.Context, slug string, lang model.Locale) (*model.CourseView, error)
	BulkInsertCourses(ctx context.Context, courses []model.GolfCourse) error
}

// HotelRepository defines operations for hotels
type HotelRepository interface {
	ListHotels(ctx context.Context, lang model.Locale) ([]model.HotelView, error)
	ListHotelsWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.HotelView, error)
	GetHotelBySlug(ctx context.Context, slug string, lang model.Locale) (*model.HotelView, error)
	BulkInsertHotels(ctx context.Context, hotels []model.Hotel) error
}

// FAQRepository defines operations for FAQs
type FAQRepository interface {
	ListFAQs(ctx context.Context, lang model.Locale) ([]model.FAQView, error)
	ListFAQsByCategory(ctx context.Context, category model.FAQCategory, lang model.Locale) ([]model.FAQView, error)
	GetFAQByID(ctx context.Context, id string, lang model.Locale) (*model.FAQView, error)
	BulkInsertFAQs(ctx context.Context, faqs []model.FAQ) error
}

// Container holds all repositories
type Container struct {
	Location LocationRepository
	Course   CourseRepository
	Hotel    HotelRepository
	FAQ      FAQRepository
}

// NewRepositories creates repository implementations. The SQL is written
// once in portable form; sqlx.Rebind adapts placeholders to whichever driver
// (sqlite3 or pgx) the connection uses.
func NewRepositories(db *sqlx.DB) *Container {
	return &Container{
		Location: &locationRepository{db: db},
		Course:   &courseRepository{db: db},
		Hotel:    &hotelRepository{db: db},
		FAQ:      &faqRepository{db: db},
	}
}

// IsDatabaseEmpty reports whether the content tables still need seeding
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM locations")
	if err != nil {
		// Table may not exist yet; treat as empty
		return true, nil
	}
	return count == 0, nil
}
