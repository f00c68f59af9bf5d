package service

import (
	"context"
	"time"

	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	ListLocations(ctx context.Context, lang model.Locale) ([]model.LocationView, error)
	GetLocation(ctx context.Context, slug string, lang model.Locale) (*model.LocationDetailResponse, error)
	NearbyCourses(ctx context.Context, slug string, lang model.Locale, limit int) ([]model.CourseView, error)
	NearbyHotels(ctx context.Context, slug string, lang model.Locale, limit int) ([]model.HotelView, error)
	ListCourses(ctx context.Context, lang model.Locale) ([]model.CourseView, error)
	GetCourse(ctx context.Context, slug string, lang model.Locale) (*model.CourseView, error)
	ListHotels(ctx context.Context, lang model.Locale) ([]model.HotelView, error)
	GetHotel(ctx context.Context, slug string, lang model.Locale) (*model.HotelView, error)
	ListFAQs(ctx context.Context, category model.FAQCategory, lang model.Locale) ([]model.FAQView, error)
	GetFAQ(ctx context.Context, id string, lang model.Locale) (*model.FAQView, error)
	Routes() ([]routes.PageIdentity, error)
	Sitemap(buildTime time.Time) ([]routes.SitemapEntry, error)
}
