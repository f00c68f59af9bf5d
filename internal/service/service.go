package service

import (
	"time"

	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
)

// Service provides business logic for the API
type Service struct {
	locationRepo repository.LocationRepository
	courseRepo   repository.CourseRepository
	hotelRepo    repository.HotelRepository
	faqRepo      repository.FAQRepository

	catalog *content.Catalog
	baseURL string
}

// NewService creates a new service instance
func NewService(repos *repository.Container, catalog *content.Catalog, baseURL string) *Service {
	return &Service{
		locationRepo: repos.Location,
		courseRepo:   repos.Course,
		hotelRepo:    repos.Hotel,
		faqRepo:      repos.FAQ,
		catalog:      catalog,
		baseURL:      baseURL,
	}
}

// Routes enumerates every page identity the site exposes
func (s *Service) Routes() ([]routes.PageIdentity, error) {
	return routes.Generate(s.catalog)
}

// Sitemap builds the sitemap entries for the full route set
func (s *Service) Sitemap(buildTime time.Time) ([]routes.SitemapEntry, error) {
	identities, err := routes.Generate(s.catalog)
	if err != nil {
		return nil, err
	}
	return routes.SitemapEntries(identities, s.baseURL, buildTime), nil
}
