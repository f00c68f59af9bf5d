package service

import (
	"context"
	"fmt"

	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"github.com/vincegoalt/rydercup2027-api/internal/proximity"
)

// normalizeLang collapses unknown or empty locales to English
func normalizeLang(lang model.Locale) model.Locale {
	if model.IsValidLocale(lang) {
		return lang
	}
	return model.LocaleEN
}

// ListLocations returns all locations resolved to one language
func (s *Service) ListLocations(ctx context.Context, lang model.Locale) ([]model.LocationView, error) {
	lang = normalizeLang(lang)
	views, err := s.locationRepo.ListLocations(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return views, nil
}

// GetLocation returns a location hub payload: the location plus its derived
// nearby courses and hotels. Returns nil when the slug is unknown.
func (s *Service) GetLocation(ctx context.Context, slug string, lang model.Locale) (*model.LocationDetailResponse, error) {
	lang = normalizeLang(lang)

	loc, err := s.locationRepo.GetLocationBySlug(ctx, slug, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, nil
	}

	courses, err := s.courseRepo.ListCoursesWithinVenueRadius(ctx, proximity.CourseCeilingKm, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	hotels, err := s.hotelRepo.ListHotelsWithinVenueRadius(ctx, proximity.HotelCeilingKm, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	return &model.LocationDetailResponse{
		Location:      *loc,
		NearbyCourses: proximity.Nearby(loc.Coordinate, courses, proximity.CourseCeilingKm, proximity.HubPageLimit),
		NearbyHotels:  proximity.Nearby(loc.Coordinate, hotels, proximity.HotelCeilingKm, proximity.HotelPanelLimit),
	}, nil
}

// NearbyCourses ranks qualifying courses by closeness to the named location,
// for the per-location golf listing page. Returns nil when the slug is
// unknown; an empty slice is a valid "nothing nearby" outcome.
func (s *Service) NearbyCourses(ctx context.Context, slug string, lang model.Locale, limit int) ([]model.CourseView, error) {
	lang = normalizeLang(lang)
	if limit <= 0 || limit > proximity.ListingPageLimit {
		limit = proximity.ListingPageLimit
	}

	loc, err := s.locationRepo.GetLocationBySlug(ctx, slug, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, nil
	}

	courses, err := s.courseRepo.ListCoursesWithinVenueRadius(ctx, proximity.CourseCeilingKm, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	nearby := proximity.Nearby(loc.Coordinate, courses, proximity.CourseCeilingKm, limit)
	if nearby == nil {
		nearby = []model.CourseView{}
	}
	return nearby, nil
}

// NearbyHotels ranks qualifying hotels by closeness to the named location
func (s *Service) NearbyHotels(ctx context.Context, slug string, lang model.Locale, limit int) ([]model.HotelView, error) {
	lang = normalizeLang(lang)
	if limit <= 0 || limit > proximity.ListingPageLimit {
		limit = proximity.ListingPageLimit
	}

	loc, err := s.locationRepo.GetLocationBySlug(ctx, slug, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, nil
	}

	hotels, err := s.hotelRepo.ListHotelsWithinVenueRadius(ctx, proximity.HotelCeilingKm, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	nearby := proximity.Nearby(loc.Coordinate, hotels, proximity.HotelCeilingKm, limit)
	if nearby == nil {
		nearby = []model.HotelView{}
	}
	return nearby, nil
}

// ListCourses returns all golf courses resolved to one language
func (s *Service) ListCourses(ctx context.Context, lang model.Locale) ([]model.CourseView, error) {
	lang = normalizeLang(lang)
	views, err := s.courseRepo.ListCourses(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return views, nil
}

// GetCourse returns one course by slug, nil when unknown
func (s *Service) GetCourse(ctx context.Context, slug string, lang model.Locale) (*model.CourseView, error) {
	lang = normalizeLang(lang)
	view, err := s.courseRepo.GetCourseBySlug(ctx, slug, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return view, nil
}

// ListHotels returns all hotels resolved to one language
func (s *Service) ListHotels(ctx context.Context, lang model.Locale) ([]model.HotelView, error) {
	lang = normalizeLang(lang)
	views, err := s.hotelRepo.ListHotels(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return views, nil
}

// GetHotel returns one hotel by slug, nil when unknown
func (s *Service) GetHotel(ctx context.Context, slug string, lang model.Locale) (*model.HotelView, error) {
	lang = normalizeLang(lang)
	view, err := s.hotelRepo.GetHotelBySlug(ctx, slug, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	return view, nil
}

// ListFAQs returns FAQs, optionally narrowed to one category
func (s *Service) ListFAQs(ctx context.Context, category model.FAQCategory, lang model.Locale) ([]model.FAQView, error) {
	lang = normalizeLang(lang)

	if category != "" {
		if !model.IsValidFAQCategory(category) {
			return nil, fmt.Errorf("unknown faq category %q", category)
		}
		views, err := s.faqRepo.ListFAQsByCategory(ctx, category, lang)
		if err != nil {
			return nil, fmt.Errorf("failed to list faqs: %w", err)
		}
		return views, nil
	}

	views, err := s.faqRepo.ListFAQs(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return views, nil
}

// GetFAQ returns one FAQ by id, nil when unknown
func (s *Service) GetFAQ(ctx context.Context, id string, lang model.Locale) (*model.FAQView, error) {
	lang = normalizeLang(lang)
	view, err := s.faqRepo.GetFAQByID(ctx, id, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return view, nil
}
