package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"github.com/vincegoalt/rydercup2027-api/internal/proximity"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
)

// MockLocationRepository implements repository.LocationRepository interface
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ListLocations(ctx context.Context, lang model.Locale) ([]model.LocationView, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocationView), args.Error(1)
}

func (m *MockLocationRepository) GetLocationBySlug(ctx context.Context, slug string, lang model.Locale) (*model.LocationView, error) {
	args := m.Called(ctx, slug, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocationView), args.Error(1)
}

func (m *MockLocationRepository) BulkInsertLocations(ctx context.Context, locations []model.Location) error {
	args := m.Called(ctx, locations)
	return args.Error(0)
}

// MockCourseRepository implements repository.CourseRepository interface
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) ListCourses(ctx context.Context, lang model.Locale) ([]model.CourseView, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CourseView), args.Error(1)
}

func (m *MockCourseRepository) ListCoursesWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.CourseView, error) {
	args := m.Called(ctx, maxKm, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CourseView), args.Error(1)
}

func (m *MockCourseRepository) GetCourseBySlug(ctx context.Context, slug string, lang model.Locale) (*model.CourseView, error) {
	args := m.Called(ctx, slug, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseView), args.Error(1)
}

func (m *MockCourseRepository) BulkInsertCourses(ctx context.Context, courses []model.GolfCourse) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

// MockHotelRepository implements repository.HotelRepository interface
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) ListHotels(ctx context.Context, lang model.Locale) ([]model.HotelView, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotelView), args.Error(1)
}

func (m *MockHotelRepository) ListHotelsWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.HotelView, error) {
	args := m.Called(ctx, maxKm, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotelView), args.Error(1)
}

func (m *MockHotelRepository) GetHotelBySlug(ctx context.Context, slug string, lang model.Locale) (*model.HotelView, error) {
	args := m.Called(ctx, slug, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HotelView), args.Error(1)
}

func (m *MockHotelRepository) BulkInsertHotels(ctx context.Context, hotels []model.Hotel) error {
	args := m.Called(ctx, hotels)
	return args.Error(0)
}

// MockFAQRepository implements repository.FAQRepository interface
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) ListFAQs(ctx context.Context, lang model.Locale) ([]model.FAQView, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQView), args.Error(1)
}

func (m *MockFAQRepository) ListFAQsByCategory(ctx context.Context, category model.FAQCategory, lang model.Locale) ([]model.FAQView, error) {
	args := m.Called(ctx, category, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQView), args.Error(1)
}

func (m *MockFAQRepository) GetFAQByID(ctx context.Context, id string, lang model.Locale) (*model.FAQView, error) {
	args := m.Called(ctx, id, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQView), args.Error(1)
}

func (m *MockFAQRepository) BulkInsertFAQs(ctx context.Context, faqs []model.FAQ) error {
	args := m.Called(ctx, faqs)
	return args.Error(0)
}

type mocks struct {
	location *MockLocationRepository
	course   *MockCourseRepository
	hotel    *MockHotelRepository
	faq      *MockFAQRepository
}

func newTestService() (*Service, *mocks) {
	m := &mocks{
		location: new(MockLocationRepository),
		course:   new(MockCourseRepository),
		hotel:    new(MockHotelRepository),
		faq:      new(MockFAQRepository),
	}
	repos := &repository.Container{
		Location: m.location,
		Course:   m.course,
		Hotel:    m.hotel,
		FAQ:      m.faq,
	}
	svc := NewService(repos, &content.Catalog{}, "https://example.com")
	return svc, m
}

func TestService_GetLocation(t *testing.T) {
	adare := &model.LocationView{
		Slug:       "adare",
		Name:       "Adare",
		Coordinate: model.Coordinate{Lat: 52.5644, Lng: -8.7889},
	}

	t.Run("hub payload combines nearby courses and hotels", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(adare, nil)
		m.course.On("ListCoursesWithinVenueRadius", mock.Anything, float64(proximity.CourseCeilingKm), model.LocaleEN).Return([]model.CourseView{
			{Slug: "adare-manor", DistanceKm: 0, Coordinate: model.Coordinate{Lat: 52.56, Lng: -8.78}},
			{Slug: "ballybunion-old", DistanceKm: 85, Coordinate: model.Coordinate{Lat: 52.51, Lng: -9.67}},
		}, nil)
		m.hotel.On("ListHotelsWithinVenueRadius", mock.Anything, float64(proximity.HotelCeilingKm), model.LocaleEN).Return([]model.HotelView{
			{Slug: "dunraven-arms", DistanceKm: 1, Coordinate: model.Coordinate{Lat: 52.56, Lng: -8.79}},
		}, nil)

		resp, err := svc.GetLocation(context.Background(), "adare", model.LocaleEN)
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "Adare", resp.Location.Name)
		require.Len(t, resp.NearbyCourses, 2)
		assert.Equal(t, "adare-manor", resp.NearbyCourses[0].Slug)
		assert.Len(t, resp.NearbyHotels, 1)
	})

	t.Run("unknown slug yields nil without error", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "atlantis", model.LocaleEN).Return(nil, nil)

		resp, err := svc.GetLocation(context.Background(), "atlantis", model.LocaleEN)
		assert.NoError(t, err)
		assert.Nil(t, resp)
		m.course.AssertNotCalled(t, "ListCoursesWithinVenueRadius", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown locale normalized to english", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(nil, nil)

		_, err := svc.GetLocation(context.Background(), "adare", model.Locale("fr"))
		assert.NoError(t, err)
		m.location.AssertExpectations(t)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(nil, errors.New("db gone"))

		_, err := svc.GetLocation(context.Background(), "adare", model.LocaleEN)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get location")
	})
}

func TestService_NearbyCourses(t *testing.T) {
	adare := &model.LocationView{
		Slug:       "adare",
		Coordinate: model.Coordinate{Lat: 52.5644, Lng: -8.7889},
	}

	t.Run("limit clamped to listing page cap", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(adare, nil)

		pool := make([]model.CourseView, 0, 15)
		for i := 0; i < 15; i++ {
			pool = append(pool, model.CourseView{
				Slug:       "course",
				DistanceKm: float64(i),
				Coordinate: model.Coordinate{Lat: 52.5 + float64(i)*0.01, Lng: -8.8},
			})
		}
		m.course.On("ListCoursesWithinVenueRadius", mock.Anything, float64(proximity.CourseCeilingKm), model.LocaleEN).Return(pool, nil)

		got, err := svc.NearbyCourses(context.Background(), "adare", model.LocaleEN, 50)
		require.NoError(t, err)
		assert.Len(t, got, proximity.ListingPageLimit)
	})

	t.Run("non-positive limit defaults to listing page cap", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(adare, nil)
		m.course.On("ListCoursesWithinVenueRadius", mock.Anything, float64(proximity.CourseCeilingKm), model.LocaleEN).Return([]model.CourseView{
			{Slug: "adare-manor", DistanceKm: 0, Coordinate: model.Coordinate{Lat: 52.56, Lng: -8.78}},
		}, nil)

		got, err := svc.NearbyCourses(context.Background(), "adare", model.LocaleEN, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleEN).Return(adare, nil)
		m.course.On("ListCoursesWithinVenueRadius", mock.Anything, float64(proximity.CourseCeilingKm), model.LocaleEN).Return([]model.CourseView{}, nil)

		got, err := svc.NearbyCourses(context.Background(), "adare", model.LocaleEN, 6)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown location yields nil", func(t *testing.T) {
		svc, m := newTestService()
		m.location.On("GetLocationBySlug", mock.Anything, "atlantis", model.LocaleEN).Return(nil, nil)

		got, err := svc.NearbyCourses(context.Background(), "atlantis", model.LocaleEN, 6)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestService_NearbyHotels(t *testing.T) {
	adare := &model.LocationView{
		Slug:       "adare",
		Coordinate: model.Coordinate{Lat: 52.5644, Lng: -8.7889},
	}

	svc, m := newTestService()
	m.location.On("GetLocationBySlug", mock.Anything, "adare", model.LocaleES).Return(adare, nil)
	m.hotel.On("ListHotelsWithinVenueRadius", mock.Anything, float64(proximity.HotelCeilingKm), model.LocaleES).Return([]model.HotelView{
		{Slug: "dunraven-arms", DistanceKm: 1, Coordinate: model.Coordinate{Lat: 52.56, Lng: -8.79}},
		{Slug: "limerick-strand", DistanceKm: 20, Coordinate: model.Coordinate{Lat: 52.66, Lng: -8.62}},
	}, nil)

	got, err := svc.NearbyHotels(context.Background(), "adare", model.LocaleES, 12)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dunraven-arms", got[0].Slug)
}

func TestService_ListFAQs(t *testing.T) {
	t.Run("no category lists everything", func(t *testing.T) {
		svc, m := newTestService()
		m.faq.On("ListFAQs", mock.Anything, model.LocaleEN).Return([]model.FAQView{
			{ID: "faq-tickets"}, {ID: "faq-where-stay"},
		}, nil)

		got, err := svc.ListFAQs(context.Background(), "", model.LocaleEN)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("valid category narrows the list", func(t *testing.T) {
		svc, m := newTestService()
		m.faq.On("ListFAQsByCategory", mock.Anything, model.FAQTravel, model.LocaleEN).Return([]model.FAQView{
			{ID: "faq-getting-there", Category: model.FAQTravel},
		}, nil)

		got, err := svc.ListFAQs(context.Background(), model.FAQTravel, model.LocaleEN)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.FAQTravel, got[0].Category)
	})

	t.Run("unknown category is an error", func(t *testing.T) {
		svc, m := newTestService()

		_, err := svc.ListFAQs(context.Background(), model.FAQCategory("weather"), model.LocaleEN)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown faq category")
		m.faq.AssertNotCalled(t, "ListFAQsByCategory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_GetCourse(t *testing.T) {
	svc, m := newTestService()
	m.course.On("GetCourseBySlug", mock.Anything, "ballybunion-old", model.LocaleES).Return(&model.CourseView{
		Slug: "ballybunion-old",
		Name: "Ballybunion Old Course",
	}, nil)
	m.course.On("GetCourseBySlug", mock.Anything, "atlantis-links", model.LocaleEN).Return(nil, nil)

	view, err := svc.GetCourse(context.Background(), "ballybunion-old", model.LocaleES)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Ballybunion Old Course", view.Name)

	missing, err := svc.GetCourse(context.Background(), "atlantis-links", model.LocaleEN)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
