package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"github.com/vincegoalt/rydercup2027-api/internal/repository"
)

func TestService_RoutesAndSitemap(t *testing.T) {
	catalog := &content.Catalog{
		Locations: []model.Location{{ID: "loc-adare", Slug: "adare"}},
		Courses:   []model.GolfCourse{{ID: "course-adare-manor", Slug: "adare-manor"}},
		Hotels:    []model.Hotel{{ID: "hotel-dunraven", Slug: "dunraven-arms"}},
		FAQs:      []model.FAQ{{ID: "faq-tickets"}},
	}
	svc := NewService(&repository.Container{}, catalog, "https://www.rydercupadare2027.com")

	identities, err := svc.Routes()
	require.NoError(t, err)
	// Per locale: 6 static + 1 course + 1 hotel + 1 location + 3 service + 1 faq
	assert.Len(t, identities, 2*13)

	buildTime := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	entries, err := svc.Sitemap(buildTime)
	require.NoError(t, err)
	require.Len(t, entries, len(identities))

	urls := make(map[string]bool)
	for _, e := range entries {
		urls[e.URL] = true
		assert.Equal(t, buildTime, e.LastMod)
	}
	assert.True(t, urls["https://www.rydercupadare2027.com/en"])
	assert.True(t, urls["https://www.rydercupadare2027.com/es/locations/adare/getting-to"])
	assert.True(t, urls["https://www.rydercupadare2027.com/en/hotels/dunraven-arms"])
}
