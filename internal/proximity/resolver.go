// Package proximity derives "nearby" relationships between site entities.
// The content graph has no stored foreign keys: which courses and hotels
// belong on a location page is computed on demand from coordinates.
package proximity

import (
	"sort"

	"github.com/vincegoalt/rydercup2027-api/internal/geo"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

// Ceilings and caps fixed per call site. The ceiling is measured against the
// curated distance from Adare Manor, keeping results inside the touring
// radius regardless of which location page is being viewed.
const (
	CourseCeilingKm = 180
	HotelCeilingKm  = 100

	HubPageLimit     = 6
	ListingPageLimit = 12
	HotelPanelLimit  = 3
)

// Candidate is any entity that can be ranked by proximity
type Candidate interface {
	Coord() model.Coordinate
	VenueDistanceKm() float64
}

// Nearby filters pool to candidates whose curated venue distance is under
// ceilingKm, ranks them by closeness to ref, and truncates to limit.
//
// The filter and the sort intentionally use different reference points: the
// filter keeps entities within the broader touring radius of Adare Manor,
// while the sort orders them by the location page being viewed. The sort is
// stable, so equal scores keep their catalog order.
func Nearby[C Candidate](ref model.Coordinate, pool []C, ceilingKm float64, limit int) []C {
	if limit < 0 {
		limit = 0
	}

	filtered := make([]C, 0, len(pool))
	for _, c := range pool {
		if c.VenueDistanceKm() < ceilingKm {
			filtered = append(filtered, c)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return geo.RankScore(filtered[i].Coord(), ref) < geo.RankScore(filtered[j].Coord(), ref)
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
