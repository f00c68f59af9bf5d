// Package geo provides the coordinate arithmetic used to rank site content
// by proximity.
package geo

import (
	"math"

	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

// RankScore computes a cheap proximity score between two coordinates: the L1
// distance in degree space. It is deterministic, symmetric and zero only for
// identical coordinates, which is all the ranking needs.
//
// It is NOT a physical distance. Degree space is not isotropic (a degree of
// longitude shrinks toward the poles), so the score is only meaningful for
// ordering points within a small region such as southwest Ireland. Distances
// shown to users come from the curated display fields instead.
func RankScore(a, b model.Coordinate) float64 {
	return math.Abs(a.Lat-b.Lat) + math.Abs(a.Lng-b.Lng)
}

// ValidCoordinate reports whether c holds finite, in-range decimal degrees.
// Catalog validation rejects anything else so NaN can never reach a sort.
func ValidCoordinate(c model.Coordinate) bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
