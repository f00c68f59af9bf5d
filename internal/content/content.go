// Package content holds the embedded site catalog: the fixed set of
// locations, golf courses, hotels and FAQs the site is built from. The data
// is bundled at compile time and validated before anything is allowed to
// serve or emit it.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/vincegoalt/rydercup2027-api/internal/geo"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

//go:embed data/*.json
var dataFS embed.FS

// EventDates is the canonical tournament date string used across the site
const EventDates = "September 17-19, 2027"

// Venue is the fixed reference point all curated distances are measured from
var Venue = model.Coordinate{Lat: 52.5644, Lng: -8.7889}

// Catalog is the full entity store, immutable once loaded
type Catalog struct {
	Locations []model.Location
	Courses   []model.GolfCourse
	Hotels    []model.Hotel
	FAQs      []model.FAQ
}

// Load parses the embedded catalog and validates it. A malformed catalog is
// a build defect, so any violation is returned as an error rather than
// letting broken data reach a page.
func Load() (*Catalog, error) {
	var c Catalog

	if err := readJSON("data/locations.json", &c.Locations); err != nil {
		return nil, err
	}
	if err := readJSON("data/courses.json", &c.Courses); err != nil {
		return nil, err
	}
	if err := readJSON("data/hotels.json", &c.Hotels); err != nil {
		return nil, err
	}
	if err := readJSON("data/faqs.json", &c.FAQs); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func readJSON(name string, dst any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks every data-integrity rule the rest of the system relies
// on: unique URL-safe slugs, mandatory English text, well-formed coordinates,
// sane distances and known enum values. All violations are reported at once.
func (c *Catalog) Validate() error {
	var errs []error

	slugs := make(map[string]string)
	ids := make(map[string]string)

	claim := func(kind, id, slug string) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s: empty id", kind))
		} else if prev, ok := ids[id]; ok {
			errs = append(errs, fmt.Errorf("%s %q: id collides with %s", kind, id, prev))
		} else {
			ids[id] = kind
		}
		if slug == "" {
			return // FAQs have no slug
		}
		if !slugPattern.MatchString(slug) {
			errs = append(errs, fmt.Errorf("%s %q: slug %q is not URL-safe", kind, id, slug))
		}
		key := kind + "/" + slug
		if prev, ok := slugs[key]; ok {
			errs = append(errs, fmt.Errorf("%s %q: slug %q collides with %s", kind, id, slug, prev))
		} else {
			slugs[key] = id
		}
	}

	requireEN := func(kind, id, field, en string) {
		if en == "" {
			errs = append(errs, fmt.Errorf("%s %q: missing English %s", kind, id, field))
		}
	}

	for _, l := range c.Locations {
		claim("location", l.ID, l.Slug)
		requireEN("location", l.ID, "description", l.Description.EN)
		if len(l.Attractions.EN) == 0 {
			errs = append(errs, fmt.Errorf("location %q: missing English attractions", l.ID))
		}
		if !geo.ValidCoordinate(l.Coordinate) {
			errs = append(errs, fmt.Errorf("location %q: invalid coordinate", l.ID))
		}
	}

	for _, gc := range c.Courses {
		claim("course", gc.ID, gc.Slug)
		requireEN("course", gc.ID, "description", gc.Description.EN)
		if len(gc.Highlights.EN) == 0 {
			errs = append(errs, fmt.Errorf("course %q: missing English highlights", gc.ID))
		}
		if !geo.ValidCoordinate(gc.Coordinate) {
			errs = append(errs, fmt.Errorf("course %q: invalid coordinate", gc.ID))
		}
		if gc.DistanceKm < 0 {
			errs = append(errs, fmt.Errorf("course %q: negative distanceKm", gc.ID))
		}
		if !model.IsValidCourseType(gc.Type) {
			errs = append(errs, fmt.Errorf("course %q: unknown type %q", gc.ID, gc.Type))
		}
	}

	for _, h := range c.Hotels {
		claim("hotel", h.ID, h.Slug)
		requireEN("hotel", h.ID, "description", h.Description.EN)
		if len(h.Amenities.EN) == 0 {
			errs = append(errs, fmt.Errorf("hotel %q: missing English amenities", h.ID))
		}
		if !geo.ValidCoordinate(h.Coordinate) {
			errs = append(errs, fmt.Errorf("hotel %q: invalid coordinate", h.ID))
		}
		if h.DistanceKm < 0 {
			errs = append(errs, fmt.Errorf("hotel %q: negative distanceKm", h.ID))
		}
		if !model.IsValidPriceRange(h.PriceRange) {
			errs = append(errs, fmt.Errorf("hotel %q: unknown price range %q", h.ID, h.PriceRange))
		}
		if h.Rating < 1.0 || h.Rating > 5.0 {
			errs = append(errs, fmt.Errorf("hotel %q: rating %.1f out of range", h.ID, h.Rating))
		}
	}

	for _, f := range c.FAQs {
		claim("faq", f.ID, "")
		requireEN("faq", f.ID, "question", f.Question.EN)
		requireEN("faq", f.ID, "answer", f.Answer.EN)
		if !model.IsValidFAQCategory(f.Category) {
			errs = append(errs, fmt.Errorf("faq %q: unknown category %q", f.ID, f.Category))
		}
	}

	return errors.Join(errs...)
}
