package model

// Coordinate represents geographic coordinates in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// CourseType classifies a golf course
type CourseType string

const (
	CourseLinks        CourseType = "links"
	CourseParkland     CourseType = "parkland"
	CourseChampionship CourseType = "championship"
)

// IsValidCourseType reports whether t is a known course type
func IsValidCourseType(t CourseType) bool {
	switch t {
	case CourseLinks, CourseParkland, CourseChampionship:
		return true
	}
	return false
}

// PriceRange is a hotel price band
type PriceRange string

const (
	PriceModerate PriceRange = "€€"
	PriceUpscale  PriceRange = "€€€"
	PriceLuxury   PriceRange = "€€€€"
)

// IsValidPriceRange reports whether p is a known price band
func IsValidPriceRange(p PriceRange) bool {
	switch p {
	case PriceModerate, PriceUpscale, PriceLuxury:
		return true
	}
	return false
}

// FAQCategory groups frequently asked questions by topic
type FAQCategory string

const (
	FAQRyderCup   FAQCategory = "ryder-cup"
	FAQAdareManor FAQCategory = "adare-manor"
	FAQTravel     FAQCategory = "travel"
	FAQGolf       FAQCategory = "golf"
	FAQCosts      FAQCategory = "costs"
)

// IsValidFAQCategory reports whether c is a known FAQ category
func IsValidFAQCategory(c FAQCategory) bool {
	switch c {
	case FAQRyderCup, FAQAdareManor, FAQTravel, FAQGolf, FAQCosts:
		return true
	}
	return false
}

// Location is a town or area visitors base themselves in.
// Its relationships to courses and hotels are not stored; they are derived
// from coordinates at resolution time.
type Location struct {
	ID                string        `json:"id"`
	Slug              string        `json:"slug"`
	Name              string        `json:"name"`
	County            string        `json:"county"`
	Coordinate        Coordinate    `json:"coordinates"`
	NearestAirport    string        `json:"nearestAirport"`
	AirportDistance   string        `json:"airportDistance"`
	DistanceFromVenue string        `json:"distanceFromVenue"`
	Description       LocalizedText `json:"description"`
	Attractions       LocalizedList `json:"attractions"`
}

// GolfCourse is a playable course promoted on the site.
// DistanceKm is the curated road distance from Adare Manor, used for radius
// filtering; Distance is the display string shown to users.
type GolfCourse struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	County      string        `json:"county"`
	Distance    string        `json:"distance"`
	DistanceKm  float64       `json:"distanceKm"`
	Type        CourseType    `json:"type"`
	Price       string        `json:"price"`
	Designer    string        `json:"designer"`
	Description LocalizedText `json:"description"`
	Highlights  LocalizedList `json:"highlights"`
	Image       string        `json:"image"`
	Coordinate  Coordinate    `json:"coordinates"`
}

// Coord returns the course coordinate for proximity ranking
func (c GolfCourse) Coord() Coordinate { return c.Coordinate }

// VenueDistanceKm returns the curated distance from Adare Manor
func (c GolfCourse) VenueDistanceKm() float64 { return c.DistanceKm }

// Hotel is an accommodation option promoted on the site
type Hotel struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	County      string        `json:"county"`
	Distance    string        `json:"distance"`
	DistanceKm  float64       `json:"distanceKm"`
	PriceRange  PriceRange    `json:"priceRange"`
	Rating      float64       `json:"rating"`
	Amenities   LocalizedList `json:"amenities"`
	Description LocalizedText `json:"description"`
	Image       string        `json:"image"`
	Coordinate  Coordinate    `json:"coordinates"`
}

// Coord returns the hotel coordinate for proximity ranking
func (h Hotel) Coord() Coordinate { return h.Coordinate }

// VenueDistanceKm returns the curated distance from Adare Manor
func (h Hotel) VenueDistanceKm() float64 { return h.DistanceKm }

// FAQ is a frequently asked question with localized copy.
// RelatedPages are site paths (without locale prefix) the answer links to.
type FAQ struct {
	ID           string        `json:"id"`
	Category     FAQCategory   `json:"category"`
	Question     LocalizedText `json:"question"`
	Answer       LocalizedText `json:"answer"`
	RelatedPages []string      `json:"relatedPages"`
	Keywords     []string      `json:"keywords"`
}
