package model

// LocationView is a location resolved to a single language
type LocationView struct {
	ID                string     `json:"id" db:"id"`
	Slug              string     `json:"slug" db:"slug"`
	Name              string     `json:"name" db:"name"`
	County            string     `json:"county" db:"county"`
	Coordinate        Coordinate `json:"coordinates"`
	NearestAirport    string     `json:"nearest_airport" db:"nearest_airport"`
	AirportDistance   string     `json:"airport_distance" db:"airport_distance"`
	DistanceFromVenue string     `json:"distance_from_venue" db:"distance_from_venue"`
	Description       string     `json:"description" db:"description"`
	Attractions       []string   `json:"attractions"`
	Language          Locale     `json:"language"`
}

// CourseView is a golf course resolved to a single language
type CourseView struct {
	ID          string     `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Name        string     `json:"name" db:"name"`
	Location    string     `json:"location" db:"location"`
	County      string     `json:"county" db:"county"`
	Distance    string     `json:"distance" db:"distance"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	Type        CourseType `json:"type" db:"course_type"`
	Price       string     `json:"price" db:"price"`
	Designer    string     `json:"designer" db:"designer"`
	Description string     `json:"description" db:"description"`
	Highlights  []string   `json:"highlights"`
	Image       string     `json:"image" db:"image"`
	Coordinate  Coordinate `json:"coordinates"`
	Language    Locale     `json:"language"`
}

// Coord returns the course coordinate for proximity ranking
func (v CourseView) Coord() Coordinate { return v.Coordinate }

// VenueDistanceKm returns the curated distance from Adare Manor
func (v CourseView) VenueDistanceKm() float64 { return v.DistanceKm }

// HotelView is a hotel resolved to a single language
type HotelView struct {
	ID          string     `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Name        string     `json:"name" db:"name"`
	Location    string     `json:"location" db:"location"`
	County      string     `json:"county" db:"county"`
	Distance    string     `json:"distance" db:"distance"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	PriceRange  PriceRange `json:"price_range" db:"price_range"`
	Rating      float64    `json:"rating" db:"rating"`
	Amenities   []string   `json:"amenities"`
	Description string     `json:"description" db:"description"`
	Image       string     `json:"image" db:"image"`
	Coordinate  Coordinate `json:"coordinates"`
	Language    Locale     `json:"language"`
}

// Coord returns the hotel coordinate for proximity ranking
func (v HotelView) Coord() Coordinate { return v.Coordinate }

// VenueDistanceKm returns the curated distance from Adare Manor
func (v HotelView) VenueDistanceKm() float64 { return v.DistanceKm }

// FAQView is a FAQ resolved to a single language
type FAQView struct {
	ID           string      `json:"id" db:"id"`
	Category     FAQCategory `json:"category" db:"category"`
	Question     string      `json:"question" db:"question"`
	Answer       string      `json:"answer" db:"answer"`
	RelatedPages []string    `json:"related_pages"`
	Keywords     []string    `json:"keywords"`
	Language     Locale      `json:"language"`
}

// LocationDetailResponse is the payload for a location hub page: the location
// itself plus its derived nearby courses and hotels
type LocationDetailResponse struct {
	Location      LocationView `json:"location"`
	NearbyCourses []CourseView `json:"nearby_courses"`
	NearbyHotels  []HotelView  `json:"nearby_hotels"`
}

// ContactRequest is the contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Locale  Locale `json:"locale"`
}

// NewsletterRequest is the newsletter signup payload
type NewsletterRequest struct {
	Email  string `json:"email"`
	Locale Locale `json:"locale"`
}

// FormResponse is the success payload for form submissions
type FormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
