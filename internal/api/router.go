package api

import (
	"github.com/gorilla/mux"
	"github.com/vincegoalt/rydercup2027-api/internal/service"
	"github.com/vincegoalt/rydercup2027-api/internal/stats"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, statsCollector *stats.Collector, forms *FormHandler) *mux.Router {
	handler := NewHandler(service)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	// Health check and sitemap at the root
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.HandleFunc("/sitemap.xml", handler.Sitemap).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/locations", handler.ListLocations).Methods("GET")
	v1.HandleFunc("/locations/{slug}", handler.GetLocation).Methods("GET")
	v1.HandleFunc("/locations/{slug}/nearby-courses", handler.NearbyCourses).Methods("GET")
	v1.HandleFunc("/locations/{slug}/nearby-hotels", handler.NearbyHotels).Methods("GET")
	v1.HandleFunc("/courses", handler.ListCourses).Methods("GET")
	v1.HandleFunc("/courses/{slug}", handler.GetCourse).Methods("GET")
	v1.HandleFunc("/hotels", handler.ListHotels).Methods("GET")
	v1.HandleFunc("/hotels/{slug}", handler.GetHotel).Methods("GET")
	v1.HandleFunc("/faqs", handler.ListFAQs).Methods("GET")
	v1.HandleFunc("/faqs/{id}", handler.GetFAQ).Methods("GET")
	v1.HandleFunc("/routes", handler.GetRoutes).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")
	v1.HandleFunc("/contact", forms.Contact).Methods("POST")
	v1.HandleFunc("/newsletter", forms.Newsletter).Methods("POST")

	return router
}
