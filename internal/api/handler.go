package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"github.com/vincegoalt/rydercup2027-api/internal/routes"
	"github.com/vincegoalt/rydercup2027-api/internal/service"
)

// Handler handles content HTTP requests
type Handler struct {
	service service.ServiceInterface
	// buildTime stamps sitemap entries; the catalog has no per-entity dates
	buildTime time.Time
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service, buildTime: time.Now()}
}

func langParam(r *http.Request) model.Locale {
	lang := model.Locale(r.URL.Query().Get("lang"))
	if lang == "" {
		return model.LocaleEN
	}
	return lang
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// ListLocations handles GET /api/v1/locations
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListLocations(r.Context(), langParam(r))
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"locations": views, "count": len(views)})
}

// GetLocation handles GET /api/v1/locations/{slug}
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	detail, err := h.service.GetLocation(r.Context(), slug, langParam(r))
	if err != nil {
		log.Printf("Error getting location: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if detail == nil {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, detail)
}

func limitParam(r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 0, false
	}
	return limit, true
}

// NearbyCourses handles GET /api/v1/locations/{slug}/nearby-courses
func (h *Handler) NearbyCourses(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	limit, ok := limitParam(r)
	if !ok {
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	views, err := h.service.NearbyCourses(r.Context(), slug, langParam(r), limit)
	if err != nil {
		log.Printf("Error resolving nearby courses: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if views == nil {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"courses": views, "count": len(views)})
}

// NearbyHotels handles GET /api/v1/locations/{slug}/nearby-hotels
func (h *Handler) NearbyHotels(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	limit, ok := limitParam(r)
	if !ok {
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	views, err := h.service.NearbyHotels(r.Context(), slug, langParam(r), limit)
	if err != nil {
		log.Printf("Error resolving nearby hotels: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if views == nil {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"hotels": views, "count": len(views)})
}

// ListCourses handles GET /api/v1/courses
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListCourses(r.Context(), langParam(r))
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"courses": views, "count": len(views)})
}

// GetCourse handles GET /api/v1/courses/{slug}
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	view, err := h.service.GetCourse(r.Context(), slug, langParam(r))
	if err != nil {
		log.Printf("Error getting course: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if view == nil {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}
	writeJSON(w, view)
}

// ListHotels handles GET /api/v1/hotels
func (h *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListHotels(r.Context(), langParam(r))
	if err != nil {
		log.Printf("Error listing hotels: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"hotels": views, "count": len(views)})
}

// GetHotel handles GET /api/v1/hotels/{slug}
func (h *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	view, err := h.service.GetHotel(r.Context(), slug, langParam(r))
	if err != nil {
		log.Printf("Error getting hotel: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if view == nil {
		http.Error(w, "hotel not found", http.StatusNotFound)
		return
	}
	writeJSON(w, view)
}

// ListFAQs handles GET /api/v1/faqs
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	category := model.FAQCategory(r.URL.Query().Get("category"))
	if category != "" && !model.IsValidFAQCategory(category) {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	views, err := h.service.ListFAQs(r.Context(), category, langParam(r))
	if err != nil {
		log.Printf("Error listing faqs: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"faqs": views, "count": len(views)})
}

// GetFAQ handles GET /api/v1/faqs/{id}
func (h *Handler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := h.service.GetFAQ(r.Context(), id, langParam(r))
	if err != nil {
		log.Printf("Error getting faq: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if view == nil {
		http.Error(w, "faq not found", http.StatusNotFound)
		return
	}
	writeJSON(w, view)
}

// GetRoutes handles GET /api/v1/routes
func (h *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	identities, err := h.service.Routes()
	if err != nil {
		log.Printf("Error generating routes: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type routeEntry struct {
		Locale   model.Locale        `json:"locale"`
		Path     string              `json:"path"`
		Category routes.PageCategory `json:"category"`
	}
	out := make([]routeEntry, 0, len(identities))
	for _, id := range identities {
		out = append(out, routeEntry{Locale: id.Locale, Path: id.Path, Category: id.Category})
	}
	writeJSON(w, map[string]any{"routes": out, "count": len(out)})
}

// Sitemap handles GET /sitemap.xml
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Sitemap(h.buildTime)
	if err != nil {
		log.Printf("Error generating sitemap: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := routes.WriteXML(w, entries); err != nil {
		log.Printf("Error writing sitemap: %v", err)
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
