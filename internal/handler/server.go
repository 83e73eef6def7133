// Package handler implements the HTTP handlers for the itinerary planner API.
// All handlers are methods on Server, split into endpoint-specific files
// (itinerary.go, saved.go, language.go, export.go, health.go) that share the
// same struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
	"github.com/jyvais/backend/spec"
)

// ItineraryServicer defines the generation operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the AI collaborator.
type ItineraryServicer interface {
	Generate(ctx context.Context, req domain.TripRequest) (domain.TripResponse, error)
	Translator() i18n.Translator
}

// SavedServicer defines the saved-itinerary operations the handlers depend on.
type SavedServicer interface {
	Save(ctx context.Context, req domain.TripRequest, resp domain.TripResponse, loadedID *int64) (domain.SavedTrip, bool, error)
	List(ctx context.Context, term string, descending bool, page domain.PaginationParams) ([]domain.SavedTrip, int, domain.PaginationParams)
	Get(ctx context.Context, id int64) (domain.SavedTrip, error)
	Delete(ctx context.Context, id int64) error
}

// LanguageServicer defines the active-language operations the handlers depend on.
type LanguageServicer interface {
	Code() string
	Set(ctx context.Context, code string) error
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	itins  ItineraryServicer
	saved  SavedServicer
	langs  LanguageServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itins ItineraryServicer, saved SavedServicer, langs LanguageServicer, export ExportServicer) *Server {
	return &Server{itins: itins, saved: saved, langs: langs, export: export}
}

// Routes builds the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/generate", s.GenerateItinerary)
		r.Post("/share", s.ShareItinerary)
		r.Post("/return-trip", s.ReturnTrip)
		r.Post("/locate", s.Locate)

		r.Get("/", s.ListSaved)
		r.Post("/", s.SaveItinerary)
		r.Get("/{id}", s.GetSaved)
		r.Delete("/{id}", s.DeleteSaved)
	})

	r.Get("/export", s.GetExport)

	r.Get("/language", s.GetLanguage)
	r.Put("/language", s.SetLanguage)

	return r
}

// serveOpenAPI returns the embedded API document.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(spec.OpenAPI) //nolint:errcheck
}
