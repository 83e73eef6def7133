package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jyvais/backend/internal/domain"
)

// saveRequest is the body for POST /itineraries. LoadedID is the id of the
// snapshot currently loaded in the editor, if any; it decides between update
// and save-as-new semantics.
type saveRequest struct {
	Request  domain.TripRequest  `json:"request"`
	Response domain.TripResponse `json:"response"`
	LoadedID *int64              `json:"loadedId,omitempty"`
}

// listResponse is the body for GET /itineraries.
type listResponse struct {
	Data       []domain.SavedTrip `json:"data"`
	Pagination pagination         `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListSaved handles GET /itineraries.
// Supports ?q= (case-insensitive substring match on the name),
// ?sort=asc|desc (name order, default asc), and ?page=/?limit= pagination
// applied after search and sort. Out-of-range pages are clamped.
func (s *Server) ListSaved(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domain.NewPaginationParams(intParam(q.Get("page")), intParam(q.Get("limit")))

	items, total, applied := s.saved.List(r.Context(), q.Get("q"), q.Get("sort") == "desc", params)
	writeJSON(w, http.StatusOK, listResponse{
		Data:       items,
		Pagination: pagination{Page: applied.Page, Limit: applied.Limit, Total: total},
	})
}

// SaveItinerary handles POST /itineraries.
// Returns 200 when an existing snapshot was updated in place, 201 when a new
// one was created.
func (s *Server) SaveItinerary(w http.ResponseWriter, r *http.Request) {
	var body saveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body is required", nil)
		return
	}
	if err := validTripShape(body.Request); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}

	saved, updated, err := s.saved.Save(r.Context(), body.Request, body.Response, body.LoadedID)
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusCreated
	if updated {
		status = http.StatusOK
	}
	writeJSON(w, status, saved)
}

// GetSaved handles GET /itineraries/{id}.
func (s *Server) GetSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	saved, err := s.saved.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteSaved handles DELETE /itineraries/{id}.
func (s *Server) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := s.saved.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// idParam parses the {id} path parameter, writing a 400 on malformed input.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid itinerary id", nil)
		return 0, false
	}
	return id, true
}

// intParam parses an optional integer query parameter, nil when absent or
// malformed.
func intParam(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
