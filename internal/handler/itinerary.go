package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/service"
)

// generateResponse is the body returned by POST /itineraries/generate:
// the AI response plus the share artifacts derived from the request.
type generateResponse struct {
	Response domain.TripResponse `json:"response"`
	Links    service.ShareLinks  `json:"links"`
}

// GenerateItinerary handles POST /itineraries/generate.
// It runs one generation attempt and returns the description together with
// the map, QR, and mailto links derived from the original request.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTripRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}

	resp, err := s.itins.Generate(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	links, err := service.BuildShareLinks(req, resp.RouteName, s.itins.Translator())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Response: resp, Links: links})
}

// ShareItinerary handles POST /itineraries/share.
// It derives the share artifacts without calling the AI collaborator; the
// output depends only on the posted request and the active language.
func (s *Server) ShareItinerary(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTripRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	if err := service.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	links, err := service.BuildShareLinks(req, req.Name, s.itins.Translator())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

// ReturnTrip handles POST /itineraries/return-trip.
// It returns the homeward variant of the posted request: waypoints reversed,
// name re-suffixed in the active language.
func (s *Server) ReturnTrip(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTripRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}

	writeJSON(w, http.StatusOK, service.PrepareReturn(req, s.itins.Translator()))
}

// locateRequest is the body for POST /itineraries/locate.
type locateRequest struct {
	Request     domain.TripRequest `json:"request"`
	Coordinates domain.Coordinates `json:"coordinates"`
}

// Locate handles POST /itineraries/locate.
// It applies device coordinates to the posted request: the start waypoint's
// text becomes the localized current-location string and the coordinates are
// attached to the trip.
func (s *Server) Locate(w http.ResponseWriter, r *http.Request) {
	var body locateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body is required", nil)
		return
	}
	if err := validTripShape(body.Request); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}

	writeJSON(w, http.StatusOK, service.UseCurrentLocation(body.Request, body.Coordinates, s.itins.Translator()))
}

// decodeTripRequest decodes and shape-checks a TripRequest body.
func decodeTripRequest(r *http.Request) (domain.TripRequest, error) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.TripRequest{}, errors.New("request body is required")
	}
	if err := validTripShape(req); err != nil {
		return domain.TripRequest{}, err
	}
	return req, nil
}

// validTripShape rejects bodies that no well-formed client produces: an
// unknown transport mode or fewer than two waypoints. Field-level validation
// (missing name, start, destination) stays in the service layer.
func validTripShape(req domain.TripRequest) error {
	if !req.TransportMode.Valid() {
		return errors.New("unknown transport mode " + string(req.TransportMode))
	}
	if len(req.Waypoints) < 2 {
		return errors.New("a trip needs at least a start and a destination waypoint")
	}
	return nil
}
