// Package service contains the business logic for the itinerary planner.
// Services validate inputs, enforce the pipeline's invariants, and
// orchestrate repo and collaborator calls. No HTTP and no storage formats
// live here.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jyvais/backend/internal/ai"
	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
)

// LanguageSource yields the active interface language code.
type LanguageSource interface {
	Code() string
}

// ItineraryService runs the generation pipeline: validate, build the
// localized query, call the AI collaborator, echo the route name.
type ItineraryService struct {
	gen  ai.Generator
	lang LanguageSource

	// inFlight guards the single-outstanding-request rule: one generation
	// per session at a time, no queueing, no cancellation.
	inFlight atomic.Bool
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(gen ai.Generator, lang LanguageSource) *ItineraryService {
	return &ItineraryService{gen: gen, lang: lang}
}

// Validate checks that the request has a name, a start, and a destination.
// Intermediate steps may be empty; they are filtered out before use.
// Returns a *domain.ValidationError describing the missing fields.
func Validate(req domain.TripRequest) error {
	ve := &domain.ValidationError{
		MissingName:        strings.TrimSpace(req.Name) == "",
		MissingStart:       strings.TrimSpace(req.Waypoints.Start()) == "",
		MissingDestination: strings.TrimSpace(req.Waypoints.Destination()) == "",
	}
	if len(ve.Missing()) > 0 {
		return ve
	}
	return nil
}

// Generate runs one generation attempt for the request.
//
// While an attempt is outstanding, further calls fail with domain.ErrBusy.
// A collaborator error or an empty description fails the attempt with
// domain.ErrGeneration carrying the localized user-facing message; nothing is
// retried and no partial state is kept.
func (s *ItineraryService) Generate(ctx context.Context, req domain.TripRequest) (domain.TripResponse, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.TripResponse{}, fmt.Errorf("service.ItineraryService.Generate: %w", domain.ErrBusy)
	}
	defer s.inFlight.Store(false)

	if err := Validate(req); err != nil {
		return domain.TripResponse{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	tr := i18n.Match(s.lang.Code())
	description, err := s.gen.Generate(ctx, ai.Request{
		Query:             BuildQuery(req, tr),
		SystemInstruction: tr.T("system.instruction"),
		Location:          req.CurrentLocation,
	})
	if err != nil || strings.TrimSpace(description) == "" {
		return domain.TripResponse{}, fmt.Errorf("%w: %s", domain.ErrGeneration, tr.T("error.generation"))
	}

	return domain.TripResponse{Description: description, RouteName: req.Name}, nil
}

// Translator returns the translator for the active language.
func (s *ItineraryService) Translator() i18n.Translator {
	return i18n.Match(s.lang.Code())
}

// UseCurrentLocation returns a copy of the request with the start waypoint's
// text set to the localized current-location display string and the trip's
// coordinates attached. Later manual edits to the start text do not clear the
// coordinates.
func UseCurrentLocation(req domain.TripRequest, coords domain.Coordinates, tr i18n.Translator) domain.TripRequest {
	out := req.Clone()
	if len(out.Waypoints) < 2 {
		out.Waypoints = domain.NewWaypointList()
	}
	out.Waypoints.SetValue(0, fmt.Sprintf("%s (%.4f, %.4f)", tr.T("location.current"), coords.Latitude, coords.Longitude))
	loc := coords
	out.CurrentLocation = &loc
	return out
}
