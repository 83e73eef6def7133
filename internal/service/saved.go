package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
	"github.com/jyvais/backend/internal/repo"
)

// SavedService implements the saved-itinerary operations: snapshotting the
// live request/response pair, listing with search, collation-aware sort and
// pagination, loading and deleting snapshots.
type SavedService struct {
	trips *repo.SavedTripRepo
	lang  LanguageSource
}

// NewSavedService constructs a SavedService backed by the provided repo.
func NewSavedService(trips *repo.SavedTripRepo, lang LanguageSource) *SavedService {
	return &SavedService{trips: trips, lang: lang}
}

// Save snapshots a request/response pair. A save requires a valid request and
// a non-empty description; a loaded snapshot whose name is unchanged is
// updated in place, anything else is appended as a new entry.
// The returned bool reports whether an existing entry was updated.
func (s *SavedService) Save(ctx context.Context, req domain.TripRequest, resp domain.TripResponse, loadedID *int64) (domain.SavedTrip, bool, error) {
	if err := Validate(req); err != nil {
		return domain.SavedTrip{}, false, fmt.Errorf("service.SavedService.Save: %w", err)
	}
	if strings.TrimSpace(resp.Description) == "" {
		return domain.SavedTrip{}, false, fmt.Errorf("service.SavedService.Save: %w: a generated description is required", domain.ErrValidation)
	}

	saved, updated := s.trips.Upsert(ctx, req, resp, loadedID)
	return saved, updated, nil
}

// List returns one page of saved itineraries matching term, sorted by name.
// descending flips the order; names are compared with the active language's
// collation and equal names keep insertion order. The page is clamped into
// range, so an out-of-range request returns the last page rather than an
// empty one. Returns the page items, the total match count, and the clamped
// pagination parameters actually applied.
func (s *SavedService) List(ctx context.Context, term string, descending bool, page domain.PaginationParams) ([]domain.SavedTrip, int, domain.PaginationParams) {
	col := i18n.Match(s.lang.Code()).Collator()
	matches := s.trips.Find(ctx, term, descending, col)

	total := len(matches)
	page = page.Clamp(total)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	items := matches[start:end]
	if items == nil {
		items = []domain.SavedTrip{}
	}
	return items, total, page
}

// Get returns a single saved itinerary by id.
// Returns domain.ErrNotFound if no such snapshot exists.
func (s *SavedService) Get(ctx context.Context, id int64) (domain.SavedTrip, error) {
	saved, err := s.trips.Get(ctx, id)
	if err != nil {
		return domain.SavedTrip{}, fmt.Errorf("service.SavedService.Get: %w", err)
	}
	return saved, nil
}

// Delete removes a saved itinerary by id. Whether the editor currently holds
// that snapshot is the caller's concern; resetting the form is not the
// store's job.
func (s *SavedService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.Remove(ctx, id); err != nil {
		return fmt.Errorf("service.SavedService.Delete: %w", err)
	}
	return nil
}
