package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"

	"github.com/jyvais/backend/internal/domain"
)

// SavedTripRepo owns the collection of saved itineraries. The in-memory slice
// is the source of truth; every mutation re-serializes the whole collection
// to the SlotSavedTrips slot (write-through, no batching).
//
// Persistence failures are logged and otherwise swallowed: a failed read is
// equivalent to no saved data, a failed write to a silently lost save. The
// modeled session is single-tab, but the Go HTTP server handles requests
// concurrently, so a mutex guards the collection anyway.
type SavedTripRepo struct {
	slots Slots
	log   *slog.Logger

	mu    sync.Mutex
	trips []domain.SavedTrip
}

// NewSavedTripRepo constructs the repo. Call Load before first use.
func NewSavedTripRepo(slots Slots, log *slog.Logger) *SavedTripRepo {
	return &SavedTripRepo{slots: slots, log: log}
}

// Load reads the persisted collection. A missing or unparsable slot yields an
// empty collection, never an error.
func (r *SavedTripRepo) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips = nil

	raw, ok, err := r.slots.Read(ctx, SlotSavedTrips)
	if err != nil {
		r.log.Warn("failed to load saved itineraries", "error", err)
		return
	}
	if !ok {
		return
	}

	var trips []domain.SavedTrip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		r.log.Warn("discarding unparsable saved itineraries", "error", err)
		return
	}
	r.trips = trips
}

// All returns a deep copy of the whole collection in insertion order.
func (r *SavedTripRepo) All(_ context.Context) []domain.SavedTrip {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.trips)
}

// Get returns the saved trip with the given id.
// Returns domain.ErrNotFound if no such trip exists.
func (r *SavedTripRepo) Get(_ context.Context, id int64) (domain.SavedTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.trips {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return domain.SavedTrip{}, fmt.Errorf("repo.SavedTripRepo.Get: %w", domain.ErrNotFound)
}

// Upsert saves a request/response snapshot.
//
// When loadedID names an existing trip whose stored name still equals the new
// request's name, that trip is replaced in place and its id preserved.
// In every other case (no loadedID, a stale loadedID, or a renamed trip)
// a new entry is appended under a fresh id ("save as new").
//
// The returned bool reports whether an existing entry was updated.
func (r *SavedTripRepo) Upsert(ctx context.Context, req domain.TripRequest, resp domain.TripResponse, loadedID *int64) (domain.SavedTrip, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loadedID != nil {
		for i, t := range r.trips {
			if t.ID == *loadedID && t.Request.Name == req.Name {
				r.trips[i] = domain.SavedTrip{ID: t.ID, Request: req.Clone(), Response: resp}
				r.persist(ctx)
				return r.trips[i].Clone(), true
			}
		}
	}

	saved := domain.SavedTrip{ID: r.nextID(), Request: req.Clone(), Response: resp}
	r.trips = append(r.trips, saved)
	r.persist(ctx)
	return saved.Clone(), false
}

// Remove deletes the trip with the given id.
// Returns domain.ErrNotFound if no such trip exists.
func (r *SavedTripRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.trips {
		if t.ID == id {
			r.trips = append(r.trips[:i], r.trips[i+1:]...)
			r.persist(ctx)
			return nil
		}
	}
	return fmt.Errorf("repo.SavedTripRepo.Remove: %w", domain.ErrNotFound)
}

// Find returns the trips whose name contains term (case-insensitive), ordered
// by name under the given collator. The sort is stable, so equal names keep
// their insertion order. A nil collator falls back to plain string ordering.
func (r *SavedTripRepo) Find(_ context.Context, term string, descending bool, col *collate.Collator) []domain.SavedTrip {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(term)
	var out []domain.SavedTrip
	for _, t := range r.trips {
		if needle == "" || strings.Contains(strings.ToLower(t.Request.Name), needle) {
			out = append(out, t.Clone())
		}
	}

	cmp := func(a, b string) int { return strings.Compare(a, b) }
	if col != nil {
		cmp = col.CompareString
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i].Request.Name, out[j].Request.Name)
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// persist rewrites the whole collection to its slot. Callers must hold r.mu.
func (r *SavedTripRepo) persist(ctx context.Context) {
	b, err := json.Marshal(r.trips)
	if err != nil {
		r.log.Error("failed to serialize saved itineraries", "error", err)
		return
	}
	if err := r.slots.Write(ctx, SlotSavedTrips, string(b)); err != nil {
		r.log.Error("failed to persist saved itineraries", "error", err)
	}
}

// nextID returns a fresh id: the current Unix-millisecond timestamp, bumped
// past the highest existing id so two saves in the same millisecond stay
// unique and ids remain strictly increasing. Callers must hold r.mu.
func (r *SavedTripRepo) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, t := range r.trips {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func cloneAll(trips []domain.SavedTrip) []domain.SavedTrip {
	out := make([]domain.SavedTrip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
