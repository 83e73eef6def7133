package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/repo"
)

// ExportService assembles a full flat export of the saved-itinerary
// collection, one row per snapshot. It is the backup story for storage that
// is otherwise a single opaque JSON value.
type ExportService struct {
	trips *repo.SavedTripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips *repo.SavedTripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per saved itinerary, in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	rows := lo.Map(s.trips.All(ctx), func(t domain.SavedTrip, _ int) domain.ExportRow {
		return domain.ExportRow{
			ID:            t.ID,
			Name:          t.Request.Name,
			TransportMode: string(t.Request.TransportMode),
			Start:         t.Request.Waypoints.Start(),
			Destination:   t.Request.Waypoints.Destination(),
			Steps:         t.Request.Waypoints.Steps(),
			Description:   t.Response.Description,
		}
	})
	return rows, nil
}
