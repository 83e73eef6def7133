package domain

// ExportRow is a single row in the full-data export: a flat, denormalized
// view of one saved itinerary. Steps contains only the non-empty intermediate
// waypoints, in list order; callers that need a joined string (e.g. CSV)
// should join with "|".
type ExportRow struct {
	ID            int64
	Name          string
	TransportMode string
	Start         string
	Destination   string
	Steps         []string
	Description   string
}
