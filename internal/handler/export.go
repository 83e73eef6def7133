package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/jyvais/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "name", "transport_mode", "start", "destination", "steps", "description",
}

// GetExport implements GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, exportRowsToJSON(rows))
}

// exportRow is the JSON shape of one exported itinerary.
type exportRow struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	TransportMode string   `json:"transportMode"`
	Start         string   `json:"start"`
	Destination   string   `json:"destination"`
	Steps         []string `json:"steps,omitempty"`
	Description   string   `json:"description"`
}

func exportRowsToJSON(rows []domain.ExportRow) []exportRow {
	out := make([]exportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportRow(r))
	}
	return out
}

// writeCSV streams the rows as CSV. Steps within a row are pipe-separated
// ("|") to keep each itinerary on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(csvHeaders) //nolint:errcheck
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.TransportMode,
			r.Start,
			r.Destination,
			strings.Join(r.Steps, "|"),
			r.Description,
		})
	}
	cw.Flush()
}
