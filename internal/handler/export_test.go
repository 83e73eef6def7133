package handler_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvais/backend/internal/domain"
)

func exportFixture() []domain.ExportRow {
	return []domain.ExportRow{
		{
			ID:            1,
			Name:          "Tour",
			TransportMode: "CAR",
			Start:         "Paris",
			Destination:   "Lyon",
			Steps:         []string{"Dijon", "Beaune"},
			Description:   "Day 1: leave Paris.",
		},
		{
			ID:            2,
			Name:          "Walk",
			TransportMode: "PEDESTRIAN",
			Start:         "Paris",
			Destination:   "Versailles",
			Description:   "A long walk.",
		},
	}
}

func TestGetExport_JSON(t *testing.T) {
	export := &mockExport{export: func(context.Context) ([]domain.ExportRow, error) {
		return exportFixture(), nil
	}}
	srv := newServer(deps{export: export})

	rec := do(t, srv, http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rows []map[string]any
	decode(t, rec, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "Tour", rows[0]["name"])
	assert.Equal(t, "CAR", rows[0]["transportMode"])
	// Steps are omitted for itineraries without intermediate stops.
	_, hasSteps := rows[1]["steps"]
	assert.False(t, hasSteps)
}

func TestGetExport_CSV(t *testing.T) {
	export := &mockExport{export: func(context.Context) ([]domain.ExportRow, error) {
		return exportFixture(), nil
	}}
	srv := newServer(deps{export: export})

	rec := do(t, srv, http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "transport_mode", "start", "destination", "steps", "description"}, records[0])
	assert.Equal(t, []string{"1", "Tour", "CAR", "Paris", "Lyon", "Dijon|Beaune", "Day 1: leave Paris."}, records[1])
	assert.Equal(t, "", records[2][5], "no steps yields an empty cell")
}

func TestGetExport_Failure(t *testing.T) {
	export := &mockExport{export: func(context.Context) ([]domain.ExportRow, error) {
		return nil, errors.New("boom")
	}}
	srv := newServer(deps{export: export})

	rec := do(t, srv, http.MethodGet, "/export", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
