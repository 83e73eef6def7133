package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/handler"
)

func savedTrip(id int64, name string) domain.SavedTrip {
	return domain.SavedTrip{
		ID: id,
		Request: domain.TripRequest{
			Name:          name,
			TransportMode: domain.ModeCar,
			Waypoints:     domain.WaypointList{domain.NewWaypoint("Paris"), domain.NewWaypoint("Lyon")},
		},
		Response: domain.TripResponse{Description: "desc", RouteName: name},
	}
}

func TestListSaved_PassesQueryParamsThrough(t *testing.T) {
	var gotTerm string
	var gotDesc bool
	var gotPage domain.PaginationParams
	saved := &mockSaved{
		list: func(_ context.Context, term string, descending bool, page domain.PaginationParams) ([]domain.SavedTrip, int, domain.PaginationParams) {
			gotTerm, gotDesc, gotPage = term, descending, page
			return []domain.SavedTrip{savedTrip(1, "Trip")}, 11, domain.PaginationParams{Page: 2, Limit: 5}
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodGet, "/itineraries?q=par&sort=desc&page=2&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "par", gotTerm)
	assert.True(t, gotDesc)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, gotPage)

	var body struct {
		Data       []domain.SavedTrip `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Trip", body.Data[0].Request.Name)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 11, body.Pagination.Total)
}

func TestListSaved_DefaultsWithoutParams(t *testing.T) {
	saved := &mockSaved{
		list: func(_ context.Context, term string, descending bool, page domain.PaginationParams) ([]domain.SavedTrip, int, domain.PaginationParams) {
			assert.Empty(t, term)
			assert.False(t, descending)
			assert.Equal(t, domain.PaginationParams{Page: 1, Limit: domain.DefaultPageSize}, page)
			return []domain.SavedTrip{}, 0, page
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodGet, "/itineraries", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveItinerary_CreatedVersusUpdated(t *testing.T) {
	tests := []struct {
		name       string
		updated    bool
		wantStatus int
	}{
		{"new snapshot", false, http.StatusCreated},
		{"updated in place", true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := &mockSaved{
				save: func(_ context.Context, req domain.TripRequest, resp domain.TripResponse, loadedID *int64) (domain.SavedTrip, bool, error) {
					return savedTrip(7, req.Name), tt.updated, nil
				},
			}
			srv := newServer(deps{saved: saved})

			rec := do(t, srv, http.MethodPost, "/itineraries", map[string]any{
				"request":  tripBody("Trip", "CAR", "Paris", "Lyon"),
				"response": map[string]string{"description": "desc", "routeName": "Trip"},
			})

			require.Equal(t, tt.wantStatus, rec.Code)
			var got domain.SavedTrip
			decode(t, rec, &got)
			assert.Equal(t, int64(7), got.ID)
		})
	}
}

func TestSaveItinerary_ForwardsLoadedID(t *testing.T) {
	var gotLoaded *int64
	saved := &mockSaved{
		save: func(_ context.Context, req domain.TripRequest, _ domain.TripResponse, loadedID *int64) (domain.SavedTrip, bool, error) {
			gotLoaded = loadedID
			return savedTrip(3, req.Name), true, nil
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodPost, "/itineraries", map[string]any{
		"request":  tripBody("Trip", "CAR", "Paris", "Lyon"),
		"response": map[string]string{"description": "desc"},
		"loadedId": 3,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotLoaded)
	assert.Equal(t, int64(3), *gotLoaded)
}

func TestSaveItinerary_ValidationFailure(t *testing.T) {
	saved := &mockSaved{
		save: func(context.Context, domain.TripRequest, domain.TripResponse, *int64) (domain.SavedTrip, bool, error) {
			return domain.SavedTrip{}, false, fmt.Errorf("save: %w: a generated description is required", domain.ErrValidation)
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodPost, "/itineraries", map[string]any{
		"request": tripBody("Trip", "CAR", "Paris", "Lyon"),
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handler.ErrorResponse
	decode(t, rec, &body)
	assert.Equal(t, "a generated description is required", body.Error.Message)
}

func TestGetSaved_Found(t *testing.T) {
	saved := &mockSaved{
		get: func(_ context.Context, id int64) (domain.SavedTrip, error) {
			return savedTrip(id, "Trip"), nil
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodGet, "/itineraries/42", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.SavedTrip
	decode(t, rec, &got)
	assert.Equal(t, int64(42), got.ID)
}

func TestGetSaved_NotFound(t *testing.T) {
	saved := &mockSaved{
		get: func(context.Context, int64) (domain.SavedTrip, error) {
			return domain.SavedTrip{}, fmt.Errorf("get: %w", domain.ErrNotFound)
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodGet, "/itineraries/42", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	decode(t, rec, &body)
	assert.Equal(t, "not_found", body.Error.Code)
}

func TestGetSaved_MalformedID(t *testing.T) {
	srv := newServer(deps{})

	rec := do(t, srv, http.MethodGet, "/itineraries/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSaved_NoContent(t *testing.T) {
	var deleted int64
	saved := &mockSaved{
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodDelete, "/itineraries/42", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), deleted)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteSaved_NotFound(t *testing.T) {
	saved := &mockSaved{
		delete: func(context.Context, int64) error {
			return fmt.Errorf("delete: %w", domain.ErrNotFound)
		},
	}
	srv := newServer(deps{saved: saved})

	rec := do(t, srv, http.MethodDelete, "/itineraries/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
