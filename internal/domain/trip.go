// Package domain contains the core data types for the JyVais itinerary planner.
// This package is imported by every other internal package (repo, service,
// handler) and keeps its dependency surface minimal.
package domain

// TransportMode is the closed set of transport modes a trip can use.
// Exactly one mode is active per trip.
type TransportMode string

const (
	ModeCar        TransportMode = "CAR"
	ModePedestrian TransportMode = "PEDESTRIAN"
	ModeTransit    TransportMode = "TRANSIT"
)

// Valid reports whether m is one of the known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeCar, ModePedestrian, ModeTransit:
		return true
	}
	return false
}

// Coordinates is a device-reported geographic position. It is attached to the
// trip, not to a waypoint: it is set when the start waypoint was populated via
// geolocation and is nil otherwise.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TripRequest is the unit of generation: a named, ordered sequence of
// waypoints plus a transport mode.
//
// CurrentLocation is not cleared when the start waypoint's text is later
// edited by hand; callers that care about staleness must handle it themselves.
type TripRequest struct {
	Name            string        `json:"name"`
	TransportMode   TransportMode `json:"transportMode"`
	Waypoints       WaypointList  `json:"waypoints"`
	CurrentLocation *Coordinates  `json:"currentLocation,omitempty"`
}

// Clone returns a deep copy of the request. Saved snapshots must never alias
// the live form, so every boundary that stores or hands out a request copies it.
func (r TripRequest) Clone() TripRequest {
	out := r
	out.Waypoints = r.Waypoints.Clone()
	if r.CurrentLocation != nil {
		loc := *r.CurrentLocation
		out.CurrentLocation = &loc
	}
	return out
}

// TripResponse carries what the AI collaborator produced for a request.
// RouteName always echoes the request name; it is not independently derived.
type TripResponse struct {
	Description string `json:"description"`
	RouteName   string `json:"routeName"`
}

// SavedTrip is a frozen snapshot of a request/response pair.
//
// ID is assigned at save time from the creation timestamp in Unix
// milliseconds, bumped by the store when needed so IDs stay strictly
// increasing. It is unrelated to any Waypoint ID.
type SavedTrip struct {
	ID       int64        `json:"id"`
	Request  TripRequest  `json:"request"`
	Response TripResponse `json:"response"`
}

// Clone returns a deep copy of the saved trip.
func (s SavedTrip) Clone() SavedTrip {
	out := s
	out.Request = s.Request.Clone()
	return out
}
