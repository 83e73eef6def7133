package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Waypoint is one addressable point in a trip. Its role (start, intermediate
// step, destination) is determined purely by its position in the list, never
// stored on the waypoint itself. The ID is assigned once at creation and
// survives reordering and edits, giving each entry a stable identity
// independent of position.
type Waypoint struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
}

// NewWaypoint returns a waypoint with a fresh ID and the given text.
func NewWaypoint(value string) Waypoint {
	return Waypoint{ID: uuid.New(), Value: value}
}

// WaypointList is an ordered sequence of waypoints. Index 0 is the start,
// the last index is the destination, everything between is an ordered
// intermediate step. A usable list always has at least two entries; the
// mutating methods refuse any operation that would break that.
type WaypointList []Waypoint

// NewWaypointList returns the minimal valid list: an empty start and an
// empty destination.
func NewWaypointList() WaypointList {
	return WaypointList{NewWaypoint(""), NewWaypoint("")}
}

// InsertStep inserts a fresh empty waypoint immediately before the
// destination, so the start and destination positions are never disturbed.
func (l *WaypointList) InsertStep() {
	l.InsertStepAt(len(*l) - 1)
}

// InsertStepAt inserts a fresh empty waypoint at index i, shifting later
// entries right. Indexes are clamped into [1, len-1] so the new entry can
// never displace the start or the destination.
func (l *WaypointList) InsertStepAt(i int) {
	if i < 1 {
		i = 1
	}
	if i > len(*l)-1 {
		i = len(*l) - 1
	}
	s := *l
	s = append(s, Waypoint{})
	copy(s[i+1:], s[i:])
	s[i] = NewWaypoint("")
	*l = s
}

// RemoveStep removes the entry at index i and reports whether it did.
// It is a no-op when the removal would drop the list below two entries or
// when i is the start or destination position (or out of range).
func (l *WaypointList) RemoveStep(i int) bool {
	s := *l
	if len(s) <= 2 || i <= 0 || i >= len(s)-1 {
		return false
	}
	*l = append(s[:i], s[i+1:]...)
	return true
}

// Reorder moves the entry at from to position to, shifting the others.
// Any index may move anywhere, including into the start or destination
// position: roles are positional, so the dragged entry simply takes on the
// role of wherever it lands. Out-of-range indexes are a no-op.
func (l *WaypointList) Reorder(from, to int) {
	s := *l
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return
	}
	w := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s, Waypoint{})
	copy(s[to+1:], s[to:])
	s[to] = w
	*l = s
}

// SetValue replaces the text of the entry at index i. The ID is untouched.
// Out-of-range indexes are a no-op.
func (l WaypointList) SetValue(i int, value string) {
	if i < 0 || i >= len(l) {
		return
	}
	l[i].Value = value
}

// Start returns the text of the start waypoint, or "" for a short list.
func (l WaypointList) Start() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Value
}

// Destination returns the text of the destination waypoint, or "" for a
// short list.
func (l WaypointList) Destination() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1].Value
}

// Steps returns the texts of the intermediate waypoints whose trimmed value
// is non-empty, in list order. Empty entries are dropped entirely, never
// rendered as blanks.
func (l WaypointList) Steps() []string {
	var out []string
	for _, w := range l.between() {
		if strings.TrimSpace(w.Value) != "" {
			out = append(out, w.Value)
		}
	}
	return out
}

// Values returns the texts of all waypoints in list order.
func (l WaypointList) Values() []string {
	out := make([]string, len(l))
	for i, w := range l {
		out[i] = w.Value
	}
	return out
}

// Reversed returns a new list with the entries in reverse order. IDs and
// values are preserved; only the order (and therefore the roles) changes.
func (l WaypointList) Reversed() WaypointList {
	out := make(WaypointList, len(l))
	for i, w := range l {
		out[len(l)-1-i] = w
	}
	return out
}

// Clone returns a copy of the list that shares no backing storage with l.
func (l WaypointList) Clone() WaypointList {
	out := make(WaypointList, len(l))
	copy(out, l)
	return out
}

// between returns the intermediate entries, excluding start and destination.
func (l WaypointList) between() WaypointList {
	if len(l) <= 2 {
		return nil
	}
	return l[1 : len(l)-1]
}
