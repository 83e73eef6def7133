package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvais/backend/internal/domain"
)

// listOf builds a WaypointList with one waypoint per value, each with a
// fresh id.
func listOf(values ...string) domain.WaypointList {
	l := make(domain.WaypointList, len(values))
	for i, v := range values {
		l[i] = domain.NewWaypoint(v)
	}
	return l
}

func ids(l domain.WaypointList) []uuid.UUID {
	out := make([]uuid.UUID, len(l))
	for i, w := range l {
		out[i] = w.ID
	}
	return out
}

// ---- InsertStep ------------------------------------------------------------

func TestWaypointList_InsertStep_AddsBeforeDestination(t *testing.T) {
	l := listOf("Paris", "Lyon")
	start, dest := l[0], l[1]

	l.InsertStep()

	require.Len(t, l, 3)
	// Start and destination positions are never disturbed by insertion.
	assert.Equal(t, start, l[0])
	assert.Equal(t, dest, l[2])
	assert.Empty(t, l[1].Value)
	assert.NotEqual(t, uuid.Nil, l[1].ID)
}

func TestWaypointList_InsertStepAt_ClampsIntoInterior(t *testing.T) {
	l := listOf("Paris", "Dijon", "Lyon")
	start, dest := l[0], l[2]

	l.InsertStepAt(0)  // clamped to 1
	l.InsertStepAt(99) // clamped to len-1

	require.Len(t, l, 5)
	assert.Equal(t, start, l[0])
	assert.Equal(t, dest, l[4])
}

func TestWaypointList_InsertStep_FreshIDs(t *testing.T) {
	l := listOf("A", "B")
	l.InsertStep()
	l.InsertStep()

	seen := map[uuid.UUID]bool{}
	for _, w := range l {
		assert.False(t, seen[w.ID], "waypoint ids must be unique")
		seen[w.ID] = true
	}
}

// ---- RemoveStep ------------------------------------------------------------

func TestWaypointList_RemoveStep_EndpointsAreNoOps(t *testing.T) {
	l := listOf("Paris", "Dijon", "Lyon")
	before := l.Clone()

	assert.False(t, l.RemoveStep(0), "removing the start must be a no-op")
	assert.False(t, l.RemoveStep(2), "removing the destination must be a no-op")
	assert.Equal(t, before, l)
}

func TestWaypointList_RemoveStep_RefusesToDropBelowTwo(t *testing.T) {
	l := listOf("Paris", "Lyon")
	before := l.Clone()

	for i := -1; i <= 2; i++ {
		assert.False(t, l.RemoveStep(i))
	}
	assert.Equal(t, before, l)
}

func TestWaypointList_RemoveStep_RemovesSingleInteriorEntry(t *testing.T) {
	l := listOf("Paris", "Dijon", "Beaune", "Lyon")

	require.True(t, l.RemoveStep(2))

	assert.Equal(t, []string{"Paris", "Dijon", "Lyon"}, l.Values())
}

// ---- Reorder ---------------------------------------------------------------

func TestWaypointList_Reorder_InverseRestoresOriginal(t *testing.T) {
	original := listOf("A", "B", "C", "D", "E")

	for from := 0; from < len(original); from++ {
		for to := 0; to < len(original); to++ {
			l := original.Clone()
			l.Reorder(from, to)
			l.Reorder(to, from)
			// ids and values both round-trip.
			assert.Equal(t, original, l, "from=%d to=%d", from, to)
		}
	}
}

func TestWaypointList_Reorder_MovesEntry(t *testing.T) {
	l := listOf("A", "B", "C", "D")

	l.Reorder(3, 0)

	assert.Equal(t, []string{"D", "A", "B", "C"}, l.Values())
}

func TestWaypointList_Reorder_OutOfRangeIsNoOp(t *testing.T) {
	l := listOf("A", "B", "C")
	before := l.Clone()

	l.Reorder(-1, 1)
	l.Reorder(0, 3)
	l.Reorder(5, 0)

	assert.Equal(t, before, l)
}

// ---- SetValue --------------------------------------------------------------

func TestWaypointList_SetValue_PreservesID(t *testing.T) {
	l := listOf("A", "B")
	id := l[1].ID

	l.SetValue(1, "Lyon")

	assert.Equal(t, "Lyon", l[1].Value)
	assert.Equal(t, id, l[1].ID)

	// Out of range is a no-op.
	l.SetValue(7, "nope")
	assert.Equal(t, []string{"A", "Lyon"}, l.Values())
}

// ---- Projections -----------------------------------------------------------

func TestWaypointList_Steps_DropsEmptyEntries(t *testing.T) {
	l := listOf("A", "", "B", "  ", "C")

	assert.Equal(t, []string{"B"}, l.Steps())
	assert.Equal(t, "A", l.Start())
	assert.Equal(t, "C", l.Destination())
}

func TestWaypointList_Steps_EmptyForMinimalList(t *testing.T) {
	assert.Empty(t, listOf("A", "B").Steps())
}

func TestWaypointList_Reversed_PreservesEntries(t *testing.T) {
	l := listOf("A", "B", "C")

	r := l.Reversed()

	assert.Equal(t, []string{"C", "B", "A"}, r.Values())
	assert.Equal(t, ids(l)[2], ids(r)[0], "ids travel with their entries")
	// The original is untouched.
	assert.Equal(t, []string{"A", "B", "C"}, l.Values())
}

func TestWaypointList_Clone_SharesNoStorage(t *testing.T) {
	l := listOf("A", "B")
	c := l.Clone()

	c.SetValue(0, "changed")

	assert.Equal(t, "A", l[0].Value)
}
