package store

import (
	"testing"

	"trasferte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *Store {
	s := New()
	s.ReplaceAll(
		[]models.Event{
			{EventID: "ev1", Name: "Roma - Parma", Date: "2026-09-20", Time: "15:00"},
			{EventID: "ev2", Name: "Lazio - Roma", Date: "2026-10-04", Time: "18:00"},
		},
		map[string][]models.Booking{
			"ev1": {
				{BookingID: "b1", EventID: "ev1", Participants: []models.Participant{{Surname: "Rossi"}}},
			},
		},
	)
	return s
}

func TestReplaceAll(t *testing.T) {
	s := seeded()
	assert.Len(t, s.Events(), 2)
	assert.Len(t, s.EventBookings("ev1"), 1)

	s.ReplaceAll(nil, nil)
	assert.Empty(t, s.Events())
	assert.Empty(t, s.Bookings())
}

func TestApplyEventChanges(t *testing.T) {
	s := seeded()

	added := models.Event{EventID: "ev3", Name: "Roma - Porto", Date: "2026-09-24", Time: "21:00"}
	s.Apply(models.Change{Collection: "events", Type: models.ChangeAdded, ID: "ev3", Event: &added})
	assert.Len(t, s.Events(), 3)

	// re-adding an existing id replaces instead of duplicating
	s.Apply(models.Change{Collection: "events", Type: models.ChangeAdded, ID: "ev3", Event: &added})
	assert.Len(t, s.Events(), 3)

	modified := added
	modified.Name = "Roma - Porto (recupero)"
	s.Apply(models.Change{Collection: "events", Type: models.ChangeModified, ID: "ev3", Event: &modified})
	got, ok := s.EventByID("ev3")
	require.True(t, ok)
	assert.Equal(t, "Roma - Porto (recupero)", got.Name)

	s.Apply(models.Change{Collection: "events", Type: models.ChangeRemoved, ID: "ev3"})
	_, ok = s.EventByID("ev3")
	assert.False(t, ok)

	// modifying an unknown id is a no-op
	s.Apply(models.Change{Collection: "events", Type: models.ChangeModified, ID: "ghost", Event: &modified})
	assert.Len(t, s.Events(), 2)
}

func TestApplyBookingChanges(t *testing.T) {
	s := seeded()

	b2 := models.Booking{BookingID: "b2", EventID: "ev1", Participants: []models.Participant{{Surname: "Verdi"}}}
	s.Apply(models.Change{Collection: "bookings", Type: models.ChangeAdded, ID: "b2", Booking: &b2})
	assert.Len(t, s.EventBookings("ev1"), 2)

	// in-place modify keeps the position
	mod := b2
	mod.Participants = []models.Participant{{Surname: "Verdi"}, {Surname: "Neri"}}
	s.Apply(models.Change{Collection: "bookings", Type: models.ChangeModified, ID: "b2", Booking: &mod})
	list := s.EventBookings("ev1")
	require.Len(t, list, 2)
	assert.Equal(t, "b2", list[1].BookingID)
	assert.Len(t, list[1].Participants, 2)

	// a booking moved to another event leaves no stale copy behind
	moved := mod
	moved.EventID = "ev2"
	s.Apply(models.Change{Collection: "bookings", Type: models.ChangeModified, ID: "b2", Booking: &moved})
	assert.Len(t, s.EventBookings("ev1"), 1)
	require.Len(t, s.EventBookings("ev2"), 1)
	assert.Equal(t, "b2", s.EventBookings("ev2")[0].BookingID)

	s.Apply(models.Change{Collection: "bookings", Type: models.ChangeRemoved, ID: "b2"})
	assert.Empty(t, s.EventBookings("ev2"))

	_, ok := s.BookingByID("b1")
	assert.True(t, ok)
}

func TestSubscribeNotifiedOnMutation(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.ReplaceAll(nil, nil)
	s.Apply(models.Change{Collection: "events", Type: models.ChangeRemoved, ID: "none"})

	assert.Equal(t, 2, calls)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := seeded()
	snap := s.Snapshot()
	snap.Events[0].Name = "mutated"
	snap.Bookings["ev1"][0].BookingID = "mutated"

	got, _ := s.EventByID("ev1")
	assert.Equal(t, "Roma - Parma", got.Name)
	assert.Equal(t, "b1", s.EventBookings("ev1")[0].BookingID)
}
