package events

import (
	"testing"
	"time"

	"trasferte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{EventID: "e1", Name: "Roma - Parma", Competition: "Serie A", Date: "2026-09-20", Time: "15:00"},
		{EventID: "e2", Name: "Roma - Porto", Competition: "Europa League", Date: "2026-09-24", Time: "21:00"},
		{EventID: "e3", Name: "Lazio - Roma", Competition: "Serie A", Date: "2026-10-04", Time: "18:00"},
	}
}

func TestFilterEvents(t *testing.T) {
	list := sampleEvents()

	t.Run("by month", func(t *testing.T) {
		got := FilterEvents(list, 9, "")
		require.Len(t, got, 2)
		assert.Equal(t, "e1", got[0].EventID)
		assert.Equal(t, "e2", got[1].EventID)
	})

	t.Run("by competition", func(t *testing.T) {
		got := FilterEvents(list, 0, "Serie A")
		require.Len(t, got, 2)
		assert.Equal(t, "e1", got[0].EventID)
		assert.Equal(t, "e3", got[1].EventID)
	})

	t.Run("competition is case-sensitive", func(t *testing.T) {
		assert.Empty(t, FilterEvents(list, 0, "serie a"))
	})

	t.Run("competition label is trimmed", func(t *testing.T) {
		got := FilterEvents(list, 0, "  Serie A  ")
		assert.Len(t, got, 2)
	})

	t.Run("combined criteria", func(t *testing.T) {
		got := FilterEvents(list, 9, "Serie A")
		require.Len(t, got, 1)
		assert.Equal(t, "e1", got[0].EventID)
	})

	t.Run("zero values mean no filter", func(t *testing.T) {
		assert.Len(t, FilterEvents(list, 0, ""), 3)
	})
}

func TestSortEventsByDate(t *testing.T) {
	list := []models.Event{
		{EventID: "late", Date: "2026-10-04", Time: "18:00"},
		{EventID: "broken", Date: "not-a-date", Time: "??"},
		{EventID: "early", Date: "2026-09-20", Time: "15:00"},
		{EventID: "same-day-later", Date: "2026-09-20", Time: "20:45"},
	}

	got := SortEventsByDate(list)
	require.Len(t, got, 4)
	assert.Equal(t, "early", got[0].EventID)
	assert.Equal(t, "same-day-later", got[1].EventID)
	assert.Equal(t, "late", got[2].EventID)
	assert.Equal(t, "broken", got[3].EventID, "unparsable sorts last")

	// input slice is left untouched
	assert.Equal(t, "late", list[0].EventID)
}

func TestIsEventPast(t *testing.T) {
	now := time.Date(2026, 9, 20, 15, 0, 0, 0, time.UTC)
	ev := models.Event{EventID: "e1", Date: "2026-09-20", Time: "15:00"}

	assert.False(t, IsEventPast(ev, now), "exact instant is not past")
	assert.True(t, IsEventPast(ev, now.Add(time.Minute)))
	assert.False(t, IsEventPast(ev, now.Add(-time.Minute)))

	broken := models.Event{EventID: "e2", Date: "oggi", Time: "boh"}
	assert.False(t, IsEventPast(broken, now), "malformed stays visible")
}

func TestCompetitions(t *testing.T) {
	list := []models.Event{
		{Competition: " Serie A "},
		{Competition: "Coppa Italia"},
		{Competition: "Serie A"},
		{Competition: ""},
	}
	assert.Equal(t, []string{"Coppa Italia", "Serie A"}, Competitions(list))
}
