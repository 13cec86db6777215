package events

import (
	"log"
	"sort"
	"strings"
	"time"

	"trasferte/models"
)

// EventInstant combines the date and time fields into one instant.
func EventInstant(ev models.Event) (time.Time, error) {
	return time.Parse("2006-01-02T15:04", ev.Date+"T"+ev.Time)
}

// FilterEvents narrows a list by numeric month and exact competition label.
// Zero values leave the corresponding criterion unapplied. Order-preserving.
func FilterEvents(list []models.Event, month int, competition string) []models.Event {
	competition = strings.TrimSpace(competition)
	var out []models.Event
	for _, ev := range list {
		if month != 0 {
			d, err := time.Parse("2006-01-02", ev.Date)
			if err != nil || int(d.Month()) != month {
				continue
			}
		}
		if competition != "" && strings.TrimSpace(ev.Competition) != competition {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// SortEventsByDate sorts ascending by the event instant, stable. Events whose
// date or time does not parse sort after every parsable one.
func SortEventsByDate(list []models.Event) []models.Event {
	sorted := append([]models.Event(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, erri := EventInstant(sorted[i])
		tj, errj := EventInstant(sorted[j])
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ti.Before(tj)
	})
	return sorted
}

// IsEventPast reports whether the event instant is strictly before now.
// Malformed events are treated as upcoming so they stay visible.
func IsEventPast(ev models.Event, now time.Time) bool {
	t, err := EventInstant(ev)
	if err != nil {
		log.Printf("[events] unparsable date/time for event %s: %q %q", ev.EventID, ev.Date, ev.Time)
		return false
	}
	return t.Before(now)
}

// Competitions returns the distinct trimmed competition labels, sorted.
func Competitions(list []models.Event) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ev := range list {
		c := strings.TrimSpace(ev.Competition)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
