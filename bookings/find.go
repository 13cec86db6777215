package bookings

import (
	"sort"
	"strings"

	"trasferte/models"
)

// MatchesCredentials reports whether a booking belongs to the caller: exact
// password plus case-insensitive principal-surname match, or the legacy
// fallback (no stored password, surname match only). Partial credentials
// never match.
func MatchesCredentials(b models.Booking, surname, password string) (match, legacy bool) {
	principal := b.Principal()
	if principal == nil {
		return false, false
	}
	if !strings.EqualFold(principal.Surname, surname) {
		return false, false
	}
	if b.BookingPassword == password {
		return true, false
	}
	if b.BookingPassword == "" {
		return true, true
	}
	return false, false
}

// FindUserBookings scans every booking of every known event for the caller's
// credentials, returning matches ordered by event date and time. Bookings
// under an unknown event are skipped. Pure: operates on the passed-in state
// only.
func FindUserBookings(events []models.Event, bookings map[string][]models.Booking, surname, password string) []models.UserBooking {
	var results []models.UserBooking
	for _, ev := range events {
		for _, b := range bookings[ev.EventID] {
			match, legacy := MatchesCredentials(b, surname, password)
			if !match {
				continue
			}
			results = append(results, models.UserBooking{
				BookingID: b.BookingID,
				EventID:   ev.EventID,
				Event:     ev,
				Booking:   b,
				Principal: *b.Principal(),
				Legacy:    legacy,
			})
		}
	}
	// ISO date + HH:MM sorts lexicographically in chronological order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Event.Date+"T"+results[i].Event.Time <
			results[j].Event.Date+"T"+results[j].Event.Time
	})
	return results
}

// MaskPassword echoes the first two characters followed by stars, for the
// search-results header.
func MaskPassword(password string) string {
	if len(password) <= 2 {
		return password + "***"
	}
	return password[:2] + "***"
}
