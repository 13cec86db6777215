package store

import (
	"sync"

	"trasferte/models"
)

// Snapshot is a consistent copy of the cached state.
type Snapshot struct {
	Events   []models.Event              `json:"events"`
	Bookings map[string][]models.Booking `json:"bookings"`
}

// Store is the process-wide cached read model of the two collections:
// events, plus bookings grouped by owning event ID. It is rehydrated
// wholesale by LoadAll and patched incrementally by realtime changes.
type Store struct {
	mu       sync.RWMutex
	events   []models.Event
	bookings map[string][]models.Booking
	subs     []func()
}

// App is the application-wide instance, mirroring the single session state.
var App = New()

func New() *Store {
	return &Store{bookings: make(map[string][]models.Booking)}
}

// Subscribe registers fn to run after every mutation. Used by the realtime
// layer to trigger re-broadcasts.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// ReplaceAll swaps in a freshly loaded state.
func (s *Store) ReplaceAll(events []models.Event, bookings map[string][]models.Booking) {
	s.mu.Lock()
	s.events = append([]models.Event(nil), events...)
	s.bookings = make(map[string][]models.Booking, len(bookings))
	for id, list := range bookings {
		s.bookings[id] = append([]models.Booking(nil), list...)
	}
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Events returns a copy of the cached event list.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Event(nil), s.events...)
}

// EventByID looks up a cached event.
func (s *Store) EventByID(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.EventID == id {
			return ev, true
		}
	}
	return models.Event{}, false
}

// Bookings returns a copy of the bookings-by-event mapping.
func (s *Store) Bookings() map[string][]models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]models.Booking, len(s.bookings))
	for id, list := range s.bookings {
		out[id] = append([]models.Booking(nil), list...)
	}
	return out
}

// EventBookings returns a copy of one event's booking list.
func (s *Store) EventBookings(eventID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings[eventID]...)
}

// BookingByID scans every event's list for a booking.
func (s *Store) BookingByID(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range s.bookings {
		for _, b := range list {
			if b.BookingID == id {
				return b, true
			}
		}
	}
	return models.Booking{}, false
}

// Snapshot returns a consistent copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Events: s.Events(), Bookings: s.Bookings()}
}

// Apply reconciles one pushed change into the cache: insert-if-absent on
// add, in-place replace on modify, remove on delete.
func (s *Store) Apply(ch models.Change) {
	s.mu.Lock()
	switch ch.Collection {
	case "events":
		s.applyEvent(ch)
	case "bookings":
		s.applyBooking(ch)
	}
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Store) applyEvent(ch models.Change) {
	idx := -1
	for i, ev := range s.events {
		if ev.EventID == ch.ID {
			idx = i
			break
		}
	}

	switch ch.Type {
	case models.ChangeAdded:
		if ch.Event == nil {
			return
		}
		if idx == -1 {
			s.events = append(s.events, *ch.Event)
		} else {
			s.events[idx] = *ch.Event
		}
	case models.ChangeModified:
		if ch.Event != nil && idx != -1 {
			s.events[idx] = *ch.Event
		}
	case models.ChangeRemoved:
		if idx != -1 {
			s.events = append(s.events[:idx], s.events[idx+1:]...)
		}
	}
}

func (s *Store) applyBooking(ch models.Change) {
	if ch.Type == models.ChangeRemoved {
		s.removeBookingLocked(ch.ID)
		return
	}
	if ch.Booking == nil {
		return
	}

	list := s.bookings[ch.Booking.EventID]
	for i, b := range list {
		if b.BookingID == ch.ID {
			list[i] = *ch.Booking
			return
		}
	}
	// A modified booking may have moved events; drop any stale copy before
	// filing it under the new event.
	s.removeBookingLocked(ch.ID)
	s.bookings[ch.Booking.EventID] = append(s.bookings[ch.Booking.EventID], *ch.Booking)
}

func (s *Store) removeBookingLocked(id string) {
	for eventID, list := range s.bookings {
		for i, b := range list {
			if b.BookingID == id {
				s.bookings[eventID] = append(list[:i], list[i+1:]...)
				if len(s.bookings[eventID]) == 0 {
					delete(s.bookings, eventID)
				}
				return
			}
		}
	}
}
