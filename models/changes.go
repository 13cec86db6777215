package models

// ChangeType mirrors the remote store's change notification kinds.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// Change is a single document change pushed from the data gateway. Exactly
// one of Event/Booking is set, matching Collection.
type Change struct {
	Collection string     `json:"collection"` // "events" or "bookings"
	Type       ChangeType `json:"type"`
	ID         string     `json:"id"`
	Event      *Event     `json:"event,omitempty"`
	Booking    *Booking   `json:"booking,omitempty"`
}
