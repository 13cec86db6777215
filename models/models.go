package models

// Booking types are user-visible values and stay in Italian.
const (
	TipoSoloViaggio       = "Solo Viaggio"
	TipoSoloBiglietto     = "Solo Biglietto"
	TipoBigliettoEViaggio = "Biglietto + Viaggio"
)

// ValidBookingType reports whether t is one of the three booking types.
func ValidBookingType(t string) bool {
	switch t {
	case TipoSoloViaggio, TipoSoloBiglietto, TipoBigliettoEViaggio:
		return true
	}
	return false
}

// Event is a club-organized happening bookable by members.
type Event struct {
	EventID     string `json:"eventid" bson:"eventid"`
	Name        string `json:"name" bson:"name"`
	Competition string `json:"competition,omitempty" bson:"competition,omitempty"`
	Date        string `json:"date" bson:"date"` // YYYY-MM-DD
	Time        string `json:"time" bson:"time"` // HH:MM
	Location    string `json:"location" bson:"location"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Participant holds one person's personal/travel data. BookingType is copied
// from the owning booking onto every participant.
type Participant struct {
	Name              string `json:"name" bson:"name"`
	Surname           string `json:"surname" bson:"surname"`
	Birthdate         string `json:"birthdate" bson:"birthdate"` // GG/MM/AAAA
	Birthplace        string `json:"birthplace" bson:"birthplace"`
	BirthProvince     string `json:"birthProvince" bson:"birthProvince"`
	ResidencePlace    string `json:"residencePlace" bson:"residencePlace"`
	ResidenceProvince string `json:"residenceProvince" bson:"residenceProvince"`
	Email             string `json:"email" bson:"email"`
	Phone             string `json:"phone" bson:"phone"`
	RomaCard          bool   `json:"romaCard" bson:"romaCard"`
	RomaCardNumber    string `json:"romaCardNumber,omitempty" bson:"romaCardNumber,omitempty"`
	BookingType       string `json:"bookingType" bson:"bookingType"`
}

// Booking is a group submission against one event. The first participant is
// the principal, treated as owner/contact. A booking without a stored
// password is a legacy record, matched by surname only.
type Booking struct {
	BookingID       string        `json:"bookingid" bson:"bookingid"`
	EventID         string        `json:"eventId" bson:"eventId"`
	Participants    []Participant `json:"participants" bson:"participants"`
	BookingPassword string        `json:"bookingPassword,omitempty" bson:"bookingPassword,omitempty"`
	CreatedAt       string        `json:"createdAt" bson:"createdAt"` // ISO-8601
	UpdatedAt       string        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Principal returns the first participant, or nil for an empty booking.
func (b *Booking) Principal() *Participant {
	if len(b.Participants) == 0 {
		return nil
	}
	return &b.Participants[0]
}

// UserBooking is one result of a member's booking search.
type UserBooking struct {
	BookingID string      `json:"bookingid"`
	EventID   string      `json:"eventId"`
	Event     Event       `json:"event"`
	Booking   Booking     `json:"booking"`
	Principal Participant `json:"principal"`
	Legacy    bool        `json:"legacy,omitempty"`
}

// BookingStats are per-event participant counts, recomputed by full scan.
type BookingStats struct {
	Total             int `json:"total"`
	SoloViaggio       int `json:"soloViaggio"`
	SoloBiglietto     int `json:"soloBiglietto"`
	BigliettoEViaggio int `json:"bigliettoEViaggio"`
}
