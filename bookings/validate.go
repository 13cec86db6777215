package bookings

import (
	"fmt"
	"strings"

	"trasferte/models"
	"trasferte/utils"
)

// ParticipantEntry is the submitted form of one participant. RomaCard is a
// pointer so "neither yes nor no selected" is distinguishable from "no".
type ParticipantEntry struct {
	Surname           string `json:"surname"`
	Name              string `json:"name"`
	Birthdate         string `json:"birthdate"`
	Birthplace        string `json:"birthplace"`
	BirthProvince     string `json:"birthProvince"`
	ResidencePlace    string `json:"residencePlace"`
	ResidenceProvince string `json:"residenceProvince"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	RomaCard          *bool  `json:"romaCard"`
	RomaCardNumber    string `json:"romaCardNumber"`
}

// BookingRequest is a booking submission or edit.
type BookingRequest struct {
	EventID         string             `json:"eventId"`
	BookingType     string             `json:"bookingType"`
	BookingPassword string             `json:"bookingPassword"`
	Participants    []ParticipantEntry `json:"participants"`
}

// ToModel trims every field and stamps the booking type onto the
// participant. Call only after validation.
func (p ParticipantEntry) ToModel(bookingType string) models.Participant {
	romaCard := p.RomaCard != nil && *p.RomaCard
	number := ""
	if romaCard {
		number = strings.TrimSpace(p.RomaCardNumber)
	}
	return models.Participant{
		Surname:           strings.TrimSpace(p.Surname),
		Name:              strings.TrimSpace(p.Name),
		Birthdate:         strings.TrimSpace(p.Birthdate),
		Birthplace:        strings.TrimSpace(p.Birthplace),
		BirthProvince:     strings.TrimSpace(p.BirthProvince),
		ResidencePlace:    strings.TrimSpace(p.ResidencePlace),
		ResidenceProvince: strings.TrimSpace(p.ResidenceProvince),
		Email:             strings.TrimSpace(p.Email),
		Phone:             strings.TrimSpace(p.Phone),
		RomaCard:          romaCard,
		RomaCardNumber:    number,
		BookingType:       bookingType,
	}
}

// ValidateParticipant returns the full list of violated-field labels, in
// field order, never short-circuiting. The labels are user-visible and part
// of the response contract.
func ValidateParticipant(p ParticipantEntry) []string {
	var missing []string

	checks := []struct {
		value string
		label string
		kind  string
	}{
		{p.Surname, "Cognome", ""},
		{p.Name, "Nome", ""},
		{p.Birthdate, "Data di nascita", "date"},
		{p.Birthplace, "Luogo di nascita", ""},
		{p.BirthProvince, "Provincia di nascita", "province"},
		{p.ResidencePlace, "Luogo di residenza", ""},
		{p.ResidenceProvince, "Provincia di residenza", "province"},
		{p.Email, "Email", "email"},
		{p.Phone, "Telefono", "phone"},
	}

	for _, c := range checks {
		v := strings.TrimSpace(c.value)
		switch {
		case v == "":
			missing = append(missing, c.label)
		case c.kind == "date" && !utils.ValidateDate(v):
			missing = append(missing, c.label+" (formato non valido, usare GG/MM/AAAA)")
		case c.kind == "email" && !utils.ValidateEmail(v):
			missing = append(missing, c.label+" (formato non valido)")
		case c.kind == "phone" && !utils.ValidatePhone(v):
			missing = append(missing, c.label+" (deve essere di 10 cifre)")
		case c.kind == "province" && !utils.ValidProvince(v):
			missing = append(missing, c.label+" (formato non valido)")
		}
	}

	if p.RomaCard == nil {
		missing = append(missing, "AS Roma Card")
	} else if *p.RomaCard {
		number := strings.TrimSpace(p.RomaCardNumber)
		switch {
		case number == "":
			missing = append(missing, "Numero AS Roma Card")
		case len(number) != 12 || !utils.AllDigits(number):
			missing = append(missing, "Numero AS Roma Card (deve essere di 12 cifre)")
		}
	}

	return missing
}

// ValidateBookingRequest aggregates every violation of the request into one
// message. An empty string means the request is valid.
func ValidateBookingRequest(req BookingRequest) string {
	var global []string

	if !models.ValidBookingType(req.BookingType) {
		global = append(global, "Tipo di prenotazione")
	}
	if len(strings.TrimSpace(req.BookingPassword)) < 4 {
		global = append(global, "Password (min. 4 caratteri)")
	}

	if len(req.Participants) == 0 {
		global = append(global, "\nPartecipante Principale: nessun partecipante inserito")
	}

	for i, p := range req.Participants {
		missing := ValidateParticipant(p)
		if len(missing) == 0 {
			continue
		}
		label := "Partecipante Principale"
		if i > 0 {
			label = fmt.Sprintf("Partecipante %d", i+1)
		}
		global = append(global, "\n"+label+": "+strings.Join(missing, ", "))
	}

	if len(global) == 0 {
		return ""
	}
	return "Attenzione, mancano i seguenti campi: " + strings.Join(global, "")
}
