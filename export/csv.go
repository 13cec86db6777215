package export

import (
	"strings"

	"trasferte/models"
)

// csvHeader is the fixed, user-facing column order.
const csvHeader = "Cognome,Nome,Data di nascita,Luogo di nascita,Provincia di nascita,Luogo di residenza,Provincia di residenza,Email,Telefono,AS Roma Card,Numero AS Roma Card,Tipo prenotazione"

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// BuildCSV renders all participants of an event's bookings as CSV, every
// field quoted, booking-then-participant order.
func BuildCSV(bookings []models.Booking) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\n")

	for _, b := range bookings {
		for _, p := range b.Participants {
			card := "No"
			if p.RomaCard {
				card = "Sì"
			}
			fields := []string{
				p.Surname, p.Name, p.Birthdate, p.Birthplace, p.BirthProvince,
				p.ResidencePlace, p.ResidenceProvince, p.Email, p.Phone,
				card, p.RomaCardNumber, p.BookingType,
			}
			quoted := make([]string, len(fields))
			for i, f := range fields {
				quoted[i] = quote(f)
			}
			sb.WriteString(strings.Join(quoted, ","))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
