package export

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"trasferte/models"
	"trasferte/utils"
)

func typeEmoji(bookingType string) string {
	switch bookingType {
	case models.TipoBigliettoEViaggio:
		return "\U0001F697\U0001F3AB"
	case models.TipoSoloBiglietto:
		return "\U0001F3AB"
	case models.TipoSoloViaggio:
		return "\U0001F697"
	}
	return ""
}

// BuildShareText renders the WhatsApp announcement: fixed header block, the
// numbered participant roster with a per-type emoji line, and the club
// footer. Bookings are walked oldest first.
func BuildShareText(event models.Event, bookings []models.Booking) string {
	sorted := append([]models.Booking(nil), bookings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})

	total := 0
	for _, b := range sorted {
		total += len(b.Participants)
	}

	var lines []string
	lines = append(lines, "\U0001F49B❤ ROMA CLUB CDLVI PARMA")
	lines = append(lines, "")
	lines = append(lines, "\U0001F4CD EVENTO: "+event.Name)
	lines = append(lines, "\U0001F4C5 DATA: "+utils.FormatDate(event.Date))
	lines = append(lines, "\U0001F552 ORARIO: "+event.Time)
	lines = append(lines, "\U0001F3DF LUOGO: "+event.Location)
	lines = append(lines, fmt.Sprintf("\U0001F465 PARTECIPANTI: %d", total))
	lines = append(lines, "")

	counter := 1
	for _, b := range sorted {
		for _, p := range b.Participants {
			lines = append(lines, fmt.Sprintf("%d. %s %s", counter, p.Name, p.Surname))
			lines = append(lines, "   "+typeEmoji(p.BookingType))
			counter++
		}
	}

	lines = append(lines, strings.Repeat("━", 22))
	lines = append(lines, "\U0001F43A FORZA ROMA! \U0001F43A")
	lines = append(lines, "\U0001F4F1 romaclubcdlvi.it/trasferte")

	return strings.Join(lines, "\n")
}

// ShareURL wraps the message in a wa.me link.
func ShareURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
