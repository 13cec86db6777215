package export

import (
	"strings"
	"testing"

	"trasferte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() (models.Event, []models.Booking) {
	event := models.Event{
		EventID:  "ev1",
		Name:     "Roma - Parma",
		Date:     "2026-09-20",
		Time:     "15:00",
		Location: "Stadio Olimpico",
	}
	bookings := []models.Booking{
		{
			BookingID: "b2",
			EventID:   "ev1",
			CreatedAt: "2026-09-02T10:00:00Z",
			Participants: []models.Participant{
				{
					Surname: "Verdi", Name: "Anna", Birthdate: "02/03/1990",
					Birthplace: "Roma", BirthProvince: "RM",
					ResidencePlace: "Parma", ResidenceProvince: "PR",
					Email: "anna@example.com", Phone: "3399876543",
					RomaCard: true, RomaCardNumber: "123456789012",
					BookingType: models.TipoBigliettoEViaggio,
				},
			},
		},
		{
			BookingID: "b1",
			EventID:   "ev1",
			CreatedAt: "2026-09-01T10:00:00Z",
			Participants: []models.Participant{
				{
					Surname: "Rossi", Name: "Mario", Birthdate: "15/09/1988",
					Birthplace: "Parma", BirthProvince: "PR",
					ResidencePlace: "Parma", ResidenceProvince: "PR",
					Email: "mario@example.com", Phone: "3331234567",
					BookingType: models.TipoSoloViaggio,
				},
				{
					Surname: `Bianchi "Bibi"`, Name: "Luca", Birthdate: "01/01/2000",
					Birthplace: "Parma", BirthProvince: "PR",
					ResidencePlace: "Parma", ResidenceProvince: "PR",
					Email: "luca@example.com", Phone: "3471112223",
					BookingType: models.TipoSoloBiglietto,
				},
			},
		},
	}
	return event, bookings
}

func TestBuildCSV(t *testing.T) {
	_, bookings := exportFixture()
	csv := BuildCSV(bookings)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 4, "header plus three participants")

	assert.Equal(t, "Cognome,Nome,Data di nascita,Luogo di nascita,Provincia di nascita,Luogo di residenza,Provincia di residenza,Email,Telefono,AS Roma Card,Numero AS Roma Card,Tipo prenotazione", lines[0])

	// booking order, not chronological order
	assert.Equal(t, `"Verdi","Anna","02/03/1990","Roma","RM","Parma","PR","anna@example.com","3399876543","Sì","123456789012","Biglietto + Viaggio"`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], `"Rossi","Mario"`))
	assert.Contains(t, lines[2], `"No",""`)

	// embedded quotes double up
	assert.Contains(t, lines[3], `"Bianchi ""Bibi"""`)
}

func TestBuildCSVEmpty(t *testing.T) {
	csv := BuildCSV(nil)
	assert.Equal(t, 1, strings.Count(csv, "\n"), "header only")
}

func TestBuildShareText(t *testing.T) {
	event, bookings := exportFixture()
	text := BuildShareText(event, bookings)
	lines := strings.Split(text, "\n")

	assert.Equal(t, "\U0001F49B❤ ROMA CLUB CDLVI PARMA", lines[0])
	assert.Contains(t, text, "\U0001F4CD EVENTO: Roma - Parma")
	assert.Contains(t, text, "\U0001F4C5 DATA: domenica 20 settembre 2026")
	assert.Contains(t, text, "\U0001F552 ORARIO: 15:00")
	assert.Contains(t, text, "\U0001F3DF LUOGO: Stadio Olimpico")
	assert.Contains(t, text, "\U0001F465 PARTECIPANTI: 3")

	// oldest booking first, so Rossi leads the roster
	assert.Contains(t, text, "1. Mario Rossi")
	assert.Contains(t, text, "2. Luca Bianchi \"Bibi\"")
	assert.Contains(t, text, "3. Anna Verdi")

	// per-type emoji lines
	assert.Contains(t, text, "   \U0001F697\n")         // Solo Viaggio
	assert.Contains(t, text, "   \U0001F3AB\n")         // Solo Biglietto
	assert.Contains(t, text, "   \U0001F697\U0001F3AB") // Biglietto + Viaggio

	assert.Contains(t, text, strings.Repeat("━", 22))
	assert.Contains(t, text, "\U0001F43A FORZA ROMA! \U0001F43A")
	assert.Equal(t, "\U0001F4F1 romaclubcdlvi.it/trasferte", lines[len(lines)-1])
}

func TestShareURL(t *testing.T) {
	url := ShareURL("ciao mondo")
	assert.Equal(t, "https://wa.me/?text=ciao+mondo", url)
}

func TestBuildPDF(t *testing.T) {
	event, bookings := exportFixture()
	data, err := BuildPDF(event, bookings)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestBuildPDFNoParticipants(t *testing.T) {
	event, _ := exportFixture()
	data, err := BuildPDF(event, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
