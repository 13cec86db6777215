package export

import (
	"bytes"
	"fmt"
	"sort"

	"trasferte/globals"
	"trasferte/models"
	"trasferte/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type printRow struct {
	participant models.Participant
	createdAt   string
	order       int
}

// orderedParticipants flattens bookings oldest first, preserving the
// participant order inside each booking.
func orderedParticipants(bookings []models.Booking) []models.Participant {
	var rows []printRow
	for _, b := range bookings {
		for i, p := range b.Participants {
			rows = append(rows, printRow{participant: p, createdAt: b.CreatedAt, order: i})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].createdAt != rows[j].createdAt {
			return rows[i].createdAt < rows[j].createdAt
		}
		return rows[i].order < rows[j].order
	})

	out := make([]models.Participant, len(rows))
	for i, r := range rows {
		out[i] = r.participant
	}
	return out
}

// BuildPDF renders the printable participant list: A4 landscape table plus
// a QR code pointing at the public site.
func BuildPDF(event models.Event, bookings []models.Booking) ([]byte, error) {
	participants := orderedParticipants(bookings)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Lista Partecipanti - "+event.Name), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	sub := fmt.Sprintf("Data: %s | Ora: %s | Totale: %d",
		utils.FormatDate(event.Date), event.Time, len(participants))
	pdf.CellFormat(0, 8, tr(sub), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Nome", "Cognome", "Data Nascita",
		"Luogo e Prov. Nascita", "Luogo e Prov. Residenza", "Numero AS Roma Card"}
	widths := []float64{40, 40, 30, 60, 60, 45}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(128, 0, 32)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, p := range participants {
		fill := i%2 == 0
		pdf.SetFillColor(249, 249, 249)

		card := "No"
		if p.RomaCard {
			card = p.RomaCardNumber
			if card == "" {
				card = "N/A"
			}
		}
		row := []string{
			p.Name, p.Surname, p.Birthdate,
			fmt.Sprintf("%s (%s)", p.Birthplace, p.BirthProvince),
			fmt.Sprintf("%s (%s)", p.ResidencePlace, p.ResidenceProvince),
			card,
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(participants) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 10, tr("Nessun partecipante registrato."), "", 1, "C", false, 0, "")
	}

	qrPNG, err := qrcode.Encode(globals.ShareURL, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 265, 8, 22, 22, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
