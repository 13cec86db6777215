package bookings

import "trasferte/models"

// ComputeStats recounts participants per booking type by full scan of one
// event's bookings.
func ComputeStats(list []models.Booking) models.BookingStats {
	var stats models.BookingStats
	for _, b := range list {
		for _, p := range b.Participants {
			stats.Total++
			switch p.BookingType {
			case models.TipoSoloViaggio:
				stats.SoloViaggio++
			case models.TipoSoloBiglietto:
				stats.SoloBiglietto++
			case models.TipoBigliettoEViaggio:
				stats.BigliettoEViaggio++
			}
		}
	}
	return stats
}
