package gateway

import (
	"context"

	"trasferte/db"
	"trasferte/models"
	"trasferte/monitoring"
	"trasferte/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupBookings indexes a flat booking list by owning event ID, preserving
// order within each event.
func GroupBookings(bookings []models.Booking) map[string][]models.Booking {
	grouped := make(map[string][]models.Booking)
	for _, b := range bookings {
		grouped[b.EventID] = append(grouped[b.EventID], b)
	}
	return grouped
}

// LoadAll fetches all events (ordered by date) and all bookings grouped by
// event, and replaces the cached state wholesale.
func LoadAll(ctx context.Context) error {
	if !db.Ready() {
		monitoring.Status.Error("Database non disponibile")
		return ErrStoreUnavailable
	}
	monitoring.Status.Loading("Caricamento dati...")

	cur, err := db.EventsCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		monitoring.Status.Error("Errore caricamento")
		monitoring.CountOp("loadAll", err)
		return err
	}
	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		monitoring.Status.Error("Errore caricamento")
		monitoring.CountOp("loadAll", err)
		return err
	}

	bcur, err := db.BookingsCollection.Find(ctx, bson.M{})
	if err != nil {
		monitoring.Status.Error("Errore caricamento")
		monitoring.CountOp("loadAll", err)
		return err
	}
	var bookings []models.Booking
	if err := bcur.All(ctx, &bookings); err != nil {
		monitoring.Status.Error("Errore caricamento")
		monitoring.CountOp("loadAll", err)
		return err
	}

	store.App.ReplaceAll(events, GroupBookings(bookings))
	monitoring.Status.Synced("Dati sincronizzati")
	monitoring.CountOp("loadAll", nil)
	return nil
}
