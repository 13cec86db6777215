package gateway

import (
	"context"
	"time"

	"trasferte/db"
	"trasferte/models"
	"trasferte/monitoring"
	"trasferte/mq"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingUpdate holds the fields a booking update may overwrite.
type BookingUpdate struct {
	EventID         string
	Participants    []models.Participant
	BookingPassword string
}

// CreateBooking persists a validated booking under a generated ID and
// notifies subscribers.
func CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	if !db.Ready() {
		return models.Booking{}, ErrStoreUnavailable
	}
	monitoring.Status.Loading("Salvando prenotazione...")

	b.BookingID = uuid.NewString()
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := db.BookingsCollection.InsertOne(ctx, b)
	monitoring.CountOp("createBooking", err)
	if err != nil {
		monitoring.Status.Error("Errore salvataggio")
		return models.Booking{}, err
	}

	mq.Emit(models.Change{
		Collection: "bookings",
		Type:       models.ChangeAdded,
		ID:         b.BookingID,
		Booking:    &b,
	})
	monitoring.Status.Synced("Prenotazione salvata")
	return b, nil
}

// UpdateBooking overwrites the participant list, owning event and password
// of an existing booking, stamping the update time.
func UpdateBooking(ctx context.Context, id string, upd BookingUpdate) (models.Booking, error) {
	if !db.Ready() {
		return models.Booking{}, ErrStoreUnavailable
	}
	monitoring.Status.Loading("Salvando prenotazione...")

	update := bson.M{"$set": bson.M{
		"eventId":         upd.EventID,
		"participants":    upd.Participants,
		"bookingPassword": upd.BookingPassword,
		"updatedAt":       time.Now().UTC().Format(time.RFC3339),
	}}

	var updated models.Booking
	err := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingid": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	monitoring.CountOp("updateBooking", err)
	if err == mongo.ErrNoDocuments {
		monitoring.Status.Error("Errore salvataggio")
		return models.Booking{}, ErrNotFound
	}
	if err != nil {
		monitoring.Status.Error("Errore salvataggio")
		return models.Booking{}, err
	}

	mq.Emit(models.Change{
		Collection: "bookings",
		Type:       models.ChangeModified,
		ID:         id,
		Booking:    &updated,
	})
	monitoring.Status.Synced("Prenotazione aggiornata")
	return updated, nil
}

// DeleteBooking removes one booking by ID.
func DeleteBooking(ctx context.Context, id string) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	monitoring.Status.Loading("Cancellando prenotazione...")

	res, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"bookingid": id})
	monitoring.CountOp("deleteBooking", err)
	if err != nil {
		monitoring.Status.Error("Errore cancellazione")
		return err
	}
	if res.DeletedCount == 0 {
		monitoring.Status.Error("Errore cancellazione")
		return ErrNotFound
	}

	mq.Emit(models.Change{Collection: "bookings", Type: models.ChangeRemoved, ID: id})
	monitoring.Status.Synced("Prenotazione cancellata")
	return nil
}
