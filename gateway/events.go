package gateway

import (
	"context"

	"trasferte/db"
	"trasferte/models"
	"trasferte/monitoring"
	"trasferte/mq"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateEvent persists a new event under a generated ID and notifies
// subscribers.
func CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	if !db.Ready() {
		return models.Event{}, ErrStoreUnavailable
	}
	monitoring.Status.Loading("Salvando evento...")

	ev.EventID = uuid.NewString()
	_, err := db.EventsCollection.InsertOne(ctx, ev)
	monitoring.CountOp("createEvent", err)
	if err != nil {
		monitoring.Status.Error("Errore salvataggio")
		return models.Event{}, err
	}

	mq.Emit(models.Change{
		Collection: "events",
		Type:       models.ChangeAdded,
		ID:         ev.EventID,
		Event:      &ev,
	})
	monitoring.Status.Synced("Evento salvato")
	return ev, nil
}

// UpdateEvent overwrites the mutable fields of an existing event.
func UpdateEvent(ctx context.Context, id string, ev models.Event) (models.Event, error) {
	if !db.Ready() {
		return models.Event{}, ErrStoreUnavailable
	}
	monitoring.Status.Loading("Salvando evento...")

	update := bson.M{"$set": bson.M{
		"name":        ev.Name,
		"competition": ev.Competition,
		"date":        ev.Date,
		"time":        ev.Time,
		"location":    ev.Location,
		"description": ev.Description,
	}}

	var updated models.Event
	err := db.EventsCollection.FindOneAndUpdate(ctx,
		bson.M{"eventid": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	monitoring.CountOp("updateEvent", err)
	if err == mongo.ErrNoDocuments {
		monitoring.Status.Error("Errore salvataggio")
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		monitoring.Status.Error("Errore salvataggio")
		return models.Event{}, err
	}

	mq.Emit(models.Change{
		Collection: "events",
		Type:       models.ChangeModified,
		ID:         id,
		Event:      &updated,
	})
	monitoring.Status.Synced("Evento aggiornato")
	return updated, nil
}

// DeleteEvent removes an event and every booking attached to it in one
// transaction: either both collections are cleaned or neither is.
func DeleteEvent(ctx context.Context, id string) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	monitoring.Status.Loading("Cancellando evento...")

	session, err := db.Client.StartSession()
	if err != nil {
		monitoring.Status.Error("Errore cancellazione")
		monitoring.CountOp("deleteEvent", err)
		return err
	}
	defer session.EndSession(ctx)

	var removedBookings []string
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := db.EventsCollection.DeleteOne(sc, bson.M{"eventid": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}

		cur, err := db.BookingsCollection.Find(sc, bson.M{"eventId": id})
		if err != nil {
			return nil, err
		}
		var bookings []models.Booking
		if err := cur.All(sc, &bookings); err != nil {
			return nil, err
		}
		for _, b := range bookings {
			removedBookings = append(removedBookings, b.BookingID)
		}

		if _, err := db.BookingsCollection.DeleteMany(sc, bson.M{"eventId": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	monitoring.CountOp("deleteEvent", err)
	if err != nil {
		monitoring.Status.Error("Errore cancellazione")
		return err
	}

	for _, bid := range removedBookings {
		mq.Emit(models.Change{Collection: "bookings", Type: models.ChangeRemoved, ID: bid})
	}
	mq.Emit(models.Change{Collection: "events", Type: models.ChangeRemoved, ID: id})
	monitoring.Status.Synced("Evento cancellato")
	return nil
}
