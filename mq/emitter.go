package mq

import (
	"context"
	"encoding/json"
	"log"

	"trasferte/models"
	"trasferte/monitoring"
	"trasferte/rdx"
	"trasferte/realtime"
	"trasferte/store"
)

// ChangeChannel carries document change notifications from the gateway to
// every process subscribed for realtime reconciliation.
const ChangeChannel = "booking-changes"

// Emit publishes one change notification. Failures are logged, not
// returned: a missed notification degrades to a stale cache until the next
// full load, it must not fail the originating write.
func Emit(ch models.Change) {
	data, err := json.Marshal(ch)
	if err != nil {
		log.Printf("[Emit] marshal change failed: %v", err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), ChangeChannel, data).Err(); err != nil {
		log.Printf("[Emit] publish to %s failed: %v", ChangeChannel, err)
	}
}

// StartRealtimeWorker subscribes to the change channel, reconciles each
// change into the cached state and republishes the full corrected state to
// connected WebSocket clients.
func StartRealtimeWorker(st *store.Store, hub *realtime.Hub) {
	sub := rdx.Conn.Subscribe(context.Background(), ChangeChannel)
	ch := sub.Channel()

	log.Println("[RealtimeWorker] listening for change notifications")

	for msg := range ch {
		var change models.Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			log.Printf("[RealtimeWorker] bad payload: %v", err)
			monitoring.Status.Error("Errore sync")
			continue
		}

		st.Apply(change)

		snap := st.Snapshot()
		env := realtime.Envelope{
			Action:   "change",
			Change:   &change,
			Events:   snap.Events,
			Bookings: snap.Bookings,
		}
		data, err := json.Marshal(env)
		if err != nil {
			log.Printf("[RealtimeWorker] marshal envelope: %v", err)
			continue
		}
		hub.Broadcast(data)
		monitoring.Status.Synced("Sincronizzato")
	}
}
