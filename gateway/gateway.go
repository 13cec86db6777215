package gateway

import (
	"errors"

	"trasferte/db"
	"trasferte/mq"
	"trasferte/rdx"
	"trasferte/realtime"
	"trasferte/store"
)

var (
	// ErrStoreUnavailable means the remote connection is not ready yet.
	ErrStoreUnavailable = errors.New("gateway: database non disponibile")
	// ErrNotFound means the id did not resolve to an existing document.
	ErrNotFound = errors.New("gateway: documento non trovato")
)

// SubscribeRealtime registers the push-based change listener. Each received
// change is reconciled into the cached state and the full corrected state is
// republished to connected clients. Listener errors degrade to a stale
// cache; they never crash the process.
func SubscribeRealtime(hub *realtime.Hub) error {
	if !db.Ready() || rdx.Conn == nil {
		return ErrStoreUnavailable
	}
	go mq.StartRealtimeWorker(store.App, hub)
	return nil
}
