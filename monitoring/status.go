package monitoring

import (
	"net/http"
	"sync"
	"time"

	"trasferte/utils"

	"github.com/julienschmidt/httprouter"
)

type SyncState string

const (
	StateLoading SyncState = "loading"
	StateSynced  SyncState = "synced"
	StateError   SyncState = "error"
)

// A loading state left hanging by a stuck remote call is forced to error
// after this long, whether or not the call ever resolves.
const watchdogTimeout = 5 * time.Second

// Tracker holds the transient gateway status shown to clients.
type Tracker struct {
	mu       sync.Mutex
	state    SyncState
	message  string
	watchdog *time.Timer
}

var Status = NewTracker()

func NewTracker() *Tracker {
	return &Tracker{state: StateLoading, message: "In attesa del database"}
}

func (t *Tracker) set(state SyncState, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.watchdog != nil {
		t.watchdog.Stop()
		t.watchdog = nil
	}
	t.state = state
	t.message = message

	switch state {
	case StateLoading:
		syncStatusGauge.Set(1)
		t.watchdog = time.AfterFunc(watchdogTimeout, t.expire)
	case StateSynced:
		syncStatusGauge.Set(2)
	case StateError:
		syncStatusGauge.Set(0)
	}
}

func (t *Tracker) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateLoading {
		return
	}
	t.state = StateError
	t.message = "Operazione bloccata"
	t.watchdog = nil
	syncStatusGauge.Set(0)
}

func (t *Tracker) Loading(message string) { t.set(StateLoading, message) }
func (t *Tracker) Synced(message string)  { t.set(StateSynced, message) }
func (t *Tracker) Error(message string)   { t.set(StateError, message) }

func (t *Tracker) Get() (SyncState, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.message
}

// GetStatus serves the current sync indicator.
func GetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state, message := Status.Get()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"state":   string(state),
		"message": message,
	})
}
