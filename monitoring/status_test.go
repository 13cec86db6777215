package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerTransitions(t *testing.T) {
	tr := NewTracker()

	state, msg := tr.Get()
	assert.Equal(t, StateLoading, state)
	assert.Equal(t, "In attesa del database", msg)

	tr.Loading("Caricamento dati...")
	state, msg = tr.Get()
	assert.Equal(t, StateLoading, state)
	assert.Equal(t, "Caricamento dati...", msg)

	tr.Synced("Dati sincronizzati")
	state, msg = tr.Get()
	assert.Equal(t, StateSynced, state)
	assert.Equal(t, "Dati sincronizzati", msg)

	tr.Error("Errore caricamento")
	state, _ = tr.Get()
	assert.Equal(t, StateError, state)
}

func TestTrackerWatchdogExpiresStuckLoading(t *testing.T) {
	tr := NewTracker()
	tr.Loading("Salvando evento...")

	// force the watchdog instead of waiting the full timeout
	tr.expire()

	state, msg := tr.Get()
	assert.Equal(t, StateError, state)
	assert.Equal(t, "Operazione bloccata", msg)
}

func TestTrackerWatchdogDoesNotOverrideResolved(t *testing.T) {
	tr := NewTracker()
	tr.Loading("Salvando evento...")
	tr.Synced("Evento salvato")

	tr.expire()

	state, msg := tr.Get()
	assert.Equal(t, StateSynced, state)
	assert.Equal(t, "Evento salvato", msg)
}

func TestTrackerWatchdogFiresOnRealTimer(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the watchdog timeout")
	}
	tr := NewTracker()
	tr.Loading("Salvando prenotazione...")

	assert.Eventually(t, func() bool {
		state, _ := tr.Get()
		return state == StateError
	}, watchdogTimeout+2*time.Second, 100*time.Millisecond)
}
