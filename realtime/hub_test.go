package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"trasferte/models"
	"trasferte/store"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client

	env := Envelope{
		Action: "change",
		Events: []models.Event{{EventID: "ev1", Name: "Roma - Parma"}},
	}
	data, _ := json.Marshal(env)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubAddRemoveAfterStopDoNotBlock(t *testing.T) {
	// stopped hub with no Run loop: nothing will ever read register
	hub := NewHub()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		client := &Client{Send: make(chan []byte, 1)}
		if hub.add(client) {
			t.Error("expected add to fail on a stopped hub")
		}
		hub.remove(client)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("add/remove blocked on a stopped hub")
	}
}

func TestSnapshotEnvelope(t *testing.T) {
	store.App.ReplaceAll(
		[]models.Event{{EventID: "ev1", Name: "Roma - Parma", Date: "2026-09-20", Time: "15:00"}},
		map[string][]models.Booking{
			"ev1": {{BookingID: "b1", EventID: "ev1"}},
		},
	)

	data, err := snapshotEnvelope()
	if err != nil {
		t.Fatalf("snapshotEnvelope: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Action != "snapshot" {
		t.Fatalf("expected snapshot action, got %q", env.Action)
	}
	if len(env.Events) != 1 || env.Events[0].EventID != "ev1" {
		t.Fatalf("unexpected events: %+v", env.Events)
	}
	if len(env.Bookings["ev1"]) != 1 {
		t.Fatalf("unexpected bookings: %+v", env.Bookings)
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 1)}
	hub.register <- client

	hub.Stop()

	select {
	case _, open := <-client.Send:
		if open {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}
