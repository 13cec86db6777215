package realtime

import (
	"encoding/json"
	"log"
	"net/http"

	"trasferte/models"
	"trasferte/monitoring"
	"trasferte/store"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Envelope is what the hub pushes to every connected client.
type Envelope struct {
	Action   string                      `json:"action"` // "snapshot" or "change"
	Change   *models.Change              `json:"change,omitempty"`
	Events   []models.Event              `json:"events"`
	Bookings map[string][]models.Booking `json:"bookings"`
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			monitoring.SetClientCount(len(h.clients))

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			monitoring.SetClientCount(len(h.clients))

		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}

		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			monitoring.SetClientCount(0)
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues data for every connected client.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// add registers a client, reporting false when the hub has stopped so the
// caller never blocks on a dead Run loop.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// snapshotEnvelope marshals the current cached state as the connection's
// initial delivery.
func snapshotEnvelope() ([]byte, error) {
	snap := store.App.Snapshot()
	return json.Marshal(Envelope{
		Action:   "snapshot",
		Events:   snap.Events,
		Bookings: snap.Bookings,
	})
}

// ServeWS upgrades the connection and keeps it subscribed until the client
// disconnects. Every new client first receives a full snapshot, then change
// envelopes. Inbound frames are discarded.
func ServeWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{Conn: conn, Send: make(chan []byte, 256)}

		// queue the snapshot before registering so it is the first frame out
		if data, err := snapshotEnvelope(); err == nil {
			client.Send <- data
		} else {
			log.Println("snapshot envelope:", err)
		}

		if !hub.add(client) {
			conn.Close()
			return
		}

		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.remove(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
