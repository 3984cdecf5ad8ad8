package feed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	defaultHistorySize = 50
	writeWait          = 2 * time.Second
)

var welcome = []byte(`{"type":"welcome","transport":"websocket"}`)

type Hub struct {
	mu          sync.Mutex
	clients     map[*websocket.Conn]struct{}
	history     [][]byte
	historySize int
}

type Stats struct {
	WSClients int `json:"ws_clients"`
}

// NewHub keeps the last historySize events for replay to new clients.
func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &Hub{
		clients:     make(map[*websocket.Conn]struct{}),
		historySize: historySize,
	}
}

// Join sends the welcome frame and recent events to ws, then registers it.
// Both happen under the hub lock so no event is missed or reordered.
func (h *Hub) Join(ws *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteMessage(websocket.TextMessage, welcome); err != nil {
		return err
	}
	for _, b := range h.history {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			return err
		}
	}
	h.clients[ws] = struct{}{}
	return nil
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// Publish stamps ev, records it and sends it to every client. Clients that
// fail a write are dropped.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		log.WithError(err).Warn("[feed] encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.history = append(h.history, b)
	if len(h.history) > h.historySize {
		h.history = h.history[len(h.history)-h.historySize:]
	}

	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{WSClients: len(h.clients)}
}
