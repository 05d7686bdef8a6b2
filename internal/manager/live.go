package manager

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveUpdate is pushed to every connected manager session whenever the
// staged state changes, so open consoles stay in sync.
type liveUpdate struct {
	Content  map[string]any `json:"content"`
	ThemeCSS string         `json:"themeCss"`
	Export   string         `json:"export"`
}

// liveHub tracks the open manager websocket sessions.
type liveHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newLiveHub() *liveHub {
	return &liveHub{conns: map[*websocket.Conn]bool{}}
}

func (h *liveHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *liveHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// broadcast writes the update to every session, dropping connections that
// fail to accept it.
func (h *liveHub) broadcast(update liveUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(update); err != nil {
			log.Printf("Live session write failed: %v", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// handleLive upgrades the request to a websocket, sends the current state,
// and keeps the session registered until the peer goes away.
func (m *Manager) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	m.mu.Lock()
	update := m.liveUpdateLocked()
	m.mu.Unlock()
	if err := conn.WriteJSON(update); err != nil {
		return
	}

	m.live.add(conn)
	defer m.live.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcastLocked pushes the staged state to every live session. Caller
// holds mu.
func (m *Manager) broadcastLocked() {
	m.live.broadcast(m.liveUpdateLocked())
}

// liveUpdateLocked renders the staged state for the wire. Caller holds mu.
func (m *Manager) liveUpdateLocked() liveUpdate {
	raw := map[string]any{}
	for key, entry := range m.working {
		if record, err := toRawRecord(entry); err == nil {
			raw[key] = record
		}
	}
	return liveUpdate{
		Content:  raw,
		ThemeCSS: theme.NewApplicator().Apply(m.theme),
		Export:   m.exportLocked(),
	}
}
