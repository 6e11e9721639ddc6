package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventSubmissionJudged = "submission.judged"
	EventContestUpdate    = "contest.update"

	writeTimeout = 2 * time.Second
)

// Event is a JSON frame pushed to connected clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// client serializes writes to a single connection. gorilla/websocket
// allows only one concurrent writer per connection.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(event Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(event)
}

// Hub tracks live WebSocket connections per user and fans events out to
// them. Dead connections are evicted on write failure.
type Hub struct {
	upgrader *websocket.Upgrader
	conns    map[uuid.UUID]map[*client]struct{}
	connsMu  sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
		conns: make(map[uuid.UUID]map[*client]struct{}),
	}
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return err
	}

	cl := &client{conn: conn}
	h.register(userID, cl)
	go h.readLoop(userID, cl)
	return nil
}

func (h *Hub) register(userID uuid.UUID, cl *client) {
	h.connsMu.Lock()
	defer h.connsMu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*client]struct{})
	}
	h.conns[userID][cl] = struct{}{}
}

func (h *Hub) unregister(userID uuid.UUID, cl *client) {
	h.connsMu.Lock()
	defer h.connsMu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, cl)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	cl.conn.Close()
}

// readLoop drains client frames so pings and close frames are processed.
func (h *Hub) readLoop(userID uuid.UUID, cl *client) {
	defer h.unregister(userID, cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// SendToUser pushes an event to every connection the user holds.
func (h *Hub) SendToUser(userID uuid.UUID, event Event) {
	h.connsMu.RLock()
	targets := make([]*client, 0, len(h.conns[userID]))
	for cl := range h.conns[userID] {
		targets = append(targets, cl)
	}
	h.connsMu.RUnlock()

	for _, cl := range targets {
		if err := cl.write(event); err != nil {
			h.unregister(userID, cl)
		}
	}
}

// Broadcast pushes an event to every connected client.
func (h *Hub) Broadcast(event Event) {
	h.connsMu.RLock()
	type target struct {
		userID uuid.UUID
		cl     *client
	}
	targets := make([]target, 0)
	for userID, set := range h.conns {
		for cl := range set {
			targets = append(targets, target{userID, cl})
		}
	}
	h.connsMu.RUnlock()

	for _, t := range targets {
		if err := t.cl.write(event); err != nil {
			h.unregister(t.userID, t.cl)
		}
	}
}

// ConnectionCount reports live connections, used by the health endpoint.
func (h *Hub) ConnectionCount() int {
	h.connsMu.RLock()
	defer h.connsMu.RUnlock()
	total := 0
	for _, set := range h.conns {
		total += len(set)
	}
	return total
}
