package realtime

import (
	"sort"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

// RefreshMessage is pushed to dashboard websocket clients after writes.
// Bursts of writes inside the debounce window collapse into one message.
type RefreshMessage struct {
	Type   string   `json:"type"`
	Tables []string `json:"tables"`
}

// Hub fans table-change events out to connected dashboard clients. Events
// are debounced so a burst of inserts produces a single refresh push.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	pending  map[string]bool
	timer    *time.Timer
	debounce time.Duration
	log      zerolog.Logger

	// flushed is notified after each broadcast; tests hook it.
	flushed func(RefreshMessage)
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns:    make(map[*websocket.Conn]bool),
		pending:  make(map[string]bool),
		debounce: time.Second,
		log:      log,
	}
}

// Register adds a client connection and blocks reading it until it closes.
// gofiber/websocket handlers must not return while the conn is in use.
func (h *Hub) Register(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	n := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("clients", n).Msg("dashboard client connected")

	defer func() {
		h.mu.Lock()
		delete(h.conns, c)
		h.mu.Unlock()
		c.Close()
	}()
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Publish records a change on a table and arms the debounce timer.
func (h *Hub) Publish(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending[table] = true
	if h.timer == nil {
		h.timer = time.AfterFunc(h.debounce, h.flush)
	}
}

func (h *Hub) flush() {
	h.mu.Lock()
	tables := make([]string, 0, len(h.pending))
	for t := range h.pending {
		tables = append(tables, t)
	}
	h.pending = make(map[string]bool)
	h.timer = nil
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	hook := h.flushed
	h.mu.Unlock()

	if len(tables) == 0 {
		return
	}
	sort.Strings(tables)
	msg := RefreshMessage{Type: "dashboard_refresh", Tables: tables}
	for _, c := range conns {
		if err := c.WriteJSON(msg); err != nil {
			h.log.Debug().Err(err).Msg("drop stale dashboard client")
			h.mu.Lock()
			delete(h.conns, c)
			h.mu.Unlock()
			c.Close()
		}
	}
	if hook != nil {
		hook(msg)
	}
}
