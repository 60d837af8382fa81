// Package network carries client traffic for the room server: a websocket
// hub that accepts connections, assigns session identifiers, feeds inbound
// envelopes to the application dispatcher, and fans outbound envelopes back
// to sessions.
package network

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	sendBuffer   = 64
	pingInterval = 15 * time.Second
)

// Intake consumes inbound client traffic. The application dispatcher
// implements it; every message is handed over with the session id of the
// connection it arrived on.
type Intake interface {
	HandleMessage(sessionID, msgType string, data []byte)
	Disconnect(sessionID string)
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns all live connections.
type Hub struct {
	allowOrigins map[string]bool
	logger       *slog.Logger
	intake       Intake

	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub creates a hub restricted to the given origins; an empty allowlist
// accepts any origin. Attach must be called before serving.
func NewHub(allow []string, logger *slog.Logger) *Hub {
	origins := map[string]bool{}
	for _, a := range allow {
		if a != "" {
			origins[a] = true
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		allowOrigins: origins,
		logger:       logger,
		clients:      map[string]*client{},
	}
}

// Attach wires the inbound consumer. Separate from NewHub because the hub
// and the dispatcher reference each other.
func (h *Hub) Attach(intake Intake) {
	h.intake = intake
}

// ServeWS upgrades the request and pumps messages until the client goes
// away, then reports the disconnect downstream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin != "" && len(h.allowOrigins) > 0 && !h.allowOrigins[origin] {
		http.Error(w, "forbidden origin", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Info("client connected", "session", c.id)

	go h.writePump(r.Context(), c)

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			break
		}
		var ev Envelope
		if err := json.Unmarshal(data, &ev); err != nil || ev.Type == "" {
			continue
		}
		h.intake.HandleMessage(c.id, ev.Type, ev.Data)
	}

	h.mu.Lock()
	delete(h.clients, c.id)
	close(c.send)
	h.mu.Unlock()

	h.intake.Disconnect(c.id)
	h.logger.Info("client disconnected", "session", c.id)
}

func (h *Hub) writePump(ctx context.Context, c *client) {
	ping := time.NewTicker(pingInterval)
	defer func() {
		ping.Stop()
		_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.Write(ctx, websocket.MessageText, msg)
		case <-ping.C:
			_ = c.conn.Ping(ctx)
		}
	}
}

// Send delivers an envelope to a single session. Slow consumers drop
// messages rather than block the room.
func (h *Hub) Send(sessionID string, ev Envelope) {
	b, _ := json.Marshal(ev)
	h.mu.RLock()
	c := h.clients[sessionID]
	h.mu.RUnlock()
	if c == nil {
		return
	}
	select {
	case c.send <- b:
	default:
	}
}

// SendAll delivers an envelope to every listed session.
func (h *Hub) SendAll(sessionIDs []string, ev Envelope) {
	b, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range sessionIDs {
		c := h.clients[id]
		if c == nil {
			continue
		}
		select {
		case c.send <- b:
		default:
		}
	}
}
