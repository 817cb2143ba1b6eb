// Package spectate streams live catcher frames to read-only websocket viewers.
package spectate

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
	readLimit    = 512
)

// Message is the envelope every frame travels in.
type Message struct {
	Type string           `json:"type"`
	Data catcher.Snapshot `json:"data"`
}

// viewer is one connected spectator.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to viewers. It implements catcher.Renderer; Render
// never blocks the frame loop: a viewer whose buffer is full misses the frame.
type Hub struct {
	mu      sync.RWMutex
	viewers map[*viewer]struct{}
	latest  []byte

	minGap   time.Duration
	lastSent time.Time
	lastOver bool
	now      func() time.Time

	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewHub creates a hub that forwards at most maxFPS frames per second.
// maxFPS <= 0 forwards every frame.
func NewHub(maxFPS int, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &Hub{
		viewers: make(map[*viewer]struct{}),
		now:     time.Now,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectating is read-only and unauthenticated.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if maxFPS > 0 {
		h.minGap = time.Second / time.Duration(maxFPS)
	}
	return h
}

// Render implements catcher.Renderer.
func (h *Hub) Render(s catcher.Snapshot) {
	now := h.now()
	// Only the frame that ends a session skips the throttle; the frozen
	// game-over screen that follows is throttled like any other frame.
	ended := s.GameOver && !h.lastOver
	h.lastOver = s.GameOver
	if !ended && h.minGap > 0 && !h.lastSent.IsZero() && now.Sub(h.lastSent) < h.minGap {
		return
	}
	h.lastSent = now

	data, err := json.Marshal(Message{Type: "frame", Data: s})
	if err != nil {
		h.logger.Error("marshal snapshot", "err", err)
		return
	}
	h.broadcast(data)
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for v := range h.viewers {
		select {
		case v.send <- data:
		default:
			h.logger.Debug("viewer buffer full, dropping frame")
		}
	}
}

// Viewers returns the number of connected spectators.
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(v)
	h.logger.Info("spectator joined", "remote", r.RemoteAddr)

	go h.writePump(v)
	h.readPump(v)
}

func (h *Hub) register(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.viewers[v] = struct{}{}
	if h.latest != nil {
		v.send <- h.latest
	}
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// readPump discards anything viewers send and notices when they leave.
func (h *Hub) readPump(v *viewer) {
	defer func() {
		h.unregister(v)
		v.conn.Close()
		h.logger.Info("spectator left")
	}()

	v.conn.SetReadLimit(readLimit)
	v.conn.SetReadDeadline(time.Now().Add(pongTimeout)) //nolint:errcheck
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("spectator read error", "err", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.Debug("spectator write error", "err", err)
				return
			}

		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
