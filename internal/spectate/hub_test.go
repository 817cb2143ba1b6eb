package spectate

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

var _ catcher.Renderer = (*Hub)(nil)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.Viewers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return msg
}

func TestHubStreamsFrames(t *testing.T) {
	h := NewHub(0, nil)
	conn := dial(t, h)

	h.Render(catcher.Snapshot{Frame: 7, Score: 12, Lives: 2, Objects: []catcher.ObjectView{{ID: 1, Kind: catcher.KindGolden}}})

	msg := readFrame(t, conn)
	if msg.Type != "frame" || msg.Data.Frame != 7 || msg.Data.Score != 12 || msg.Data.Lives != 2 {
		t.Errorf("got %+v", msg)
	}
	if len(msg.Data.Objects) != 1 || msg.Data.Objects[0].Kind != catcher.KindGolden {
		t.Errorf("objects = %+v", msg.Data.Objects)
	}
}

func TestHubLateJoinerGetsLatestFrame(t *testing.T) {
	h := NewHub(0, nil)
	h.Render(catcher.Snapshot{Frame: 3})

	conn := dial(t, h)
	if msg := readFrame(t, conn); msg.Data.Frame != 3 {
		t.Errorf("late joiner got frame %d, expected 3", msg.Data.Frame)
	}
}

func TestHubThrottle(t *testing.T) {
	h := NewHub(10, nil)
	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }

	v := &viewer{send: make(chan []byte, sendBuffer)}
	h.viewers[v] = struct{}{}

	// 60 frames over one second at 10 fps
	for i := 0; i < 60; i++ {
		h.Render(catcher.Snapshot{Frame: uint64(i)})
		now = now.Add(time.Second / 60)
	}
	if got := len(v.send); got < 9 || got > 11 {
		t.Errorf("forwarded %d frames, expected about 10", got)
	}

	// The final frame always goes out
	for len(v.send) > 0 {
		<-v.send
	}
	h.Render(catcher.Snapshot{Frame: 99, GameOver: true})
	if len(v.send) != 1 {
		t.Error("game over frame should bypass the throttle")
	}
}

func TestHubThrottlesFrozenGameOver(t *testing.T) {
	h := NewHub(1, nil)
	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }

	v := &viewer{send: make(chan []byte, 64)}
	h.viewers[v] = struct{}{}

	h.Render(catcher.Snapshot{Frame: 1})
	now = now.Add(time.Second / 60)

	// The game-over screen keeps rendering the same frame every tick
	for i := 0; i < 59; i++ {
		h.Render(catcher.Snapshot{Frame: 2, GameOver: true})
		now = now.Add(time.Second / 60)
	}
	if got := len(v.send); got != 2 {
		t.Errorf("forwarded %d frames in 1s at 1 fps, expected the first frame and the final one", got)
	}

	// A new session ending gets through again
	for len(v.send) > 0 {
		<-v.send
	}
	h.Render(catcher.Snapshot{Frame: 3})
	h.Render(catcher.Snapshot{Frame: 4, GameOver: true})
	if got := len(v.send); got != 1 {
		t.Errorf("forwarded %d frames, expected only the new final frame", got)
	}
}

func TestHubDropsFramesForSlowViewers(t *testing.T) {
	h := NewHub(0, nil)
	slow := &viewer{send: make(chan []byte, 1)}
	fast := &viewer{send: make(chan []byte, sendBuffer)}
	h.viewers[slow] = struct{}{}
	h.viewers[fast] = struct{}{}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			h.Render(catcher.Snapshot{Frame: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Render blocked on a full viewer")
	}
	if len(slow.send) != 1 || len(fast.send) != 5 {
		t.Errorf("slow=%d fast=%d, expected 1/5", len(slow.send), len(fast.send))
	}
}

func TestHubClose(t *testing.T) {
	h := NewHub(0, nil)
	conn := dial(t, h)

	h.Close()
	if h.Viewers() != 0 {
		t.Errorf("viewers after close = %d", h.Viewers())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should be closed")
	}
}
