package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	_ "github.com/vovakirdan/eggcatch/internal/games/catcher"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

type fakeScores struct {
	entries   map[string][]storage.ScoreEntry
	err       error
	lastLimit int
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	all := f.entries[gameID]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeScores) HighScore(gameID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if all := f.entries[gameID]; len(all) > 0 {
		return all[0].Score, nil
	}
	return 0, nil
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.GameStats{GameID: gameID, GamesCount: len(f.entries[gameID])}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON %q: %v", path, w.Body.String(), err)
		}
	}
	return w, body
}

func newTestRouter(scores *fakeScores) *gin.Engine {
	return NewRouter(scores, nil, nil)
}

func TestHealth(t *testing.T) {
	w, body := get(t, newTestRouter(&fakeScores{}), "/api/v1/health")
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v", w.Code, body)
	}
}

func TestModes(t *testing.T) {
	w, body := get(t, newTestRouter(&fakeScores{}), "/api/v1/modes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	modes, _ := body["modes"].([]any)
	if len(modes) != 2 {
		t.Fatalf("modes = %v, expected both catcher modes", body["modes"])
	}
	first, _ := modes[0].(map[string]any)
	if first["id"] != "eggcatch" {
		t.Errorf("first mode = %v", first)
	}
}

func TestTopScores(t *testing.T) {
	scores := &fakeScores{entries: map[string][]storage.ScoreEntry{
		"eggcatch": {{ID: 2, GameID: "eggcatch", Score: 90}, {ID: 1, GameID: "eggcatch", Score: 40}},
	}}
	router := newTestRouter(scores)

	w, body := get(t, router, "/api/v1/scores/eggcatch?limit=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	list, _ := body["scores"].([]any)
	if len(list) != 1 || scores.lastLimit != 1 {
		t.Errorf("scores = %v limit = %d", list, scores.lastLimit)
	}

	get(t, router, "/api/v1/scores/eggcatch")
	if scores.lastLimit != defaultLimit {
		t.Errorf("default limit = %d", scores.lastLimit)
	}

	get(t, router, "/api/v1/scores/eggcatch?limit=5000")
	if scores.lastLimit != maxLimit {
		t.Errorf("limit should cap at %d, got %d", maxLimit, scores.lastLimit)
	}

	// Empty modes list an empty array, not null
	_, body = get(t, router, "/api/v1/scores/eggcatch_hard")
	if list, ok := body["scores"].([]any); !ok || len(list) != 0 {
		t.Errorf("empty scores = %#v", body["scores"])
	}
}

func TestBadLimit(t *testing.T) {
	for _, q := range []string{"abc", "0", "-3"} {
		w, _ := get(t, newTestRouter(&fakeScores{}), "/api/v1/scores/eggcatch?limit="+q)
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status %d, expected 400", q, w.Code)
		}
	}
}

func TestBestAndStats(t *testing.T) {
	scores := &fakeScores{entries: map[string][]storage.ScoreEntry{
		"eggcatch": {{Score: 90}, {Score: 40}},
	}}
	router := newTestRouter(scores)

	w, body := get(t, router, "/api/v1/scores/eggcatch/best")
	if w.Code != http.StatusOK || body["best"] != float64(90) {
		t.Errorf("best = %d %v", w.Code, body)
	}

	w, body = get(t, router, "/api/v1/stats/eggcatch")
	if w.Code != http.StatusOK || body["games_count"] != float64(2) || body["game_id"] != "eggcatch" {
		t.Errorf("stats = %d %v", w.Code, body)
	}
}

func TestUnknownMode(t *testing.T) {
	router := newTestRouter(&fakeScores{})
	for _, path := range []string{"/api/v1/scores/snake", "/api/v1/scores/snake/best", "/api/v1/stats/snake"} {
		w, body := get(t, router, path)
		if w.Code != http.StatusNotFound || body["error"] == nil {
			t.Errorf("%s: %d %v, expected 404 with error", path, w.Code, body)
		}
	}
}

func TestStorageError(t *testing.T) {
	router := newTestRouter(&fakeScores{err: errors.New("disk gone")})
	for _, path := range []string{"/api/v1/scores/eggcatch", "/api/v1/scores/eggcatch/best", "/api/v1/stats/eggcatch"} {
		w, body := get(t, router, path)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: status %d, expected 500", path, w.Code)
		}
		if body["error"] == "disk gone" {
			t.Errorf("%s leaked the storage error", path)
		}
	}
}

func TestLiveRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&fakeScores{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/live", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("live without a hub: status %d, expected 404", w.Code)
	}

	live := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	w = httptest.NewRecorder()
	NewRouter(&fakeScores{}, live, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/live", nil))
	if w.Code != http.StatusTeapot {
		t.Errorf("live handler not mounted: status %d", w.Code)
	}
}

func TestNoStore(t *testing.T) {
	router := NewRouter(nil, nil, nil)

	for _, path := range []string{"/api/v1/scores/eggcatch", "/api/v1/scores/eggcatch/best", "/api/v1/stats/eggcatch"} {
		w, body := get(t, router, path)
		if w.Code != http.StatusServiceUnavailable || body["error"] != "storage unavailable" {
			t.Errorf("%s: status %d body %v, expected 503", path, w.Code, body)
		}
	}

	if w, _ := get(t, router, "/api/v1/health"); w.Code != http.StatusOK {
		t.Errorf("health without a store: status %d", w.Code)
	}
}
