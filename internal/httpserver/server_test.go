package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/runwords/internal/config"
	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/history"
	"github.com/robalobadob/runwords/internal/play"
	"github.com/robalobadob/runwords/internal/store"
	"github.com/robalobadob/runwords/internal/words"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		LogLevel:       "info",
		HistoryBackend: "memory",
		ClientOrigin:   "http://localhost:5173",
		JWTSecret:      "test_secret",
		JWTExpiresDays: 1,
		CookieName:     "runwords_token",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	dict, err := words.New(
		[]string{"CRANE", "SLATE", "TRACE", "ABOUT", "BLOCK", "CHAIR", "DRINK", "EARTH", "FLAME", "GHOST"},
		[]string{"ADIEU", "ROATE"},
	)
	if err != nil {
		t.Fatal(err)
	}
	h, err := history.Open(context.Background(), store.NewMemory(nil))
	if err != nil {
		t.Fatal(err)
	}
	p := play.New(dict, h, play.Options{
		SnapshotEveryGuess: true,
		Now:                func() time.Time { return time.Date(2022, 3, 7, 12, 0, 0, 0, time.UTC) },
	})
	return New(cfg, p, dict)
}

func do(t *testing.T, s *Server, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) game.View {
	t.Helper()
	var v game.View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v (%s)", err, rec.Body.String())
	}
	return v
}

func TestHealthAndWords(t *testing.T) {
	s := newTestServer(t, testConfig())
	if rec := do(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("health = %d %s", rec.Code, rec.Body.String())
	}
	rec := do(t, s, http.MethodGet, "/debug/words", "")
	var stats map[string]int
	_ = json.Unmarshal(rec.Body.Bytes(), &stats)
	if stats["targets"] != 10 || stats["allowed"] != 12 {
		t.Fatalf("stats = %v", stats)
	}
	if rec := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path = %d", rec.Code)
	}
}

func TestStateBeforeStart(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodGet, "/game/state", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "no_session") {
		t.Fatalf("state = %d %s", rec.Code, rec.Body.String())
	}
}

func TestPlayFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	v := decodeView(t, do(t, s, http.MethodPost, "/game/new", ""))
	if v.Day != 1 || v.Status != game.StatusPlaying || v.Budget != 6 {
		t.Fatalf("new view = %+v", v)
	}

	v = decodeView(t, do(t, s, http.MethodPost, "/game/new", `{"day":0}`))
	if v.Day != 0 {
		t.Fatalf("day = %d", v.Day)
	}

	v = decodeView(t, do(t, s, http.MethodPost, "/game/key", `{"key":"a"}`))
	if v.Input != "A" {
		t.Fatalf("input = %q", v.Input)
	}

	v = decodeView(t, do(t, s, http.MethodPost, "/game/guess", `{"word":"roate"}`))
	if len(v.Rows) != 1 || v.Rows[0].Word != "ROATE" || v.GuessesLeft != 5 {
		t.Fatalf("after guess = %+v", v)
	}

	v = decodeView(t, do(t, s, http.MethodPost, "/game/guess", `{"word":"zzzzz"}`))
	if !v.Rejected || len(v.Rows) != 1 {
		t.Fatalf("invalid word should be rejected: %+v", v)
	}

	v = decodeView(t, do(t, s, http.MethodGet, "/game/state", ""))
	if v.Day != 0 || len(v.Rows) != 1 {
		t.Fatalf("state = %+v", v)
	}

	if rec := do(t, s, http.MethodPost, "/game/key", `{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json = %d", rec.Code)
	}
}

func TestHistoryListing(t *testing.T) {
	s := newTestServer(t, testConfig())
	do(t, s, http.MethodPost, "/game/new", `{"day":0}`)
	do(t, s, http.MethodPost, "/game/guess", `{"word":"ADIEU"}`)

	rec := do(t, s, http.MethodGet, "/history", "")
	var res struct {
		Today int             `json:"today"`
		Days  []play.DayEntry `json:"days"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Today != 1 || len(res.Days) != 2 {
		t.Fatalf("history = %+v", res)
	}
	if d := res.Days[1]; d.Day != 0 || d.Status != game.StatusPlaying || d.Played {
		t.Fatalf("day 0 entry = %+v", d)
	}
}

func TestOwnerAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.PasswordHash = string(hash)
	s := newTestServer(t, cfg)

	if rec := do(t, s, http.MethodPost, "/game/new", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated new = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/history", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated history = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"wrong"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password = %d", rec.Code)
	}

	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"hunter22"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d %s", rec.Code, rec.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login did not set the token cookie")
	}

	if rec := do(t, s, http.MethodPost, "/game/new", "", cookie); rec.Code != http.StatusOK {
		t.Fatalf("authenticated new = %d", rec.Code)
	}

	forged := &http.Cookie{Name: cfg.CookieName, Value: cookie.Value + "x"}
	if rec := do(t, s, http.MethodGet, "/game/state", "", forged); rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token = %d", rec.Code)
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	s := newTestServer(t, testConfig())
	if rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"x"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("login without hash = %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 2
	s := newTestServer(t, cfg)
	for i := 0; i < 2; i++ {
		if rec := do(t, s, http.MethodPost, "/game/new", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d", i, rec.Code)
		}
	}
	if rec := do(t, s, http.MethodPost, "/game/new", ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over budget = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatal("health must not be rate limited")
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodOptions, "/game/new", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}
}
