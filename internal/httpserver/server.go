// internal/httpserver/server.go
//
// HTTP server wiring for runwords.
// Responsibilities:
//   - Router + middleware (request IDs, request log, JSON, CORS, timeouts, panic recovery).
//   - Public endpoints: "/", "/health", "/debug/words", "/auth/*".
//   - Game endpoints (owner auth when configured, rate limited): /game/*.
//   - History listing: /history.
//
// The server drives a single play.Player; the Player serializes key handling.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/config"
	"github.com/robalobadob/runwords/internal/play"
	"github.com/robalobadob/runwords/internal/words"
)

// Server bundles the router and the player it drives.
type Server struct {
	r      *chi.Mux
	player *play.Player
	dict   *words.Dictionary
	auth   *ownerAuth
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, p *play.Player, dict *words.Dictionary) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		player: p,
		dict:   dict,
		auth: &ownerAuth{
			hash:       []byte(cfg.PasswordHash),
			secret:     []byte(cfg.JWTSecret),
			ttl:        time.Duration(cfg.JWTExpiresDays) * 24 * time.Hour,
			cookieName: cfg.CookieName,
			secure:     cfg.IsProduction(),
		},
	}
	limiter := newIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "runwords",
			"auth":      s.auth.enabled(),
			"endpoints": []string{"/health", "POST /game/new", "POST /game/key", "POST /game/guess", "GET /game/state", "GET /history", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		t, a := s.dict.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"targets": t, "allowed": a})
	})

	// --- auth ---
	s.r.Post("/auth/login", s.auth.handleLogin)
	s.r.Post("/auth/logout", s.auth.handleLogout)

	// --- game + history (owner only when a password is configured) ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.auth.requireAuth)
		r.With(limiter.middleware).Route("/game", s.mountGame)
		r.Get("/history", s.handleHistory)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one structured line per request, tagged with chi's request ID.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("req_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
