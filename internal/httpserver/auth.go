// internal/httpserver/auth.go
//
// Owner authentication.
// The server is single-player. When PASSWORD_HASH is configured, the owner
// logs in with that password and receives an HS256 JWT in a cookie; game and
// history routes then require the token. Without a hash every route is open.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const ownerSubject = "owner"

// ownerAuth holds the token and cookie settings.
type ownerAuth struct {
	hash       []byte
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

func (a *ownerAuth) enabled() bool { return len(a.hash) > 0 }

// checkPassword is a bcrypt verifier.
func (a *ownerAuth) checkPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword(a.hash, []byte(pw)) == nil
}

// signJWT creates an HS256 token for the owner with a fresh token ID.
func (a *ownerAuth) signJWT() (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(a.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   ownerSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(a.secret)
	return ss, exp, err
}

// verify parses and validates a token string.
func (a *ownerAuth) verify(tokenStr string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if !token.Valid || claims.Subject != ownerSubject {
		return errors.New("invalid token")
	}
	return nil
}

func (a *ownerAuth) sameSite() http.SameSite {
	if a.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// setCookie writes the auth token cookie.
func (a *ownerAuth) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: a.sameSite(),
		Expires:  exp,
	})
}

// clearCookie deletes the auth token cookie.
func (a *ownerAuth) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: a.sameSite(),
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the auth cookie.
func (a *ownerAuth) bearerOrCookie(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if c, err := r.Cookie(a.cookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireAuth enforces a valid owner token when auth is enabled.
func (a *ownerAuth) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.enabled() {
			next.ServeHTTP(w, r)
			return
		}
		tok := a.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := a.verify(tok); err != nil {
			log.Debug().Err(err).Msg("rejecting token")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginReq struct {
	Password string `json:"password"`
}

// handleLogin verifies the owner password and sets the token cookie.
func (a *ownerAuth) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !a.enabled() {
		writeError(w, http.StatusNotFound, "auth_disabled")
		return
	}
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !a.checkPassword(body.Password) {
		log.Warn().Str("ip", clientIP(r)).Msg("failed login")
		writeError(w, http.StatusUnauthorized, "invalid_password")
		return
	}
	tok, exp, err := a.signJWT()
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	a.setCookie(w, tok, exp)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": tok, "expiresAt": exp.UTC().Format(time.RFC3339)})
}

// handleLogout clears the auth cookie.
func (a *ownerAuth) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.clearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
