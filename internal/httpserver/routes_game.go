// internal/httpserver/routes_game.go
//
// Game and history endpoints:
//   - POST /game/new    → start or resume a day (default today)
//   - POST /game/key    → apply one logical key
//   - POST /game/guess  → replace pending input with a word and submit it
//   - GET  /game/state  → current view
//   - GET  /history     → days from today down to day 0

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/play"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/new", s.handleNew)
	r.Post("/key", s.handleKey)
	r.Post("/guess", s.handleGuess)
	r.Get("/state", s.handleState)
}

type newReq struct {
	Day *int `json:"day"`
}

type keyReq struct {
	Key string `json:"key"`
}

type guessReq struct {
	Word string `json:"word"`
}

// decodeBody decodes an optional JSON body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var v game.View
	if req.Day != nil {
		v = s.player.Start(*req.Day)
	} else {
		v = s.player.Today()
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	v, err := s.player.Key(r.Context(), req.Key)
	s.respond(w, v, err)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	v, err := s.player.Guess(r.Context(), req.Word)
	s.respond(w, v, err)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.player.State()
	s.respond(w, v, err)
}

// respond maps player errors to status codes.
func (s *Server) respond(w http.ResponseWriter, v game.View, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, play.ErrNoSession):
		writeError(w, http.StatusNotFound, "no_session")
	default:
		log.Error().Err(err).Msg("game request")
		writeError(w, http.StatusInternalServerError, "save_failed")
	}
}

type historyRes struct {
	Today int             `json:"today"`
	Days  []play.DayEntry `json:"days"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, historyRes{Today: s.player.TodayIndex(), Days: s.player.Listing()})
}
