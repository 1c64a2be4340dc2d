// internal/game/engine.go
//
// Run engine for a single day.
// Responsibilities:
//   - Derive the day's ten targets from the sequence generator.
//   - Start a fresh session or resume one from its history record.
//   - Apply logical keys: letters, BACKSPACE/DELETE, ENTER.
//   - Track state transitions: playing → won/lost, with budget carry-over
//     between targets.
//
// Persistence is the caller's job: HandleKey returns a Transition whose Record
// must be written whenever Terminal is set.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/runwords/internal/daily"
	"github.com/robalobadob/runwords/internal/history"
	"github.com/robalobadob/runwords/internal/words"
)

// Dictionary is the word data the engine needs.
type Dictionary interface {
	IsAllowed(w string) bool
	PoolSize() int
	Target(i int) string
}

// Lookup is the read side of the history store.
type Lookup interface {
	Get(day int) (history.Record, bool)
}

// Engine creates sessions for day indices.
type Engine struct {
	dict    Dictionary
	history Lookup
}

// NewEngine returns an Engine. h may be nil, in which case every day starts fresh.
func NewEngine(dict Dictionary, h Lookup) *Engine {
	return &Engine{dict: dict, history: h}
}

// Targets returns the day's ordered target words.
func (e *Engine) Targets(day int) []string {
	return lo.Map(daily.Indices(day, e.dict.PoolSize()), func(i int, _ int) string {
		return e.dict.Target(i)
	})
}

// StartOrResume returns the session for day: restored from history when a
// usable record exists, fresh otherwise. It never writes history.
func (e *Engine) StartOrResume(day int) *Session {
	s := newSession(day, e.Targets(day), e.dict.IsAllowed)
	if e.history == nil {
		return s
	}
	rec, ok := e.history.Get(day)
	if !ok {
		return s
	}
	if err := s.restore(rec); err != nil {
		log.Warn().Err(err).Int("day", day).Msg("game: ignoring unusable history record")
		return newSession(day, s.Targets, e.dict.IsAllowed)
	}
	log.Debug().Int("day", day).Str("status", string(s.Status())).Int("solved", s.NumCorrect).Msg("game: resumed")
	return s
}

func newSession(day int, targets []string, allowed func(string) bool) *Session {
	return &Session{
		Day:     day,
		Targets: targets,
		Budget:  InitialBudget,
		Guesses: [][]string{{}},
		Hits:    LetterSet{},
		allowed: allowed,
	}
}

// restore loads rec into a fresh session after checking it against the day's targets.
func (s *Session) restore(rec history.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	n := len(s.Targets)
	switch {
	case rec.NumCorrect > n:
		return fmt.Errorf("record solved %d of %d targets", rec.NumCorrect, n)
	case rec.GameWon != (rec.NumCorrect == n):
		return fmt.Errorf("record won=%v with %d of %d solved", rec.GameWon, rec.NumCorrect, n)
	case rec.GameWon && len(rec.Guesses) != n:
		return fmt.Errorf("won record has %d guess lists", len(rec.Guesses))
	case !rec.GameWon && len(rec.Guesses) != rec.NumCorrect+1:
		return fmt.Errorf("record has %d guess lists for %d solved", len(rec.Guesses), rec.NumCorrect)
	}
	for i := 0; i < rec.NumCorrect; i++ {
		if !lo.Contains(rec.Guesses[i], s.Targets[i]) {
			return fmt.Errorf("target %d never guessed; record belongs to another word list", i)
		}
	}
	if !rec.GameWon {
		active := len(rec.Guesses[rec.NumCorrect])
		if rec.GameLost && active < rec.GuessesRemaining {
			return errors.New("lost record with budget left")
		}
		if !rec.GameLost && active >= rec.GuessesRemaining {
			return errors.New("in-progress record with exhausted budget")
		}
	}

	rec = rec.Clone()
	s.NumCorrect = rec.NumCorrect
	s.Budget = rec.GuessesRemaining
	s.Guesses = rec.Guesses
	s.Hits = LetterSet{}
	for _, h := range rec.Hits {
		s.Hits.Add(h)
	}
	s.Won, s.Lost = rec.GameWon, rec.GameLost
	return nil
}

// HandleKey applies one logical key. Terminal sessions ignore every key, as
// do symbols other than A–Z, BACKSPACE, DELETE and ENTER.
func (s *Session) HandleKey(key string) Transition {
	var tr Transition
	if s.Over() || !isKey(key) {
		return tr
	}
	if s.Rejected {
		s.Rejected = false
		tr.Changed = true
	}
	switch key {
	case KeyEnter:
		return s.submit(tr)
	case KeyBackspace, KeyDelete:
		if s.Input != "" {
			s.Input = s.Input[:len(s.Input)-1]
			tr.Changed = true
		}
	default:
		if len(s.Input) < words.Length {
			s.Input += key
			tr.Changed = true
		}
	}
	return tr
}

// submit handles ENTER.
func (s *Session) submit(tr Transition) Transition {
	guess := s.Input
	if len(guess) != words.Length || !s.allowed(guess) {
		s.Rejected = true
		tr.Changed = true
		return tr
	}

	target := s.Targets[s.NumCorrect]
	s.Guesses[s.NumCorrect] = append(s.Guesses[s.NumCorrect], guess)
	for c := range HitLetters(target, guess) {
		s.Hits[c] = struct{}{}
	}
	tr.Changed, tr.Accepted = true, true

	if allHit(Classify(target, guess)) {
		tr.Solved = true
		used := len(s.Guesses[s.NumCorrect])
		s.NumCorrect++
		if s.NumCorrect == len(s.Targets) {
			s.Won = true
		} else {
			s.Budget = max(s.Budget-used+SolveBonus, MinBudget)
			s.Guesses = append(s.Guesses, []string{})
			s.Hits = HitLetters(s.Targets[s.NumCorrect], guess)
		}
	} else if len(s.Guesses[s.NumCorrect]) >= s.Budget {
		s.Lost = true
	}

	s.Input = ""
	tr.Terminal = s.Over()
	rec := s.Record()
	tr.Record = &rec
	return tr
}

// isKey reports whether key is a symbol the engine reacts to.
func isKey(key string) bool {
	switch key {
	case KeyEnter, KeyBackspace, KeyDelete:
		return true
	}
	return len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z'
}

// Record snapshots the persistent part of the session.
func (s *Session) Record() history.Record {
	return history.Record{
		NumCorrect:       s.NumCorrect,
		GuessesRemaining: s.Budget,
		Guesses: lo.Map(s.Guesses, func(g []string, _ int) []string {
			return append([]string{}, g...)
		}),
		Hits:     s.Hits.Strings(),
		GameWon:  s.Won,
		GameLost: s.Lost,
	}
}

// Status reports the coarse session state.
func (s *Session) Status() Status {
	switch {
	case s.Won:
		return StatusWon
	case s.Lost:
		return StatusLost
	}
	return StatusPlaying
}

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool { return s.Won || s.Lost }

// ActiveTarget returns the target being played, if any.
func (s *Session) ActiveTarget() (string, bool) {
	if s.NumCorrect >= len(s.Targets) {
		return "", false
	}
	return s.Targets[s.NumCorrect], true
}

// ActiveGuesses returns the guesses made against the active target.
func (s *Session) ActiveGuesses() []string {
	if s.NumCorrect >= len(s.Guesses) {
		return nil
	}
	return s.Guesses[s.NumCorrect]
}

// GuessesLeft is the number of guesses still available for the active target.
func (s *Session) GuessesLeft() int {
	if s.Over() {
		return 0
	}
	return s.Budget - len(s.ActiveGuesses())
}
