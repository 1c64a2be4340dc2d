// internal/game/types.go
//
// Core type definitions for the run engine.
// Defines:
//   - Mark: per-letter feedback (hit/partial/miss).
//   - Status: playing / won / lost.
//   - LetterSet: typed set of letters used for hit tracking.
//   - Session: the full mutable state of one day's run.
//   - Transition: what a single key did, including the record to persist.

package game

import (
	"sort"

	"github.com/robalobadob/runwords/internal/history"
)

// Mark represents the evaluation result for a single letter.
//   - "hit":     letter is in the correct position.
//   - "partial": letter exists in the target at another position.
//   - "miss":    letter does not exist in the target.
//
// The empty Mark means the letter has not been guessed yet.
type Mark string

const (
	MarkNone    Mark = ""
	MarkHit     Mark = "hit"
	MarkPartial Mark = "partial"
	MarkMiss    Mark = "miss"
)

// Status is the coarse state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Logical key symbols besides A–Z.
const (
	KeyEnter     = "ENTER"
	KeyBackspace = "BACKSPACE"
	KeyDelete    = "DELETE"
)

const (
	// InitialBudget is the guess budget for the first target of a day.
	InitialBudget = 6
	// SolveBonus is added to the carried-over budget after each solve.
	SolveBonus = 3
	// MinBudget floors the recomputed budget.
	MinBudget = 1
)

// LetterSet is a set of uppercase letters.
type LetterSet map[byte]struct{}

// Add inserts every letter of s.
func (ls LetterSet) Add(s string) {
	for i := 0; i < len(s); i++ {
		ls[s[i]] = struct{}{}
	}
}

// Has reports whether c is in the set.
func (ls LetterSet) Has(c byte) bool {
	_, ok := ls[c]
	return ok
}

// Strings returns the letters as sorted one-character strings.
func (ls LetterSet) Strings() []string {
	out := make([]string, 0, len(ls))
	for c := range ls {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// Session holds the state of one day's run. It is owned by whichever
// component drives the key loop; nothing else mutates it.
type Session struct {
	Day     int
	Targets []string // the day's sequence, fixed at start

	NumCorrect int        // solved targets; index of the active target
	Budget     int        // guesses allowed for the active target
	Guesses    [][]string // one sub-list per attempted target
	Hits       LetterSet  // letters known to be in position for the active target
	Input      string     // unsubmitted letters
	Won        bool
	Lost       bool
	Rejected   bool // last ENTER was not a valid guess

	allowed func(string) bool
}

// Transition describes the effect of one HandleKey call.
type Transition struct {
	Changed  bool            // any field of the session changed
	Accepted bool            // a guess was recorded
	Solved   bool            // the guess solved the active target
	Terminal bool            // this call ended the run
	Record   *history.Record // set when Accepted; must be persisted when Terminal
}
