// Package history keeps per-day session summaries so a day can be resumed or
// reviewed.
package history

import (
	"sort"

	"github.com/samber/lo"
)

// Record is the frozen summary of one day's session. Field names follow the
// persisted JSON format.
type Record struct {
	NumCorrect       int        `json:"numCorrect"`
	GuessesRemaining int        `json:"guessesRemaining"` // guess budget for the active target
	Guesses          [][]string `json:"guesses"`          // one sub-list per attempted target
	Hits             []string   `json:"hits"`             // known-hit letters of the active target
	GameWon          bool       `json:"gameWon"`
	GameLost         bool       `json:"gameLost"`
}

// Terminal reports whether the record ended in a win or a loss.
func (r Record) Terminal() bool { return r.GameWon || r.GameLost }

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := r
	out.Guesses = lo.Map(r.Guesses, func(g []string, _ int) []string {
		return append([]string{}, g...)
	})
	out.Hits = append([]string{}, r.Hits...)
	return out
}

// Records maps day index to record.
type Records map[int]Record

// Clone returns a deep copy of the mapping.
func (rs Records) Clone() Records {
	out := make(Records, len(rs))
	for day, r := range rs {
		out[day] = r.Clone()
	}
	return out
}

// Days returns the recorded day indices in ascending order.
func (rs Records) Days() []int {
	days := lo.Keys(rs)
	sort.Ints(days)
	return days
}
