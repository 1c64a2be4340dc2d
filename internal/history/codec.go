package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrCorrupt marks a history document that could not be parsed at all.
var ErrCorrupt = errors.New("history: corrupt document")

// Encode writes records as a JSON object keyed by day index.
func Encode(rs Records) ([]byte, error) {
	doc := make(map[string]Record, len(rs))
	for day, r := range rs {
		doc[strconv.Itoa(day)] = r
	}
	return json.Marshal(doc)
}

// Decode parses a history document. Both the object form written by Encode
// and the legacy array form (indexed by day, with null holes) are accepted.
// Individual records that fail validation are dropped so that day starts
// fresh; a document that cannot be parsed at all returns ErrCorrupt.
func Decode(data []byte) (Records, error) {
	data = bytes.TrimSpace(data)
	out := Records{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, nil
	}

	raw := map[int]json.RawMessage{}
	switch data[0] {
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(data, &arr); err != nil {
			return Records{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		for day, m := range arr {
			raw[day] = m
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return Records{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		for k, m := range obj {
			day, err := strconv.Atoi(k)
			if err != nil {
				log.Warn().Str("key", k).Msg("history: skipping non-numeric day key")
				continue
			}
			raw[day] = m
		}
	default:
		return Records{}, fmt.Errorf("%w: unexpected leading byte %q", ErrCorrupt, data[0])
	}

	for day, m := range raw {
		if len(m) == 0 || bytes.Equal(bytes.TrimSpace(m), []byte("null")) {
			continue
		}
		r, err := DecodeRecord(m)
		if err != nil {
			log.Warn().Err(err).Int("day", day).Msg("history: dropping invalid record")
			continue
		}
		out[day] = r
	}
	return out, nil
}

// DecodeRecord parses and validates a single record.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	r = r.normalized()
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) normalized() Record {
	for i, g := range r.Guesses {
		for j, w := range g {
			r.Guesses[i][j] = strings.ToUpper(w)
		}
	}
	for i, h := range r.Hits {
		r.Hits[i] = strings.ToUpper(h)
	}
	return r
}

// Validate checks the structural invariants every stored record must hold.
// Checks that need the day's targets live in the game package.
func (r Record) Validate() error {
	switch {
	case r.GameWon && r.GameLost:
		return errors.New("record: both won and lost")
	case r.NumCorrect < 0:
		return fmt.Errorf("record: negative numCorrect %d", r.NumCorrect)
	case r.GuessesRemaining < 1 && !r.GameWon:
		return fmt.Errorf("record: guess budget %d", r.GuessesRemaining)
	case len(r.Guesses) == 0:
		return errors.New("record: no guess lists")
	case len(r.Guesses) != r.NumCorrect && len(r.Guesses) != r.NumCorrect+1:
		return fmt.Errorf("record: %d guess lists for %d solved", len(r.Guesses), r.NumCorrect)
	}
	for i, g := range r.Guesses {
		for _, w := range g {
			if !isWord(w) {
				return fmt.Errorf("record: guess list %d holds %q", i, w)
			}
		}
	}
	for _, h := range r.Hits {
		if len(h) != 1 || h[0] < 'A' || h[0] > 'Z' {
			return fmt.Errorf("record: bad hit letter %q", h)
		}
	}
	return nil
}

func isWord(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
