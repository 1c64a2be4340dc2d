// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the target pool and the valid-guess list from configured files, or fall back
//     to the lists embedded in the assets package.
//   - Normalize every word to uppercase and reject anything that is not a 5-letter A–Z word.
//   - Answer membership questions (IsAllowed) case-insensitively.
//
// Word Lists:
//   - "targets": ordered pool daily targets are drawn from. Order and repeats are
//     significant because the sequence generator yields indices into it.
//   - "allowed": valid guesses. Always includes every target.
//
// Initialization behavior (Load):
//   1. answersPath and allowedPath both set: targets from the first, guesses from the second.
//   2. only allowedPath set: that file serves as both lists.
//   3. only answersPath set: targets from the file, guesses from the embedded list.
//   4. neither set: embedded defaults.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/assets"
)

// Length is the number of letters in every playable word.
const Length = 5

var (
	// ErrEmptyPool is returned when the target list has no entries.
	ErrEmptyPool = errors.New("words: target pool is empty")
	// ErrBadWord is returned for a list entry that is not a 5-letter A–Z word.
	ErrBadWord = errors.New("words: not a 5-letter word")
)

// Dictionary is the pair of read-only word collections the engine plays with.
type Dictionary struct {
	targets []string            // ordered target pool, repeats kept
	allowed map[string]struct{} // targets ∪ guesses
}

// New builds a Dictionary from raw lists. Entries are trimmed and uppercased.
// The target pool keeps its order and any repeated words, so a given list
// always yields the same daily sequences.
func New(targets, allowed []string) (*Dictionary, error) {
	pool, err := normalize("target", targets)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	guesses, err := normalize("allowed", allowed)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(pool)+len(guesses))
	for _, w := range pool {
		set[w] = struct{}{}
	}
	for _, w := range guesses {
		set[w] = struct{}{}
	}
	return &Dictionary{targets: pool, allowed: set}, nil
}

// Load reads the lists described by the package comment.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, fmt.Errorf("read answers %s: %w", answersPath, err)
		}
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, fmt.Errorf("read allowed %s: %w", allowedPath, err)
		}
		return New(ans, all)

	case answersPath == "" && allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, fmt.Errorf("read allowed %s: %w", allowedPath, err)
		}
		return New(all, all)

	case answersPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, fmt.Errorf("read answers %s: %w", answersPath, err)
		}
		all, err := readEmbedded("allowed.txt")
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		log.Warn().Str("answers", answersPath).Msg("words: no allowed file set, using embedded guess list")
		return New(ans, all)

	default:
		ans, err := readEmbedded("answers.txt")
		if err != nil {
			return nil, fmt.Errorf("embedded targets: %w", err)
		}
		all, err := readEmbedded("allowed.txt")
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		return New(ans, all)
	}
}

// Target returns the pool entry at index i.
func (d *Dictionary) Target(i int) string { return d.targets[i] }

// PoolSize is the number of target words, repeats included.
func (d *Dictionary) PoolSize() int { return len(d.targets) }

// IsAllowed reports whether w is a valid guess.
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowed[strings.ToUpper(w)]
	return ok
}

// Stats returns counts of loaded words: (targets, allowed).
func (d *Dictionary) Stats() (targetCount int, allowedCount int) {
	return len(d.targets), len(d.allowed)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readEmbedded loads one of the lists shipped in the assets package.
func readEmbedded(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines returns the lines of r, skipping blanks and # comments.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize uppercases every entry and fails on the first one that is not a word.
func normalize(kind string, list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	for i, s := range list {
		w := strings.ToUpper(strings.TrimSpace(s))
		if len(w) != Length || !IsAlpha(w) {
			return nil, fmt.Errorf("%w: %s entry %d %q", ErrBadWord, kind, i, s)
		}
		out = append(out, w)
	}
	return out, nil
}

// IsAlpha reports whether s is all uppercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
