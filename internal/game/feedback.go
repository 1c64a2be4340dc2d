package game

import "strings"

// Classify scores guess against target position by position: hit when the
// letters match, partial when the guessed letter appears anywhere in the
// target, miss otherwise. Letter counts are not tracked, so a repeated guess
// letter can be partial more times than the target contains it.
func Classify(target, guess string) []Mark {
	n := len(target)
	res := make([]Mark, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(guess):
			res[i] = MarkNone
		case guess[i] == target[i]:
			res[i] = MarkHit
		case strings.IndexByte(target, guess[i]) >= 0:
			res[i] = MarkPartial
		default:
			res[i] = MarkMiss
		}
	}
	return res
}

// HitLetters returns the letters of guess that sit in the same position in target.
func HitLetters(target, guess string) LetterSet {
	ls := LetterSet{}
	for i := 0; i < len(target) && i < len(guess); i++ {
		if guess[i] == target[i] {
			ls[guess[i]] = struct{}{}
		}
	}
	return ls
}

// allHit reports whether every mark is MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return len(m) > 0
}

// KeyMark classifies a keyboard letter from the accumulated state of the
// active target: hit when known in position, partial when guessed and in the
// target, miss when guessed and absent, MarkNone when not yet guessed.
func (s *Session) KeyMark(c byte) Mark {
	target, ok := s.ActiveTarget()
	if !ok {
		return MarkNone
	}
	if s.Hits.Has(c) {
		return MarkHit
	}
	guessed := false
	for _, g := range s.ActiveGuesses() {
		if strings.IndexByte(g, c) >= 0 {
			guessed = true
			break
		}
	}
	switch {
	case !guessed:
		return MarkNone
	case strings.IndexByte(target, c) >= 0:
		return MarkPartial
	default:
		return MarkMiss
	}
}

// Keyboard classifies A–Z. Unguessed letters are omitted.
func (s *Session) Keyboard() map[string]Mark {
	out := map[string]Mark{}
	for c := byte('A'); c <= 'Z'; c++ {
		if m := s.KeyMark(c); m != MarkNone {
			out[string(c)] = m
		}
	}
	return out
}

// KnownMisses returns the letters guessed against the active target that do not occur in it.
func (s *Session) KnownMisses() LetterSet {
	ls := LetterSet{}
	target, ok := s.ActiveTarget()
	if !ok {
		return ls
	}
	for _, g := range s.ActiveGuesses() {
		for i := 0; i < len(g); i++ {
			if strings.IndexByte(target, g[i]) < 0 {
				ls[g[i]] = struct{}{}
			}
		}
	}
	return ls
}
