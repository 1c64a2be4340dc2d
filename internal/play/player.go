// Package play drives a single player's sessions and writes their records to
// history. Hosts (the HTTP server, the terminal player) talk to a Player and
// render the views it returns.
package play

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/daily"
	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/history"
)

// ErrNoSession is returned by operations that need a started session.
var ErrNoSession = errors.New("no session started")

// Options tune persistence.
type Options struct {
	// SnapshotEveryGuess persists after every accepted guess, not only at the end of a run.
	SnapshotEveryGuess bool
	// Now overrides the clock used for "today". Defaults to time.Now.
	Now func() time.Time
}

// Player owns the current session. All methods are safe for concurrent use.
type Player struct {
	mu       sync.Mutex
	engine   *game.Engine
	hist     *history.Store
	snapshot bool
	now      func() time.Time
	sess     *game.Session
}

// New returns a Player whose engine resumes days from hist.
func New(dict game.Dictionary, hist *history.Store, opts Options) *Player {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Player{
		engine:   game.NewEngine(dict, hist),
		hist:     hist,
		snapshot: opts.SnapshotEveryGuess,
		now:      now,
	}
}

// TodayIndex is the day index for the Player's clock.
func (p *Player) TodayIndex() int { return daily.IndexAt(p.now()) }

// Start starts or resumes day and makes it the current session.
func (p *Player) Start(day int) game.View {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sess = p.engine.StartOrResume(day)
	log.Info().Int("day", day).Str("status", string(p.sess.Status())).Msg("play: session started")
	return p.sess.View()
}

// Today starts or resumes the current day.
func (p *Player) Today() game.View { return p.Start(p.TodayIndex()) }

// Key applies one logical key to the current session. Letters are
// case-insensitive. A persistence failure is returned alongside the
// already-updated view.
func (p *Player) Key(ctx context.Context, key string) (game.View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return game.View{}, ErrNoSession
	}
	err := p.applyLocked(ctx, strings.ToUpper(strings.TrimSpace(key)))
	return p.sess.View(), err
}

// Guess replaces the pending input with word and submits it.
func (p *Player) Guess(ctx context.Context, word string) (game.View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return game.View{}, ErrNoSession
	}
	for p.sess.Input != "" && !p.sess.Over() {
		p.sess.HandleKey(game.KeyBackspace)
	}
	for _, c := range strings.ToUpper(strings.TrimSpace(word)) {
		if err := p.applyLocked(ctx, string(c)); err != nil {
			return p.sess.View(), err
		}
	}
	err := p.applyLocked(ctx, game.KeyEnter)
	return p.sess.View(), err
}

func (p *Player) applyLocked(ctx context.Context, key string) error {
	tr := p.sess.HandleKey(key)
	if tr.Record == nil {
		return nil
	}
	if !tr.Terminal && !(tr.Accepted && p.snapshot) {
		return nil
	}
	if err := p.hist.Put(ctx, p.sess.Day, *tr.Record); err != nil {
		log.Error().Err(err).Int("day", p.sess.Day).Msg("play: persist record")
		return fmt.Errorf("persist day %d: %w", p.sess.Day, err)
	}
	if tr.Terminal {
		log.Info().Int("day", p.sess.Day).Str("status", string(p.sess.Status())).
			Int("solved", p.sess.NumCorrect).Msg("play: run finished")
	}
	return nil
}

// State returns the current view.
func (p *Player) State() (game.View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return game.View{}, ErrNoSession
	}
	return p.sess.View(), nil
}

// Day reports the current session's day index.
func (p *Player) Day() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return 0, false
	}
	return p.sess.Day, true
}
