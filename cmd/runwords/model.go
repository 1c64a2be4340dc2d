package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/play"
)

// model is the bubbletea model. Every key press becomes one logical key for
// the Player; the rendered view is whatever the Player last returned.
type model struct {
	ctx         context.Context
	player      *play.Player
	view        game.View
	err         error
	showHistory bool
	listing     []play.DayEntry
}

func newModel(ctx context.Context, p *play.Player) model {
	return model{ctx: ctx, player: p, view: p.Today()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.listing = m.player.Listing()
		}
	case tea.KeyLeft:
		if m.view.Day > 0 {
			m = m.startDay(m.view.Day - 1)
		}
	case tea.KeyRight:
		if m.view.Day < m.player.TodayIndex() {
			m = m.startDay(m.view.Day + 1)
		}
	case tea.KeyEnter:
		m = m.send(game.KeyEnter)
	case tea.KeyBackspace:
		m = m.send(game.KeyBackspace)
	case tea.KeyDelete:
		m = m.send(game.KeyDelete)
	case tea.KeyRunes:
		for _, r := range key.Runes {
			m = m.send(string(r))
		}
	}
	return m, nil
}

func (m model) startDay(day int) model {
	m.view = m.player.Start(day)
	m.err = nil
	if m.showHistory {
		m.listing = m.player.Listing()
	}
	return m
}

// send forwards one key. A persistence error still carries the updated view.
func (m model) send(k string) model {
	v, err := m.player.Key(m.ctx, k)
	m.err = err
	if !errors.Is(err, play.ErrNoSession) {
		m.view = v
	}
	if m.showHistory && err == nil {
		m.listing = m.player.Listing()
	}
	return m
}

func (m model) View() string {
	out := renderView(m.view, m.err)
	if m.showHistory {
		out += "\n" + renderListing(m.listing)
	}
	return out
}
