package main

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/history"
	"github.com/robalobadob/runwords/internal/play"
	"github.com/robalobadob/runwords/internal/store"
	"github.com/robalobadob/runwords/internal/words"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func newTestModel(t *testing.T) (model, *store.Memory) {
	t.Helper()
	dict, err := words.New(
		[]string{"CRANE", "SLATE", "TRACE", "ABOUT", "BLOCK", "CHAIR", "DRINK", "EARTH", "FLAME", "GHOST"},
		[]string{"ROATE", "ADIEU"},
	)
	if err != nil {
		t.Fatal(err)
	}
	b := store.NewMemory(nil)
	h, err := history.Open(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	// 2022-03-08 is day 2.
	now := func() time.Time { return time.Date(2022, 3, 8, 12, 0, 0, 0, time.UTC) }
	p := play.New(dict, h, play.Options{SnapshotEveryGuess: true, Now: now})
	return newModel(context.Background(), p), b
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestTypeAndSubmit(t *testing.T) {
	m, b := newTestModel(t)
	if m.view.Day != 2 {
		t.Fatalf("day = %d, want 2", m.view.Day)
	}

	m = press(t, m, runes("roa"), runes("t"), runes("e"))
	if m.view.Input != "ROATE" {
		t.Fatalf("input = %q", m.view.Input)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.err != nil {
		t.Fatal(m.err)
	}
	if len(m.view.Rows) != 1 || m.view.Rows[0].Word != "ROATE" {
		t.Fatalf("rows = %+v", m.view.Rows)
	}
	if m.view.Input != "" {
		t.Fatalf("input after submit = %q", m.view.Input)
	}
	if b.Saves() == 0 {
		t.Fatal("accepted guess was not persisted")
	}
	if !strings.Contains(plain(m.View()), "R") {
		t.Fatal("submitted row not rendered")
	}
}

func TestBackspaceAndRejected(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("ab"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.view.Input != "A" {
		t.Fatalf("input = %q, want A", m.view.Input)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("zzzzz"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.view.Rejected {
		t.Fatal("ZZZZZ should be rejected")
	}
	if len(m.view.Rows) != 0 {
		t.Fatalf("rejected guess consumed a row: %+v", m.view.Rows)
	}
	if !strings.Contains(plain(m.View()), "not a valid word") {
		t.Fatal("rejection not rendered")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m, _ := newTestModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%v: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v: command is not quit", k)
		}
	}
}

func TestDaySwitchIsBounded(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.Day != 2 {
		t.Fatalf("moved past today: day %d", m.view.Day)
	}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	m = press(t, m, left, left, left, left)
	if m.view.Day != 0 {
		t.Fatalf("day = %d, want 0", m.view.Day)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.Day != 1 {
		t.Fatalf("day = %d, want 1", m.view.Day)
	}
}

func TestHistoryToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory || len(m.listing) != 3 {
		t.Fatalf("listing = %+v", m.listing)
	}
	out := plain(m.View())
	if !strings.Contains(out, "history") || !strings.Contains(out, "2022-03-08") {
		t.Fatalf("listing not rendered:\n%s", out)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(plain(m.View()), "2022-03-06") {
		t.Fatal("listing still shown")
	}
}

func TestRenderRowMarks(t *testing.T) {
	got := plain(renderRow("CRANE", []game.Mark{game.MarkHit, game.MarkMiss, game.MarkPartial, game.MarkNone, game.MarkMiss}))
	if strings.ReplaceAll(got, " ", "") != "CRANE" {
		t.Fatalf("row = %q", got)
	}
}
