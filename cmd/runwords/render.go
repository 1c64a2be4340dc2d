package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/runwords/internal/daily"
	"github.com/robalobadob/runwords/internal/game"
	"github.com/robalobadob/runwords/internal/play"
)

var (
	styleHit     = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1)
	stylePartial = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1)
	styleMiss    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	styleBlank   = lipgloss.NewStyle().Padding(0, 1)
	styleHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	styleVerdict = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true).Padding(0, 1)
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func cellStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkHit:
		return styleHit
	case game.MarkPartial:
		return stylePartial
	case game.MarkMiss:
		return styleMiss
	}
	return styleBlank
}

// renderRow styles each letter of word by its mark.
func renderRow(word string, marks []game.Mark) string {
	cells := make([]string, 0, len(word))
	for i := 0; i < len(word); i++ {
		m := game.MarkNone
		if i < len(marks) {
			m = marks[i]
		}
		cells = append(cells, cellStyle(m).Render(string(word[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderKeyboard(marks map[string]game.Mark) string {
	rows := make([]string, 0, len(keyboardRows))
	for _, letters := range keyboardRows {
		cells := make([]string, 0, len(letters))
		for _, c := range letters {
			cells = append(cells, cellStyle(marks[string(c)]).Render(string(c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderView(v game.View, err error) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("runwords · day %d · %s", v.Day, daily.DateKey(v.Day))))
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render(fmt.Sprintf(" solved %d/%d   guesses left %d/%d", v.NumCorrect, daily.TargetsPerDay, v.GuessesLeft, v.Budget)))
	b.WriteString("\n\n")

	for _, r := range v.Rows {
		b.WriteString(renderRow(r.Word, r.Marks))
		b.WriteString("\n")
	}
	if v.Status == game.StatusPlaying {
		b.WriteString(renderRow(v.Input+strings.Repeat("_", max(0, 5-len(v.Input))), nil))
		b.WriteString("\n")
	}
	if v.Rejected {
		b.WriteString(styleError.Render("not a valid word"))
		b.WriteString("\n")
	}
	if err != nil {
		b.WriteString(styleError.Render("error: " + err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderKeyboard(v.Keyboard))
	b.WriteString("\n")

	if v.Status != game.StatusPlaying {
		b.WriteString("\n")
		b.WriteString(styleVerdict.Render(v.Verdict))
		b.WriteString("\n")
		if v.Missed != "" {
			b.WriteString(styleSubtle.Render(" the word was " + v.Missed))
			b.WriteString("\n")
		}
		for _, r := range v.Review {
			line := fmt.Sprintf("%2d ", r.Target+1) + renderRow(r.Word, r.Marks)
			if r.Solving {
				line += " ✓"
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(styleSubtle.Render(" ←/→ day · tab history · esc quit"))
	return b.String()
}

func renderListing(days []play.DayEntry) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("history"))
	b.WriteString("\n")
	for _, d := range days {
		status := "-"
		if d.Status != "" {
			status = string(d.Status)
		}
		fmt.Fprintf(&b, "%5d  %s  %-7s  %d\n", d.Day, d.Date, status, d.Solved)
	}
	return b.String()
}
