package play

import (
	"github.com/robalobadob/runwords/internal/daily"
	"github.com/robalobadob/runwords/internal/game"
)

// DayEntry summarizes one day for the history listing.
type DayEntry struct {
	Day    int         `json:"day"`
	Date   string      `json:"date"`
	Played bool        `json:"played"` // finished with a win or loss
	Status game.Status `json:"status,omitempty"`
	Solved int         `json:"solved"`
}

// Listing returns every day from today down to day 0, newest first.
func (p *Player) Listing() []DayEntry {
	today := p.TodayIndex()
	if today < 0 {
		return []DayEntry{}
	}
	all := p.hist.All()
	out := make([]DayEntry, 0, today+1)
	for day := today; day >= 0; day-- {
		e := DayEntry{Day: day, Date: daily.DateKey(day)}
		if r, ok := all[day]; ok {
			e.Played = r.Terminal()
			e.Solved = r.NumCorrect
			switch {
			case r.GameWon:
				e.Status = game.StatusWon
			case r.GameLost:
				e.Status = game.StatusLost
			default:
				e.Status = game.StatusPlaying
			}
		}
		out = append(out, e)
	}
	return out
}
