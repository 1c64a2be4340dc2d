package game

import "github.com/samber/lo"

// Row is one classified guess.
type Row struct {
	Word  string `json:"word"`
	Marks []Mark `json:"marks"`
}

// SolvedTarget is a completed target with the number of guesses it took.
type SolvedTarget struct {
	Word    string `json:"word"`
	Guesses int    `json:"guesses"`
}

// ReviewRow is one guess in the end-of-run review.
type ReviewRow struct {
	Target  int    `json:"target"` // index into the day's sequence
	Word    string `json:"word"`
	Marks   []Mark `json:"marks"`
	Solving bool   `json:"solving"` // this guess solved its target
}

// View is the read-only projection a presentation layer renders.
type View struct {
	Day         int             `json:"day"`
	Status      Status          `json:"status"`
	NumCorrect  int             `json:"numCorrect"`
	Budget      int             `json:"budget"`
	GuessesLeft int             `json:"guessesLeft"`
	Rows        []Row           `json:"rows"`
	Input       string          `json:"input"`
	Rejected    bool            `json:"rejected"`
	Keyboard    map[string]Mark `json:"keyboard"`
	Misses      []string        `json:"misses"` // letters known absent from the active target
	Solved      []SolvedTarget  `json:"solved"`
	Review      []ReviewRow     `json:"review,omitempty"`
	Missed      string          `json:"missed,omitempty"` // target that ended a lost run
	Verdict     string          `json:"verdict,omitempty"`
}

// View builds the presentation projection. The active target is never exposed
// while the run is in progress.
func (s *Session) View() View {
	v := View{
		Day:         s.Day,
		Status:      s.Status(),
		NumCorrect:  s.NumCorrect,
		Budget:      s.Budget,
		GuessesLeft: s.GuessesLeft(),
		Rows:        s.Rows(),
		Input:       s.Input,
		Rejected:    s.Rejected,
		Keyboard:    s.Keyboard(),
		Misses:      s.KnownMisses().Strings(),
		Solved:      s.Solved(),
	}
	if s.Over() {
		v.Review = s.Review()
		v.Verdict = Verdict(s.NumCorrect)
		if s.Lost {
			v.Missed, _ = s.ActiveTarget()
		}
	}
	return v
}

// Rows classifies the guesses made against the active target.
func (s *Session) Rows() []Row {
	target, ok := s.ActiveTarget()
	if !ok {
		return []Row{}
	}
	return lo.Map(s.ActiveGuesses(), func(g string, _ int) Row {
		return Row{Word: g, Marks: Classify(target, g)}
	})
}

// Solved lists the targets completed so far.
func (s *Session) Solved() []SolvedTarget {
	out := make([]SolvedTarget, 0, s.NumCorrect)
	for i := 0; i < s.NumCorrect && i < len(s.Guesses); i++ {
		out = append(out, SolvedTarget{Word: s.Targets[i], Guesses: len(s.Guesses[i])})
	}
	return out
}

// Review classifies every guess of every attempted target against that target.
func (s *Session) Review() []ReviewRow {
	var out []ReviewRow
	for i, guesses := range s.Guesses {
		if i >= len(s.Targets) {
			break
		}
		target := s.Targets[i]
		for j, g := range guesses {
			out = append(out, ReviewRow{
				Target:  i,
				Word:    g,
				Marks:   Classify(target, g),
				Solving: i < s.NumCorrect && j == len(guesses)-1,
			})
		}
	}
	return out
}

// Verdict is the closing line for a run that solved n targets.
func Verdict(n int) string {
	switch {
	case n <= 0:
		return "..fail.."
	case n < 3:
		return "..good run.."
	case n < 7:
		return "..great run!.."
	case n < 10:
		return "..you are amazing!.."
	}
	return "!..YOU WIN..!"
}
