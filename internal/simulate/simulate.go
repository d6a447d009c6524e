// Package simulate plays quiz runs headlessly with a random player and
// aggregates how often each intervention comes out on top.
package simulate

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
)

// Config controls a simulation.
type Config struct {
	Runs int
	Seed uint64

	// MaxChoices ends each run after this many picks, standing in for the
	// countdown. Zero plays until the prompts run out.
	MaxChoices int

	Observer quiz.Observer
	Logger   *slog.Logger
}

// Tally aggregates one intervention's results across runs.
type Tally struct {
	Name       string
	Emoji      string
	Wins       int
	TotalScore int
}

// AvgScore is the mean score per run.
func (t Tally) AvgScore(runs int) float64 {
	if runs == 0 {
		return 0
	}
	return float64(t.TotalScore) / float64(runs)
}

// Report is the outcome of a simulation, tallies ordered by wins.
type Report struct {
	Runs       int
	Choices    int
	EndReasons map[quiz.EndReason]int
	Tallies    []Tally
}

// Run plays cfg.Runs quizzes over c. A run's winner is the intervention
// ranked first when it ends; runs that end with every score at zero have no
// winner.
func Run(c *catalog.Catalog, cfg Config) (*Report, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("runs must be > 0, got %d", cfg.Runs)
	}
	if err := catalog.Validate(c); err != nil {
		return nil, err
	}

	rnd := quiz.NewRand(cfg.Seed)
	opts := []quiz.Option{quiz.WithRand(rnd)}
	if cfg.Observer != nil {
		opts = append(opts, quiz.WithObserver(cfg.Observer))
	}
	if cfg.Logger != nil {
		opts = append(opts, quiz.WithLogger(cfg.Logger))
	}
	e := quiz.New(c, opts...)
	defer e.Close()

	tallies := make(map[string]*Tally, len(c.Interventions))
	order := make([]string, 0, len(c.Interventions))
	for _, iv := range c.Interventions {
		tallies[iv.Name] = &Tally{Name: iv.Name, Emoji: iv.Emoji}
		order = append(order, iv.Name)
	}

	report := &Report{Runs: cfg.Runs, EndReasons: make(map[quiz.EndReason]int)}
	for range cfg.Runs {
		e.Start()
		for e.Phase() == quiz.PhasePlaying {
			if cfg.MaxChoices > 0 && e.ShownCount() >= cfg.MaxChoices {
				e.End()
				break
			}
			if err := e.ChooseSide(rnd.IntN(2)); err != nil {
				return nil, fmt.Errorf("simulated choice: %w", err)
			}
		}

		report.Choices += e.ShownCount()
		report.EndReasons[e.EndReason()]++
		standings := e.Rankings()
		for _, st := range standings {
			tallies[st.Name()].TotalScore += st.Score
		}
		if len(standings) > 0 && standings[0].Score > 0 {
			tallies[standings[0].Name()].Wins++
		}
	}

	report.Tallies = make([]Tally, 0, len(order))
	for _, name := range order {
		report.Tallies = append(report.Tallies, *tallies[name])
	}
	slices.SortStableFunc(report.Tallies, func(a, b Tally) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return b.TotalScore - a.TotalScore
	})
	return report, nil
}

// Summary renders end reasons as "exhausted=10 stopped=2".
func (r *Report) Summary() string {
	reasons := []quiz.EndReason{quiz.ReasonTimeUp, quiz.ReasonExhausted, quiz.ReasonStopped, quiz.ReasonClosed}
	var parts []string
	for _, reason := range reasons {
		if n := r.EndReasons[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
		}
	}
	return strings.Join(parts, " ")
}
