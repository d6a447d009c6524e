package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
)

func TestRun_PlaysToExhaustion(t *testing.T) {
	c := catalog.Default()
	report, err := Run(c, Config{Runs: 5, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Runs)
	assert.Equal(t, 5, report.EndReasons[quiz.ReasonExhausted])
	// Every run consumes all but the last prompt.
	assert.Equal(t, 5*(len(c.Prompts)-1), report.Choices)
	assert.Len(t, report.Tallies, len(c.Interventions))
	assert.Equal(t, "exhausted=5", report.Summary())
}

func TestRun_MaxChoicesStopsEarly(t *testing.T) {
	report, err := Run(catalog.Default(), Config{Runs: 3, Seed: 1, MaxChoices: 4})
	require.NoError(t, err)

	assert.Equal(t, 12, report.Choices)
	assert.Equal(t, 3, report.EndReasons[quiz.ReasonStopped])
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(catalog.Default(), Config{Runs: 10, Seed: 9, MaxChoices: 6})
	require.NoError(t, err)
	b, err := Run(catalog.Default(), Config{Runs: 10, Seed: 9, MaxChoices: 6})
	require.NoError(t, err)

	assert.Equal(t, a.Tallies, b.Tallies)
}

func TestRun_TalliesOrderedByWins(t *testing.T) {
	report, err := Run(catalog.Default(), Config{Runs: 20, Seed: 3})
	require.NoError(t, err)

	wins := 0
	for i, tally := range report.Tallies {
		wins += tally.Wins
		if i > 0 {
			assert.GreaterOrEqual(t, report.Tallies[i-1].Wins, tally.Wins)
		}
	}
	assert.LessOrEqual(t, wins, 20)
}

func TestRun_Rejects(t *testing.T) {
	_, err := Run(catalog.Default(), Config{Runs: 0})
	assert.Error(t, err)

	_, err = Run(&catalog.Catalog{}, Config{Runs: 1})
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestTally_AvgScore(t *testing.T) {
	assert.Equal(t, 2.5, Tally{TotalScore: 10}.AvgScore(4))
	assert.Equal(t, 0.0, Tally{TotalScore: 10}.AvgScore(0))
}
