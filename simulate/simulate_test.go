package simulate

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/freqwordle/wordle"
)

func loadLexicon(t testing.TB) *wordle.Lexicon {
	t.Helper()
	lex, err := wordle.LoadLexicon("testdata/words.txt")
	require.NoError(t, err)
	return lex
}

func TestRunIsReproducible(t *testing.T) {
	lex := loadLexicon(t)
	for _, solver := range wordle.SolverNames {
		run := func(workers int) (*Stats, []Trial) {
			r := NewRunner(lex, Config{Trials: 40, Seed: 7, Workers: workers, Solver: solver}, zerolog.Nop())
			stats, trials, err := r.Run(context.Background())
			require.NoError(t, err)
			return stats, trials
		}
		oneStats, one := run(1)
		manyStats, many := run(4)
		if diff := cmp.Diff(one, many); diff != "" {
			t.Errorf("%s trials differ with more workers (-one +many):\n%s", solver, diff)
		}
		assert.Equal(t, oneStats, manyStats)
		assert.Equal(t, uint64(7), oneStats.Seed)
		assert.Equal(t, 40, oneStats.Total())
		assert.Zero(t, oneStats.Failed, "simplified clues never leave the solver without candidates")
	}
}

func TestRunTrialsPlayToTheEnd(t *testing.T) {
	lex := loadLexicon(t)
	r := NewRunner(lex, Config{Trials: 25, Seed: 3, Solver: wordle.FlexSolverName}, zerolog.Nop())
	stats, trials, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, trials, 25)
	for _, trial := range trials {
		assert.NotEqual(t, wordle.Running, trial.Status)
		assert.Len(t, trial.History, trial.Rounds)
		last := trial.History[len(trial.History)-1]
		if trial.Status == wordle.Won {
			assert.Equal(t, trial.Target, last.Guess)
			assert.True(t, last.Clues.AllGreen())
		} else {
			assert.Equal(t, wordle.MaxRounds, trial.Rounds)
		}
	}
	assert.Equal(t, 25, stats.Won+stats.Lost)
}

func TestRunStandardClues(t *testing.T) {
	lex := loadLexicon(t)
	r := NewRunner(lex, Config{Trials: 30, Seed: 11, Workers: 2, ClueMode: wordle.StandardClues}, zerolog.Nop())
	stats, trials, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Total())
	for _, trial := range trials {
		if trial.Failed {
			assert.Equal(t, wordle.Running, trial.Status)
		}
	}
}

func TestRunUnknownSolver(t *testing.T) {
	r := NewRunner(loadLexicon(t), Config{Trials: 1, Seed: 1, Solver: "random"}, zerolog.Nop())
	_, _, err := r.Run(context.Background())
	assert.ErrorIs(t, err, wordle.ErrUnknownSolver)
}

func TestRunEmptyLexicon(t *testing.T) {
	r := NewRunner(wordle.NewLexicon(nil), Config{Trials: 1, Seed: 1}, zerolog.Nop())
	_, _, err := r.Run(context.Background())
	assert.ErrorIs(t, err, wordle.ErrEmptyCandidateSet)
}

func TestStats(t *testing.T) {
	stats := NewStats(1)
	assert := assert.New(t)
	assert.Zero(stats.WinRate())
	assert.Zero(stats.AverageRounds())

	stats.Add(Trial{Status: wordle.Won, Rounds: 2})
	stats.Add(Trial{Status: wordle.Won, Rounds: 5})
	stats.Add(Trial{Status: wordle.Lost, Rounds: 6})
	stats.Add(Trial{Status: wordle.Running, Rounds: 3, Failed: true})

	assert.Equal(2, stats.Won)
	assert.Equal(1, stats.Lost)
	assert.Equal(1, stats.Failed)
	assert.Equal(4, stats.Total())
	assert.InDelta(50.0, stats.WinRate(), 1e-9)
	assert.InDelta(3.5, stats.AverageRounds(), 1e-9)
	assert.Equal(map[int]int{2: 1, 5: 1}, stats.Rounds)

	var buf bytes.Buffer
	stats.Log(zerolog.New(&buf))
	assert.Contains(buf.String(), `"won":2`)
	assert.Contains(buf.String(), `"win_rate":"50.00%"`)
	assert.Contains(buf.String(), `"message":"simulation finished"`)
}
