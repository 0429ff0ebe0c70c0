// Package simulate plays many games of wordle with a solver and reports
// how well it did.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/freqwordle/wordle"
)

type Config struct {
	Trials int
	// Seed for the target draw, 0 picks one from the clock.
	Seed     uint64
	Workers  int
	Solver   string
	ClueMode wordle.ClueMode
	Progress bool
}

// Trial is the outcome of one game.
type Trial struct {
	Target  string
	Status  wordle.Status
	Rounds  int
	History []wordle.Round
	// Failed is set when the solver ran out of candidates.
	Failed bool
}

type Runner struct {
	lex    *wordle.Lexicon
	config Config
	log    zerolog.Logger
}

func NewRunner(lex *wordle.Lexicon, config Config, log zerolog.Logger) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Solver == "" {
		config.Solver = wordle.NaiveSolverName
	}
	return &Runner{lex: lex, config: config, log: log}
}

// Run plays config.Trials games. Targets are drawn up front from the
// seed, so the result does not depend on the number of workers.
func (r *Runner) Run(ctx context.Context) (*Stats, []Trial, error) {
	seed := r.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r.log.Info().Uint64("seed", seed).Int("trials", r.config.Trials).Str("solver", r.config.Solver).
		Str("clues", r.config.ClueMode.String()).Int("workers", r.config.Workers).Msg("starting simulation")

	// fail on a bad solver name before any game starts
	if _, err := wordle.NewSolver(r.config.Solver, r.lex); err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	games := make([]*wordle.Game, r.config.Trials)
	for i := range games {
		game, err := wordle.PickRandomlyFrom(r.lex, rng, r.config.ClueMode)
		if err != nil {
			return nil, nil, err
		}
		games[i] = game
	}

	var bar *progressbar.ProgressBar
	if r.config.Progress {
		bar = progressbar.Default(int64(len(games)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(games)))
	}

	trials := make([]Trial, len(games))
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range games {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range r.config.Workers {
		g.Go(func() error {
			// a solver holds the constraints of one game, each worker needs its own
			solver, err := wordle.NewSolver(r.config.Solver, r.lex)
			if err != nil {
				return err
			}
			for i := range jobs {
				trial, err := r.runTrial(solver, i, games[i])
				if err != nil {
					return fmt.Errorf("trial %d target %s: %w", i, games[i].Target(), err)
				}
				trials[i] = trial
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	_ = bar.Finish()

	stats := NewStats(seed)
	for _, trial := range trials {
		stats.Add(trial)
	}
	return stats, trials, nil
}

func (r *Runner) runTrial(solver wordle.Solver, n int, game *wordle.Game) (Trial, error) {
	log := r.log.With().Int("trial", n).Str("target", game.Target()).Logger()
	log.Debug().Msg("running game")
	solver.Reset()

	trial := Trial{Target: game.Target()}
	for game.IsRunning() {
		guess, err := solver.MakeGuess()
		if errors.Is(err, wordle.ErrEmptyCandidateSet) {
			log.Warn().Err(err).Int("round", game.Round()).Msg("solver gave up")
			trial.Failed = true
			break
		}
		if err != nil {
			return trial, err
		}
		clues, err := game.Guess(guess)
		if err != nil {
			return trial, err
		}
		log.Debug().Int("round", game.Round()).Str("guess", guess).Str("clues", clues.Emoji()).Msg("guess")
		if err := solver.AddClue(guess, clues); err != nil {
			return trial, err
		}
	}
	trial.Status = game.Status()
	trial.Rounds = game.Round()
	trial.History = game.History()
	return trial, nil
}
