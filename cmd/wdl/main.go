package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/freqwordle/simulate"
	"github.com/powellquiring/freqwordle/wordle"
)

type GlobalConfiguration struct {
	wordlist string
	solver   string
	progress bool
	log      zerolog.Logger
}

func (c GlobalConfiguration) lexicon() (*wordle.Lexicon, error) {
	lex, err := wordle.LoadLexicon(c.wordlist)
	if err != nil {
		return nil, err
	}
	c.log.Info().Int("words", lex.Len()).Int("length", wordle.WordLength).Str("wordlist", c.wordlist).Msg("loaded wordlist")
	return lex, nil
}

func newLogger(level string, debug bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).With().Timestamp().Logger(), nil
}

func clueMode(standard bool) wordle.ClueMode {
	if standard {
		return wordle.StandardClues
	}
	return wordle.SimplifiedClues
}

// sim runs many games and reports the win rate
func sim(ctx context.Context, globalConfig GlobalConfiguration, config simulate.Config) error {
	lex, err := globalConfig.lexicon()
	if err != nil {
		return err
	}
	config.Solver = globalConfig.solver
	config.Progress = globalConfig.progress
	stats, _, err := simulate.NewRunner(lex, config, globalConfig.log).Run(ctx)
	if err != nil {
		return err
	}
	stats.Log(globalConfig.log)
	return nil
}

// playWordle with guess/answer pairs provided
func playWordle(globalConfig GlobalConfiguration, answers []string) error {
	lex, err := globalConfig.lexicon()
	if err != nil {
		return err
	}
	solver, err := wordle.NewSolver(globalConfig.solver, lex)
	if err != nil {
		return err
	}
	solver.Reset()
	for i := 0; i < len(answers); i += 2 {
		guessString := answers[i]
		answerString := answers[i+1]
		if _, ok := lex.Index(guessString); !ok {
			return cli.Exit("guess not in wordlist: "+guessString, 3)
		}
		clues, err := wordle.ParseClues(answerString)
		if err != nil {
			return cli.Exit(err.Error(), 3)
		}
		if err := solver.AddClue(guessString, clues); err != nil {
			return err
		}
	}
	nextGuess, err := solver.MakeGuess()
	if err != nil {
		return err
	}
	fmt.Print(nextGuess, ":")
	if s, ok := solver.(interface{ Candidates() *wordle.WordList }); ok {
		for _, word := range lex.WordlistStrings(s.Candidates()) {
			fmt.Print(" ", word)
		}
	}
	fmt.Println()
	return nil
}

// first lists the best scoring opening guesses
func first(globalConfig GlobalConfiguration, top int, repeated bool) error {
	lex, err := globalConfig.lexicon()
	if err != nil {
		return err
	}
	for _, item := range wordle.TopScoring(lex, top, !repeated) {
		fmt.Println(item.Word, item.Score)
	}
	return nil
}

// score prints the clues a guess gets against a target
func score(target, guess string, mode wordle.ClueMode) error {
	game, err := wordle.NewGameWithMode(target, mode)
	if err != nil {
		return err
	}
	clues, err := game.Guess(guess)
	if err != nil {
		return err
	}
	fmt.Println(guess, clues.String(), clues.Emoji())
	return nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func main() {
	// a missing .env is fine, flags and the environment still apply
	_ = godotenv.Load()

	logLevel := "info"
	debug := false
	// replaced in Before once the log flags are parsed
	globalConfig := GlobalConfiguration{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
	profile := false
	stopProfile := func() {}
	// command specific flags
	simConfig := simulate.Config{}
	standard := false
	top := 10
	repeated := false

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "simulate and solve wordle with letter frequency solvers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "wordlist",
				Value:       "words.txt",
				Aliases:     []string{"w"},
				Usage:       "lexicon file with one word per line",
				Sources:     cli.EnvVars("WORDLE_WORDLIST"),
				Destination: &globalConfig.wordlist,
			},
			&cli.StringFlag{
				Name:        "solver",
				Value:       wordle.NaiveSolverName,
				Usage:       "solver strategy: " + strings.Join(wordle.SolverNames, ", "),
				Sources:     cli.EnvVars("WORDLE_SOLVER"),
				Destination: &globalConfig.solver,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &globalConfig.progress,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       logLevel,
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Usage:       "output debug-level info about each game",
				Destination: &debug,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(logLevel, debug)
			if err != nil {
				return ctx, cli.Exit(err.Error(), 2)
			}
			globalConfig.log = logger
			if profile {
				stop, err := cpuProfile()
				if err != nil {
					return ctx, err
				}
				stopProfile = stop
			}
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			stopProfile()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name: "sim",
				Usage: `sim [-n trials] [-s seed]
				Simulate games against targets drawn at random from the wordlist and report the win rate.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "num-trials",
						Value:       10,
						Aliases:     []string{"n"},
						Usage:       "number of trials to run",
						Sources:     cli.EnvVars("WORDLE_TRIALS"),
						Destination: &simConfig.Trials,
					},
					&cli.Uint64Flag{
						Name:        "seed",
						Value:       0,
						Aliases:     []string{"s"},
						Usage:       "fixed seed for reproducibility, 0 is random",
						Sources:     cli.EnvVars("WORDLE_SEED"),
						Destination: &simConfig.Seed,
					},
					&cli.IntFlag{
						Name:        "workers",
						Value:       0,
						Usage:       "games played in parallel, 0 is one per CPU",
						Sources:     cli.EnvVars("WORDLE_WORKERS"),
						Destination: &simConfig.Workers,
					},
					&cli.BoolFlag{
						Name:        "standard",
						Value:       false,
						Usage:       "score repeated letters like the published game",
						Destination: &standard,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if simConfig.Trials <= 0 {
						return cli.Exit("num-trials must be positive", 1)
					}
					simConfig.ClueMode = clueMode(standard)
					return sim(ctx, globalConfig, simConfig)
				},
			},
			{
				Name: "play",
				Usage: `play [guess answer]...
				Suggest the next guess given pairs of guess and answer, answers use r, y, g like rrggy.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					}
					return playWordle(globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first [-k N]
				Sort first words by letter frequency score
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       top,
						Aliases:     []string{"k"},
						Usage:       "number of words to list",
						Destination: &top,
					},
					&cli.BoolFlag{
						Name:        "repeated",
						Value:       false,
						Usage:       "include words with repeated letters",
						Destination: &repeated,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return first(globalConfig, top, repeated)
				},
			},
			{
				Name:  "score",
				Usage: "score TARGET GUESS",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "standard",
						Value:       false,
						Usage:       "score repeated letters like the published game",
						Destination: &standard,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return cli.Exit("must have a target and a guess", 1)
					}
					err := score(cmd.Args().Get(0), cmd.Args().Get(1), clueMode(standard))
					if errors.Is(err, wordle.ErrWordLengthMismatch) {
						return cli.Exit(err.Error(), 3)
					}
					return err
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		globalConfig.log.Fatal().Err(err).Msg("wdl failed")
	}
}
