package wordle

import (
	"fmt"
	"strings"
)

// Solver picks guesses for one game at a time. Call Reset before each game.
type Solver interface {
	Reset()
	AddClue(guess string, clues Clues) error
	MakeGuess() (string, error)
	Name() string
}

const (
	NaiveSolverName = "naive"
	FlexSolverName  = "flex"
)

// SolverNames lists the strategies NewSolver understands.
var SolverNames = []string{NaiveSolverName, FlexSolverName}

// NewSolver builds a solver by strategy name.
func NewSolver(name string, lex *Lexicon) (Solver, error) {
	switch strings.ToLower(name) {
	case NaiveSolverName:
		s, err := NewNaiveFrequencySolver(lex)
		if err != nil {
			return nil, err
		}
		return s, nil
	case FlexSolverName:
		s, err := NewFlexFrequencySolver(lex)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q, want one of %s", ErrUnknownSolver, name, strings.Join(SolverNames, ", "))
}

// NaiveFrequencySolver guesses the word that fits every clue and has the
// most frequent letter at each position.
type NaiveFrequencySolver struct {
	lex          *Lexicon
	constraints  *ConstraintSet
	initialGuess string
}

func NewNaiveFrequencySolver(lex *Lexicon) (*NaiveFrequencySolver, error) {
	initialGuess, err := OpeningGuess(lex)
	if err != nil {
		return nil, fmt.Errorf("opening guess: %w", err)
	}
	return &NaiveFrequencySolver{
		lex:          lex,
		constraints:  NewConstraintSet(),
		initialGuess: initialGuess,
	}, nil
}

func (s *NaiveFrequencySolver) Name() string { return NaiveSolverName }

func (s *NaiveFrequencySolver) Reset() {
	s.constraints = NewConstraintSet()
}

func (s *NaiveFrequencySolver) AddClue(guess string, clues Clues) error {
	return s.constraints.AddConstraint(guess, clues)
}

// InitialGuess is the guess made before any clue is known.
func (s *NaiveFrequencySolver) InitialGuess() string {
	return s.initialGuess
}

// Candidates is the set of words that fit every clue so far.
func (s *NaiveFrequencySolver) Candidates() *WordList {
	return s.candidates(false)
}

func (s *NaiveFrequencySolver) candidates(invertGreens bool) *WordList {
	return s.lex.Filter(func(word string) bool {
		return s.constraints.Fits(word, invertGreens)
	})
}

func (s *NaiveFrequencySolver) MakeGuess() (string, error) {
	if s.constraints.IsEmpty() {
		return s.initialGuess, nil
	}
	return BestScoring(s.lex, s.candidates(false))
}

// FlexFrequencySolver behaves like NaiveFrequencySolver but, while many
// letters are still unknown, prefers words that avoid the letters already
// placed so each guess tests more new letters.
type FlexFrequencySolver struct {
	NaiveFrequencySolver
}

func NewFlexFrequencySolver(lex *Lexicon) (*FlexFrequencySolver, error) {
	naive, err := NewNaiveFrequencySolver(lex)
	if err != nil {
		return nil, err
	}
	return &FlexFrequencySolver{NaiveFrequencySolver: *naive}, nil
}

func (s *FlexFrequencySolver) Name() string { return FlexSolverName }

func (s *FlexFrequencySolver) MakeGuess() (string, error) {
	guess, _, err := s.guess()
	return guess, err
}

// guess also reports whether the chosen word came from the inverted pass.
func (s *FlexFrequencySolver) guess() (string, bool, error) {
	if s.constraints.IsEmpty() {
		return s.initialGuess, false, nil
	}
	invertGreens := s.constraints.LettersToFind() > 2
	guess, err := BestScoring(s.lex, s.candidates(invertGreens))
	if err == nil || !invertGreens {
		return guess, invertGreens, err
	}
	guess, err = BestScoring(s.lex, s.candidates(false))
	return guess, false, err
}
