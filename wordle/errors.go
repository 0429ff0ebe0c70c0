package wordle

import "errors"

var (
	ErrWordLengthMismatch = errors.New("word length mismatch")
	ErrFileNotFound       = errors.New("wordlist file not found")
	ErrEmptyCandidateSet  = errors.New("no word satisfies the known constraints")
	ErrEmptyLexicon       = errors.New("lexicon is empty")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidClue        = errors.New("invalid clue")
	ErrUnknownSolver      = errors.New("unknown solver")
)
