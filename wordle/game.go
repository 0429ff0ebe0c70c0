// Package wordle plays wordle and solves it by letter frequency.
package wordle

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

type Status uint8

const (
	Running Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "running"
}

// ClueMode selects how Yellow and Grey are decided for repeated letters.
type ClueMode uint8

const (
	// SimplifiedClues marks a letter Yellow whenever it occurs anywhere in
	// the target, regardless of how many times it was already matched.
	SimplifiedClues ClueMode = iota
	// StandardClues uses the two pass scoring of the published game: a
	// letter is Yellow only while unmatched copies remain in the target.
	StandardClues
)

func (m ClueMode) String() string {
	if m == StandardClues {
		return "standard"
	}
	return "simplified"
}

// Round is one guess and the clues it received.
type Round struct {
	Guess string
	Clues Clues
}

// Game holds a hidden target word and the guesses made against it.
// A finished game stays finished; play again with a new Game.
type Game struct {
	target  string
	round   int
	status  Status
	history []Round
	mode    ClueMode
}

func NewGame(target string) (*Game, error) {
	return NewGameWithMode(target, SimplifiedClues)
}

func NewGameWithMode(target string, mode ClueMode) (*Game, error) {
	if !isWord(target) {
		return nil, fmt.Errorf("%w: target %q has %d letters, want %d ASCII", ErrWordLengthMismatch, target, utf8.RuneCountInString(target), WordLength)
	}
	return &Game{target: target, mode: mode}, nil
}

// PickRandomlyFrom starts a game with a target drawn uniformly from lex.
func PickRandomlyFrom(lex *Lexicon, rng *rand.Rand, mode ClueMode) (*Game, error) {
	if lex.Len() == 0 {
		return nil, ErrEmptyLexicon
	}
	return NewGameWithMode(lex.Word(rng.IntN(lex.Len())), mode)
}

// Guess scores word against the target and advances the round.
func (g *Game) Guess(word string) (Clues, error) {
	var clues Clues
	if g.status != Running {
		return clues, fmt.Errorf("%w: %s after %d rounds", ErrGameOver, g.status, g.round)
	}
	if !isWord(word) {
		return clues, fmt.Errorf("%w: guess %q has %d letters, want %d ASCII", ErrWordLengthMismatch, word, utf8.RuneCountInString(word), len(g.target))
	}

	if g.mode == StandardClues {
		clues = standardClues(g.target, word)
	} else {
		clues = simplifiedClues(g.target, word)
	}
	g.round++

	if clues.AllGreen() {
		g.status = Won
	} else if g.round == MaxRounds {
		g.status = Lost
	}
	g.history = append(g.history, Round{Guess: word, Clues: clues})
	return clues, nil
}

func simplifiedClues(target, guess string) Clues {
	var clues Clues
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == target[i]:
			clues[i] = Green
		case strings.IndexByte(target, guess[i]) >= 0:
			clues[i] = Yellow
		default:
			clues[i] = Grey
		}
	}
	return clues
}

func standardClues(target, guess string) Clues {
	var clues Clues
	var targetNotGreen [256]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			clues[i] = Green
		} else {
			targetNotGreen[target[i]]++
		}
	}
	// turn the rest yellow while unmatched copies remain
	for i := 0; i < WordLength; i++ {
		if clues[i] == Green {
			continue
		}
		if targetNotGreen[guess[i]] > 0 {
			clues[i] = Yellow
			targetNotGreen[guess[i]]--
		} else {
			clues[i] = Grey
		}
	}
	return clues
}

func (g *Game) IsRunning() bool { return g.status == Running }
func (g *Game) IsWon() bool     { return g.status == Won }
func (g *Game) Status() Status  { return g.status }
func (g *Game) Target() string  { return g.target }
func (g *Game) Round() int      { return g.round }
func (g *Game) Mode() ClueMode  { return g.mode }

// History returns the guesses so far, oldest first.
func (g *Game) History() []Round {
	ret := make([]Round, len(g.history))
	copy(ret, g.history)
	return ret
}
