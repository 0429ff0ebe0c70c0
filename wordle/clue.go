package wordle

import (
	"fmt"
	"strings"
)

// WordLength is the number of letters in every word of a game.
const WordLength = 5

// MaxRounds is the number of guesses allowed before a game is lost.
const MaxRounds = 6

// Clue is the feedback for one letter of a guess.
type Clue uint8

const (
	// Grey means the letter is not in the target.
	Grey Clue = iota + 1
	// Yellow means the letter is in the target at another position.
	Yellow
	// Green means the letter is at this position in the target.
	Green
)

// Clues holds one Clue per position of a guess.
type Clues [WordLength]Clue

// ParseClues reads the r/y/g answer format, e.g. "rrgyr".
func ParseClues(colors string) (Clues, error) {
	var ret Clues
	if len(colors) != WordLength {
		return ret, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidClue, colors, len(colors), WordLength)
	}
	for i := 0; i < len(colors); i++ {
		switch colors[i] {
		case 'r':
			ret[i] = Grey
		case 'y':
			ret[i] = Yellow
		case 'g':
			ret[i] = Green
		default:
			return ret, fmt.Errorf("%w: %q, use r, y or g", ErrInvalidClue, colors)
		}
	}
	return ret, nil
}

func (c Clue) letter() byte {
	switch c {
	case Grey:
		return 'r'
	case Yellow:
		return 'y'
	case Green:
		return 'g'
	}
	return '?'
}

// Emoji returns the coloured square shown for the clue.
func (c Clue) Emoji() string {
	switch c {
	case Green:
		return "🟩"
	case Yellow:
		return "🟨"
	}
	return "⬜"
}

// String returns the r/y/g form accepted by ParseClues.
func (cs Clues) String() string {
	var b [WordLength]byte
	for i, c := range cs {
		b[i] = c.letter()
	}
	return string(b[:])
}

// Emoji returns the clues as a row of coloured squares.
func (cs Clues) Emoji() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Emoji())
	}
	return b.String()
}

// AllGreen reports whether every position was guessed correctly.
func (cs Clues) AllGreen() bool {
	for _, c := range cs {
		if c != Green {
			return false
		}
	}
	return true
}
