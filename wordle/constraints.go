package wordle

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// ConstraintSet accumulates what the clues of a game revealed about the
// target. Knowledge is only ever added.
//
// Clues for a letter that appears more than once in a guess are not
// reconciled: a letter can be both placed (Green) and excluded (Grey) at
// the same time, which makes Fits stricter than the rules of the game.
type ConstraintSet struct {
	found          [WordLength]byte    // found[2] == 'a' the third letter is 'a', 0 unknown
	mustContain    map[byte]mapset.Set // mustContain['a'] positions where 'a' is known not to be
	mustNotContain mapset.Set          // letters not in the target
	empty          bool
}

func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{
		mustContain:    make(map[byte]mapset.Set),
		mustNotContain: mapset.NewThreadUnsafeSet(),
		empty:          true,
	}
}

// AddConstraint records the clues received for guess.
func (c *ConstraintSet) AddConstraint(guess string, clues Clues) error {
	if len(guess) != WordLength {
		return ErrWordLengthMismatch
	}
	for pos, clue := range clues {
		if clue < Grey || clue > Green {
			return fmt.Errorf("%w: position %d has clue %d", ErrInvalidClue, pos, clue)
		}
	}
	for pos, clue := range clues {
		letter := guess[pos]
		switch clue {
		case Green:
			c.found[pos] = letter
		case Yellow:
			positions, ok := c.mustContain[letter]
			if !ok {
				positions = mapset.NewThreadUnsafeSet()
				c.mustContain[letter] = positions
			}
			positions.Add(pos)
		case Grey:
			c.mustNotContain.Add(letter)
		}
	}
	c.empty = false
	return nil
}

// Fits reports whether word is consistent with every recorded clue.
// With invertGreens the placed letters are not required at their
// positions; instead word must not contain any of them.
func (c *ConstraintSet) Fits(word string, invertGreens bool) bool {
	if c.empty {
		return true
	}
	if len(word) != WordLength {
		return false
	}
	for pos := 0; pos < WordLength; pos++ {
		letter := word[pos]
		if c.found[pos] != 0 && !invertGreens && c.found[pos] != letter {
			return false
		}
		if positions, ok := c.mustContain[letter]; ok && positions.Contains(pos) {
			// yellow letter back at a position where it was already wrong
			return false
		}
		if c.mustNotContain.Contains(letter) {
			return false
		}
	}
	for letter := range c.mustContain {
		if strings.IndexByte(word, letter) < 0 {
			return false
		}
	}
	if invertGreens {
		for _, letter := range c.found {
			if letter != 0 && strings.IndexByte(word, letter) >= 0 {
				return false
			}
		}
	}
	return true
}

func (c *ConstraintSet) IsEmpty() bool {
	return c.empty
}

// Found returns the letter known at pos.
func (c *ConstraintSet) Found(pos int) (byte, bool) {
	letter := c.found[pos]
	return letter, letter != 0
}

// ExcludedPositions lists, ascending, where a Yellow letter is known not to be.
func (c *ConstraintSet) ExcludedPositions(letter byte) []int {
	positions, ok := c.mustContain[letter]
	if !ok {
		return nil
	}
	ret := make([]int, 0, positions.Cardinality())
	for _, p := range positions.ToSlice() {
		ret = append(ret, p.(int))
	}
	slices.Sort(ret)
	return ret
}

// RequiredLetters lists, ascending, the letters known to be present but not placed.
func (c *ConstraintSet) RequiredLetters() []byte {
	ret := make([]byte, 0, len(c.mustContain))
	for letter := range c.mustContain {
		ret = append(ret, letter)
	}
	slices.Sort(ret)
	return ret
}

// ExcludedLetters lists, ascending, the letters known to be absent.
func (c *ConstraintSet) ExcludedLetters() []byte {
	ret := make([]byte, 0, c.mustNotContain.Cardinality())
	for _, letter := range c.mustNotContain.ToSlice() {
		ret = append(ret, letter.(byte))
	}
	slices.Sort(ret)
	return ret
}

// LettersToFind estimates how many distinct letters of the target are
// still unknown, assuming it has no repeated letters.
func (c *ConstraintSet) LettersToFind() int {
	greens := mapset.NewThreadUnsafeSet()
	for _, letter := range c.found {
		if letter != 0 {
			greens.Add(letter)
		}
	}
	ret := WordLength
	for _, letter := range c.found {
		if letter != 0 {
			ret--
		}
	}
	for letter := range c.mustContain {
		if !greens.Contains(letter) {
			ret--
		}
	}
	return ret
}
