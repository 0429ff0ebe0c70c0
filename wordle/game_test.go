package wordle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clues(t testing.TB, colors string) Clues {
	t.Helper()
	c, err := ParseClues(colors)
	require.NoError(t, err)
	return c
}

func TestParseClues(t *testing.T) {
	assert := assert.New(t)
	c, err := ParseClues("gyrrg")
	assert.NoError(err)
	assert.Equal(Clues{Green, Yellow, Grey, Grey, Green}, c)
	assert.Equal("gyrrg", c.String())
	assert.Equal("🟩🟨⬜⬜🟩", c.Emoji())

	_, err = ParseClues("gyrr")
	assert.ErrorIs(err, ErrInvalidClue)
	_, err = ParseClues("gyrrx")
	assert.ErrorIs(err, ErrInvalidClue)
}

func TestGuessOwnTargetIsAllGreen(t *testing.T) {
	lex := loadTestLexicon(t)
	for _, word := range lex.All {
		game, err := NewGame(word)
		require.NoError(t, err)
		c, err := game.Guess(word)
		require.NoError(t, err)
		assert.True(t, c.AllGreen(), word)
		assert.True(t, game.IsWon(), word)
	}
}

func TestGuessSimplifiedClues(t *testing.T) {
	game, err := NewGame("apple")
	require.NoError(t, err)
	c, err := game.Guess("allow")
	require.NoError(t, err)
	// both l's are yellow: membership is not limited by the single l in apple
	assert.Equal(t, clues(t, "gyyrr"), c)
}

func TestStandardCluesCountRepeatedLetters(t *testing.T) {
	tests := []struct {
		target, guess, simplified, standard string
	}{
		{"apple", "allow", "gyyrr", "gyrrr"},
		{"plead", "apple", "yyyyy", "yyryy"},
		{"crane", "trace", "rggyg", "rggyg"},
		{"sheep", "geese", "rygyy", "rygyr"},
	}
	for _, test := range tests {
		simple, err := NewGame(test.target)
		require.NoError(t, err)
		c, err := simple.Guess(test.guess)
		require.NoError(t, err)
		assert.Equal(t, test.simplified, c.String(), "simplified %s/%s", test.target, test.guess)

		standard, err := NewGameWithMode(test.target, StandardClues)
		require.NoError(t, err)
		c, err = standard.Guess(test.guess)
		require.NoError(t, err)
		assert.Equal(t, test.standard, c.String(), "standard %s/%s", test.target, test.guess)
	}
}

func TestRoundsAndStatus(t *testing.T) {
	assert := assert.New(t)
	game, err := NewGame("crane")
	require.NoError(t, err)
	assert.True(game.IsRunning())
	assert.Equal(0, game.Round())

	for round := 1; round < MaxRounds; round++ {
		_, err := game.Guess("slate")
		require.NoError(t, err)
		assert.Equal(round, game.Round())
		assert.True(game.IsRunning())
	}
	_, err = game.Guess("slate")
	require.NoError(t, err)
	assert.Equal(MaxRounds, game.Round())
	assert.Equal(Lost, game.Status())
	assert.False(game.IsWon())

	_, err = game.Guess("crane")
	assert.ErrorIs(err, ErrGameOver)
	assert.Equal(MaxRounds, game.Round())
	assert.Len(game.History(), MaxRounds)
}

func TestWinOnLastRoundIsNotLoss(t *testing.T) {
	game, err := NewGame("crane")
	require.NoError(t, err)
	for round := 1; round < MaxRounds; round++ {
		_, err := game.Guess("ghost")
		require.NoError(t, err)
	}
	_, err = game.Guess("crane")
	require.NoError(t, err)
	assert.Equal(t, Won, game.Status())
}

func TestHistory(t *testing.T) {
	game, err := NewGame("crate")
	require.NoError(t, err)
	_, err = game.Guess("slate")
	require.NoError(t, err)
	_, err = game.Guess("crate")
	require.NoError(t, err)
	assert.Equal(t, []Round{
		{Guess: "slate", Clues: clues(t, "rrggg")},
		{Guess: "crate", Clues: clues(t, "ggggg")},
	}, game.History())
}

func TestWordLengthMismatch(t *testing.T) {
	_, err := NewGame("cat")
	assert.ErrorIs(t, err, ErrWordLengthMismatch)

	game, err := NewGame("crane")
	require.NoError(t, err)
	_, err = game.Guess("cranes")
	assert.ErrorIs(t, err, ErrWordLengthMismatch)
	_, err = game.Guess("café")
	assert.ErrorIs(t, err, ErrWordLengthMismatch)
	assert.Equal(t, 0, game.Round())

	_, err = NewGame("café")
	assert.ErrorIs(t, err, ErrWordLengthMismatch)
	_, err = NewGame("crème")
	assert.ErrorIs(t, err, ErrWordLengthMismatch)
}

func TestPickRandomlyFrom(t *testing.T) {
	lex := loadTestLexicon(t)
	pick := func(seed uint64) []string {
		rng := rand.New(rand.NewPCG(seed, seed))
		var targets []string
		for range 20 {
			game, err := PickRandomlyFrom(lex, rng, SimplifiedClues)
			require.NoError(t, err)
			_, ok := lex.Index(game.Target())
			require.True(t, ok)
			targets = append(targets, game.Target())
		}
		return targets
	}
	assert.Equal(t, pick(42), pick(42))

	_, err := PickRandomlyFrom(NewLexicon(nil), rand.New(rand.NewPCG(1, 1)), SimplifiedClues)
	assert.ErrorIs(t, err, ErrEmptyLexicon)
}
