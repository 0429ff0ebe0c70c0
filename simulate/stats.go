package simulate

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/powellquiring/freqwordle/wordle"
)

// Stats tallies the outcome of a simulation.
type Stats struct {
	Seed   uint64
	Won    int
	Lost   int
	Failed int
	// Rounds[n] is the number of games won in n rounds.
	Rounds map[int]int
}

func NewStats(seed uint64) *Stats {
	return &Stats{Seed: seed, Rounds: make(map[int]int)}
}

func (s *Stats) Add(trial Trial) {
	switch {
	case trial.Failed:
		s.Failed++
	case trial.Status == wordle.Won:
		s.Won++
		s.Rounds[trial.Rounds]++
	default:
		s.Lost++
	}
}

func (s *Stats) Total() int {
	return s.Won + s.Lost + s.Failed
}

// WinRate is the percentage of games won.
func (s *Stats) WinRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return 100 * float64(s.Won) / float64(s.Total())
}

// AverageRounds is the mean number of rounds over the games that were won.
func (s *Stats) AverageRounds() float64 {
	if s.Won == 0 {
		return 0
	}
	sum := 0
	for rounds, count := range s.Rounds {
		sum += rounds * count
	}
	return float64(sum) / float64(s.Won)
}

// Log writes the summary lines of a simulation.
func (s *Stats) Log(log zerolog.Logger) {
	log.Info().
		Int("won", s.Won).
		Int("lost", s.Lost).
		Int("failed", s.Failed).
		Str("win_rate", fmt.Sprintf("%.2f%%", s.WinRate())).
		Str("avg_rounds", fmt.Sprintf("%.2f", s.AverageRounds())).
		Msg("simulation finished")

	keys := make([]int, 0, len(s.Rounds))
	for k := range s.Rounds {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, rounds := range keys {
		log.Debug().Int("rounds", rounds).Int("games", s.Rounds[rounds]).Msg("won in")
	}
}
