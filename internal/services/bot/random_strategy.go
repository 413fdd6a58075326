package bot

import (
	"github.com/mcoot/numberguess/internal/dependencies/random"
)

// RandomStrategy picks a uniformly random number within the remaining range
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseGuess returns a random value in [lo, hi]
func (s *RandomStrategy) ChooseGuess(lo, hi uint64) uint64 {
	return lo + uint64(s.random.Intn(int(hi-lo)+1))
}
