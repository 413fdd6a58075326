package bot

// BisectStrategy always guesses the midpoint of the remaining range.
// Seven attempts cover 0..100, so it wins every round it starts fresh.
type BisectStrategy struct{}

// NewBisectStrategy creates a new BisectStrategy
func NewBisectStrategy() *BisectStrategy {
	return &BisectStrategy{}
}

// ChooseGuess returns the midpoint of [lo, hi]
func (s *BisectStrategy) ChooseGuess(lo, hi uint64) uint64 {
	return lo + (hi-lo)/2
}
