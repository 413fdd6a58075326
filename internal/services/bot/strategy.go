package bot

// Strategy defines how a bot picks its next guess
type Strategy interface {
	// ChooseGuess selects a guess within the inclusive range the secret is known to lie in
	ChooseGuess(lo, hi uint64) uint64
}
