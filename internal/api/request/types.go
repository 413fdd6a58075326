package request

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// SetScoreRequest is the request body for overwriting a player's score
type SetScoreRequest struct {
	Score *uint64 `json:"score"`
}

// AutoplayRequest is the request body for letting a bot play a round.
// An empty strategy selects the default.
type AutoplayRequest struct {
	Strategy string `json:"strategy"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Guess *uint64 `json:"guess"`
}
