package game

import (
	"time"

	"github.com/mcoot/numberguess/internal/dependencies/random"
	"github.com/mcoot/numberguess/internal/model"
)

// Clue messages returned after a guess
const (
	ClueWon        = "Congratulations! You've guessed the number! A new game has started."
	ClueHigher     = "The secret number is higher than your guess."
	ClueLower      = "The secret number is lower than your guess."
	ClueOutOfTries = " No attempts left, the round is over. Your next guess starts a new round."
)

// RoundState is the phase of a player's round, derived from the player's fields
type RoundState string

const (
	StateUninitialized RoundState = "uninitialized" // No secret drawn yet
	StateInRound       RoundState = "in_round"      // Secret drawn, attempts remain
	StateExhausted     RoundState = "exhausted"     // Secret drawn, no attempts remain
)

// Result is what a single guess did to the round
type Result string

const (
	ResultHigher   Result = "higher"
	ResultLower    Result = "lower"
	ResultWon      Result = "won"
	ResultGameOver Result = "game_over" // Guess was not evaluated; the round was reset
)

// Outcome is the result of applying one guess
type Outcome struct {
	Player *model.Player // Updated copy; persist it regardless of Result
	Result Result
	Clue   string
}

// Engine applies guesses to a player's round
type Engine struct {
	random random.Random
}

// NewEngine creates an engine drawing secrets from rnd
func NewEngine(rnd random.Random) *Engine {
	return &Engine{random: rnd}
}

// State reports the round phase of p
func (e *Engine) State(p *model.Player) RoundState {
	switch {
	case !p.RoundStarted:
		return StateUninitialized
	case p.AttemptsLeft == 0:
		return StateExhausted
	default:
		return StateInRound
	}
}

// ApplyGuess evaluates guess against p's round. p itself is not modified.
//
// An uninitialized round draws its secret first and then evaluates the same guess.
// An exhausted round is reset without evaluating the guess and reports ResultGameOver.
func (e *Engine) ApplyGuess(p *model.Player, guess uint64, now time.Time) Outcome {
	next := p.Clone()

	if e.State(next) == StateUninitialized {
		e.startRound(next)
	}

	if e.State(next) == StateExhausted {
		e.startRound(next)
		next.Touch(now)
		return Outcome{Player: next, Result: ResultGameOver}
	}

	if guess == next.SecretNumber {
		next.Score += model.WinPoints
		e.startRound(next)
		next.Touch(now)
		return Outcome{Player: next, Result: ResultWon, Clue: ClueWon}
	}

	next.AttemptsLeft--
	next.Touch(now)

	out := Outcome{Player: next, Result: ResultLower, Clue: ClueLower}
	if guess < next.SecretNumber {
		out.Result = ResultHigher
		out.Clue = ClueHigher
	}
	if next.AttemptsLeft == 0 {
		out.Clue += ClueOutOfTries
	}
	return out
}

// startRound draws a new secret in [0, MaxSecretNumber] and refills attempts
func (e *Engine) startRound(p *model.Player) {
	p.SecretNumber = uint64(e.random.Intn(int(model.MaxSecretNumber) + 1))
	p.AttemptsLeft = model.MaxAttempts
	p.RoundStarted = true
}
