package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/game"
	"github.com/mcoot/numberguess/internal/services/player"
	"github.com/mcoot/numberguess/internal/view"
)

const (
	// DefaultStrategy is used when no strategy is named
	DefaultStrategy = "bisect"
	// MaxBotIterations is a safety limit for the Play loop
	MaxBotIterations = 2 * (model.MaxAttempts + 1)
)

// ActionType represents the outcome of a single bot guess
type ActionType string

const (
	ActionHigher     ActionType = "higher"
	ActionLower      ActionType = "lower"
	ActionWon        ActionType = "won"
	ActionOutOfTries ActionType = "out_of_tries"
	ActionGameOver   ActionType = "game_over"
)

// Action records one guess the bot made and how the round responded
type Action struct {
	Type  ActionType `json:"type"`
	Guess uint64     `json:"guess"`
	Clue  string     `json:"clue,omitempty"`
}

// Result is the full record of a Play call
type Result struct {
	Actions []Action           `json:"actions"`
	Player  *view.PublicPlayer `json:"player"`
}

// Service plays rounds on behalf of a player using a named strategy
type Service struct {
	players    player.ServiceInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(players player.ServiceInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		players:    players,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// Play guesses for the player until a round is won or runs out of attempts.
// An already exhausted round is reported as game over and play continues in
// the fresh round that replaces it.
func (s *Service) Play(ctx context.Context, id model.PlayerID, strategyName string) (*Result, error) {
	if strategyName == "" {
		strategyName = DefaultStrategy
	}
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategyName)
	}

	result := &Result{}
	lo, hi := uint64(0), uint64(model.MaxSecretNumber)

	for range MaxBotIterations {
		guess := strategy.ChooseGuess(lo, hi)

		pub, err := s.players.Guess(ctx, id, guess)
		if errors.Is(err, model.ErrGameOver) {
			result.Actions = append(result.Actions, Action{Type: ActionGameOver, Guess: guess})
			lo, hi = 0, model.MaxSecretNumber
			continue
		}
		if err != nil {
			return result, err
		}
		result.Player = pub

		action := Action{Type: classify(pub.Clue), Guess: guess, Clue: pub.Clue}
		result.Actions = append(result.Actions, action)

		switch action.Type {
		case ActionWon, ActionOutOfTries:
			s.logger.Info("bot round finished",
				slog.Uint64("player_id", uint64(id)),
				slog.String("strategy", strategyName),
				slog.String("outcome", string(action.Type)),
				slog.Int("guesses", len(result.Actions)),
			)
			return result, nil
		case ActionHigher:
			lo = guess + 1
		case ActionLower:
			if guess == 0 {
				lo, hi = 1, 0
			} else {
				hi = guess - 1
			}
		}

		// The secret moved under us, so the bounds no longer hold
		if lo > hi {
			lo, hi = 0, model.MaxSecretNumber
		}
	}

	return result, nil
}

// classify maps a clue back to the outcome that produced it
func classify(clue string) ActionType {
	switch {
	case clue == game.ClueWon:
		return ActionWon
	case strings.HasSuffix(clue, game.ClueOutOfTries):
		return ActionOutOfTries
	case strings.HasPrefix(clue, game.ClueHigher):
		return ActionHigher
	default:
		return ActionLower
	}
}
