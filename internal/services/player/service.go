package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/numberguess/internal/dependencies/clock"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/game"
	"github.com/mcoot/numberguess/internal/storage"
	"github.com/mcoot/numberguess/internal/view"
)

// Service exposes the player operations. Each call holds the service lock for its
// whole read-modify-write, so no caller ever observes a partial update.
type Service struct {
	mu sync.Mutex

	storage storage.Storage
	engine  *game.Engine
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, engine *game.Engine, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		engine:  engine,
		clock:   clock,
		logger:  logger,
	}
}

// Create allocates a fresh id and stores a new player with no round in progress.
// Invalid names fail with a *model.ValidationError before an id is allocated.
func (s *Service) Create(ctx context.Context, name string) (*view.PublicPlayer, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.storage.NextPlayerID(ctx)
	if err != nil {
		s.logger.Error("failed to allocate player id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("allocate player id: %w", err)
	}

	player := model.NewPlayer(id, name, s.clock.Now())
	if err := s.save(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Uint64("player_id", uint64(id)),
		slog.String("name", name),
	)

	pub := view.Project(player, "")
	return &pub, nil
}

// Get returns the public view of a player
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*view.PublicPlayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.load(ctx, id, "A player with id=%d not found")
	if err != nil {
		return nil, err
	}

	pub := view.Project(player, "")
	return &pub, nil
}

// SetScore overwrites the player's score
func (s *Service) SetScore(ctx context.Context, id model.PlayerID, score uint64) (*view.PublicPlayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.load(ctx, id, "Could not update score for player with id=%d. Player not found.")
	if err != nil {
		return nil, err
	}

	player.Score = score
	player.Touch(s.clock.Now())

	if err := s.save(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("score updated",
		slog.Uint64("player_id", uint64(id)),
		slog.Uint64("score", score),
	)

	pub := view.Project(player, "")
	return &pub, nil
}

// Delete removes the player and returns the full prior record, secret included.
// Callers must not expose the secret.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.storage.DeletePlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, model.NewNotFoundError("Could not delete player with id=%d. Player not found.", id)
		}
		s.logger.Error("failed to delete player",
			slog.Uint64("player_id", uint64(id)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("delete player %d: %w", id, err)
	}

	s.logger.Info("player deleted", slog.Uint64("player_id", uint64(id)))
	return player, nil
}

// Guess plays one guess in the player's round and persists the result.
// When the round had already run out of attempts it is reset, stored, and
// a *model.GameOverError is returned instead of a clue.
func (s *Service) Guess(ctx context.Context, id model.PlayerID, guess uint64) (*view.PublicPlayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.load(ctx, id, "Player with id=%d not found. No clue available.")
	if err != nil {
		return nil, err
	}

	out := s.engine.ApplyGuess(player, guess, s.clock.Now())
	if err := s.save(ctx, out.Player); err != nil {
		return nil, err
	}

	s.logger.Debug("guess applied",
		slog.Uint64("player_id", uint64(id)),
		slog.String("result", string(out.Result)),
		slog.Uint64("attempts_left", out.Player.AttemptsLeft),
	)

	switch out.Result {
	case game.ResultGameOver:
		s.logger.Info("round exhausted", slog.Uint64("player_id", uint64(id)))
		return nil, &model.GameOverError{ID: id}
	case game.ResultWon:
		s.logger.Info("round won",
			slog.Uint64("player_id", uint64(id)),
			slog.Uint64("score", out.Player.Score),
		)
	}

	pub := view.Project(out.Player, out.Clue)
	return &pub, nil
}

// load fetches a player, converting absence into a NotFoundError with the given message
func (s *Service) load(ctx context.Context, id model.PlayerID, notFoundFormat string) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, model.NewNotFoundError(notFoundFormat, id)
		}
		s.logger.Error("failed to load player",
			slog.Uint64("player_id", uint64(id)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("load player %d: %w", id, err)
	}
	return player, nil
}

func (s *Service) save(ctx context.Context, player *model.Player) error {
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.Uint64("player_id", uint64(player.ID)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save player %d: %w", player.ID, err)
	}
	return nil
}

// ServiceInterface is the set of operations exposed to entry points
type ServiceInterface interface {
	Create(ctx context.Context, name string) (*view.PublicPlayer, error)
	Get(ctx context.Context, id model.PlayerID) (*view.PublicPlayer, error)
	SetScore(ctx context.Context, id model.PlayerID, score uint64) (*view.PublicPlayer, error)
	Delete(ctx context.Context, id model.PlayerID) (*model.Player, error)
	Guess(ctx context.Context, id model.PlayerID, guess uint64) (*view.PublicPlayer, error)
}

var _ ServiceInterface = (*Service)(nil)
