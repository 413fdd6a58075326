package storage

import (
	"context"

	"github.com/mcoot/numberguess/internal/model"
)

// Storage is the durable key-value store behind the player service.
// It holds two regions: the player id counter and the id -> player record map.
type Storage interface {
	// NextPlayerID returns the current counter value and advances the counter by one.
	// A returned id is never handed out again, even across restarts of a durable backend.
	NextPlayerID(ctx context.Context) (model.PlayerID, error)

	// SavePlayer inserts or replaces the record keyed by player.ID
	SavePlayer(ctx context.Context, player *model.Player) error

	// GetPlayer returns model.ErrPlayerNotFound when no record exists
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// DeletePlayer removes the record and returns its prior value,
	// or model.ErrPlayerNotFound when no record exists
	DeletePlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Close releases any connections held by the backend
	Close() error
}
