package memory

import (
	"context"
	"sync"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Nothing survives a restart; use it for tests and local development.
type Storage struct {
	mu sync.RWMutex

	nextID  model.PlayerID
	players map[model.PlayerID]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// NextPlayerID returns the counter value and advances it
func (s *Storage) NextPlayerID(ctx context.Context) (model.PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id, nil
}

// SavePlayer stores a copy of player, replacing any record with the same id
func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player.Clone()
	return nil
}

// GetPlayer returns a copy of the stored record
func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

// DeletePlayer removes the record and returns it
func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	delete(s.players, id)
	return player, nil
}

// Len returns the number of stored players
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// Close is a no-op; nothing is held open
func (s *Storage) Close() error {
	return nil
}
