package redis

import (
	"fmt"

	"github.com/mcoot/numberguess/internal/model"
)

// playerKey returns the Redis key for a Player record
func (s *Storage) playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", s.cfg.KeyPrefix, id)
}

// counterKey returns the Redis key holding the next player id
func (s *Storage) counterKey() string {
	return fmt.Sprintf("%s:player_id_counter", s.cfg.KeyPrefix)
}
