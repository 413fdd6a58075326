package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/numberguess/internal/model"
)

// ErrRecordTooLarge is returned when an encoded player exceeds MaxRecordSize
var ErrRecordTooLarge = errors.New("encoded player record exceeds size bound")

// MaxRecordSize is the upper bound on an encoded player record, in bytes
const MaxRecordSize = 1024

// EncodePlayer serializes a player for a byte-oriented backend
func EncodePlayer(player *model.Player) ([]byte, error) {
	data, err := json.Marshal(player)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxRecordSize {
		return nil, fmt.Errorf("%w: player %d is %d bytes", ErrRecordTooLarge, player.ID, len(data))
	}
	return data, nil
}

// DecodePlayer is the inverse of EncodePlayer
func DecodePlayer(data []byte) (*model.Player, error) {
	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &player, nil
}
