package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numberguess/internal/model"
)

func TestEncodeDecodeKeepsAllFields(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	player := model.NewPlayer(42, "Ana", now)
	player.Score = 30
	player.SecretNumber = 0
	player.RoundStarted = true
	player.AttemptsLeft = 3
	player.Touch(now.Add(time.Minute))

	data, err := EncodePlayer(player)
	require.NoError(t, err)

	decoded, err := DecodePlayer(data)
	require.NoError(t, err)
	assert.Equal(t, player, decoded)
}

func TestEncodeRejectsOversizedRecord(t *testing.T) {
	player := model.NewPlayer(1, strings.Repeat("x", MaxRecordSize), time.Now())

	_, err := EncodePlayer(player)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestEncodeAcceptsLongestAllowedName(t *testing.T) {
	player := model.NewPlayer(^model.PlayerID(0), strings.Repeat("é", model.MaxNameLength/2), time.Now())
	player.Score = ^uint64(0)
	player.Touch(time.Now())

	_, err := EncodePlayer(player)
	assert.NoError(t, err)
}

func TestDecodeInvalidData(t *testing.T) {
	_, err := DecodePlayer([]byte("not json"))
	assert.Error(t, err)
}
