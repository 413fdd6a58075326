package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	p := NewPlayer(3, "Ana", now)

	assert.Equal(t, PlayerID(3), p.ID)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, uint64(0), p.Score)
	assert.Equal(t, uint64(0), p.SecretNumber)
	assert.False(t, p.RoundStarted)
	assert.Equal(t, MaxAttempts, p.AttemptsLeft)
	assert.Equal(t, now, p.CreatedAt)
	assert.Nil(t, p.UpdatedAt)
}

func TestCloneDoesNotShareUpdatedAt(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	p := NewPlayer(1, "Ana", now)
	p.Touch(now)

	c := p.Clone()
	c.Touch(now.Add(time.Hour))

	assert.Equal(t, now, *p.UpdatedAt)
	assert.Equal(t, now.Add(time.Hour), *c.UpdatedAt)
}

func TestErrorsMatchSentinels(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("A player with id=%d not found", 4))
	assert.True(t, errors.Is(err, ErrPlayerNotFound))
	assert.False(t, errors.Is(err, ErrGameOver))
	assert.Contains(t, err.Error(), "id=4")

	var gameOver error = &GameOverError{ID: 9}
	assert.True(t, errors.Is(gameOver, ErrGameOver))
	assert.False(t, errors.Is(gameOver, ErrPlayerNotFound))
	assert.Contains(t, gameOver.Error(), "id=9")
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Ana", false},
		{"multibyte", "Zoë 🎲", false},
		{"longest allowed", strings.Repeat("a", MaxNameLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"invalid utf8", "Ana\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}
