package model

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Round constants
const (
	MaxAttempts     uint64 = 7   // Attempts granted at the start of every round
	WinPoints       uint64 = 10  // Score awarded for a correct guess
	MaxSecretNumber uint64 = 100 // Secrets are drawn from [0, MaxSecretNumber]
	MaxNameLength          = 128 // Longest accepted player name, in bytes; keeps records under the storage size bound
)

// PlayerID uniquely identifies a player. IDs are allocated from a counter and never reused.
type PlayerID uint64

// Player is the stored record for a game participant
type Player struct {
	ID           PlayerID   `json:"id"`
	Name         string     `json:"name"`
	Score        uint64     `json:"score"`
	SecretNumber uint64     `json:"secret_number"`
	RoundStarted bool       `json:"round_started"` // false until the first guess draws a secret
	AttemptsLeft uint64     `json:"attempts_left"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ValidateName rejects names that would not survive storage unchanged:
// empty, longer than MaxNameLength bytes, or not valid UTF-8
func ValidateName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Msg: "name is required"}
	case len(name) > MaxNameLength:
		return &ValidationError{Msg: fmt.Sprintf("name must be at most %d bytes", MaxNameLength)}
	case !utf8.ValidString(name):
		return &ValidationError{Msg: "name must be valid UTF-8"}
	}
	return nil
}

// NewPlayer builds a fresh player with no round in progress
func NewPlayer(id PlayerID, name string, now time.Time) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		AttemptsLeft: MaxAttempts,
		CreatedAt:    now,
	}
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

// Touch records a mutation at the given time
func (p *Player) Touch(now time.Time) {
	p.UpdatedAt = &now
}
