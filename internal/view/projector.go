// Package view maps stored players to the shape callers are allowed to see.
package view

import "github.com/mcoot/numberguess/internal/model"

// PublicPlayer is the externally visible subset of a player. It never carries the
// secret number or timestamps.
type PublicPlayer struct {
	ID           model.PlayerID `json:"id"`
	Name         string         `json:"name"`
	Score        uint64         `json:"score"`
	AttemptsLeft uint64         `json:"attempts_left"`
	Clue         string         `json:"clue"`
}

// Project builds the public view of p. clue is empty when no guess was made.
func Project(p *model.Player, clue string) PublicPlayer {
	return PublicPlayer{
		ID:           p.ID,
		Name:         p.Name,
		Score:        p.Score,
		AttemptsLeft: p.AttemptsLeft,
		Clue:         clue,
	}
}
