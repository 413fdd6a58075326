// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Suite runs the storage contract against a backend. Embed it in a backend suite
// and set Storage in SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

func (s *Suite) newPlayer(id model.PlayerID, name string) *model.Player {
	return model.NewPlayer(id, name, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// Id counter tests

func (s *Suite) TestNextPlayerIDStartsAtZero() {
	id, err := s.Storage.NextPlayerID(s.Ctx)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(0), id)
}

func (s *Suite) TestNextPlayerIDIsMonotonic() {
	var prev model.PlayerID
	for i := 0; i < 5; i++ {
		id, err := s.Storage.NextPlayerID(s.Ctx)
		s.Require().NoError(err)
		if i > 0 {
			s.Equal(prev+1, id)
		}
		prev = id
	}
}

func (s *Suite) TestNextPlayerIDNotAffectedByDelete() {
	id, err := s.Storage.NextPlayerID(s.Ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, s.newPlayer(id, "Ana")))

	_, err = s.Storage.DeletePlayer(s.Ctx, id)
	s.Require().NoError(err)

	next, err := s.Storage.NextPlayerID(s.Ctx)
	s.Require().NoError(err)
	s.Equal(id+1, next)
}

// Player record tests

func (s *Suite) TestSaveAndGetPlayer() {
	player := s.newPlayer(1, "Ana")
	player.Score = 20
	player.SecretNumber = 55
	player.RoundStarted = true
	player.AttemptsLeft = 4
	player.Touch(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, player))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Score, retrieved.Score)
	s.Equal(player.SecretNumber, retrieved.SecretNumber)
	s.Equal(player.RoundStarted, retrieved.RoundStarted)
	s.Equal(player.AttemptsLeft, retrieved.AttemptsLeft)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
	s.Require().NotNil(retrieved.UpdatedAt)
	s.True(player.UpdatedAt.Equal(*retrieved.UpdatedAt))
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.Storage.GetPlayer(s.Ctx, 404)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestSavePlayerReplaces() {
	_ = s.Storage.SavePlayer(s.Ctx, s.newPlayer(1, "Ana"))

	replacement := s.newPlayer(1, "Bea")
	replacement.Score = 10
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, replacement))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal("Bea", retrieved.Name)
	s.Equal(uint64(10), retrieved.Score)
}

func (s *Suite) TestGetPlayerDoesNotAliasStoredRecord() {
	_ = s.Storage.SavePlayer(s.Ctx, s.newPlayer(1, "Ana"))

	first, err := s.Storage.GetPlayer(s.Ctx, 1)
	s.Require().NoError(err)
	first.Score = 999

	second, err := s.Storage.GetPlayer(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(0), second.Score)
}

func (s *Suite) TestDeletePlayerReturnsPriorValue() {
	player := s.newPlayer(1, "Ana")
	player.SecretNumber = 77
	_ = s.Storage.SavePlayer(s.Ctx, player)

	deleted, err := s.Storage.DeletePlayer(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal("Ana", deleted.Name)
	s.Equal(uint64(77), deleted.SecretNumber)

	_, err = s.Storage.GetPlayer(s.Ctx, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestDeletePlayerNotFound() {
	_, err := s.Storage.DeletePlayer(s.Ctx, 404)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestPlayersAreKeyedIndependently() {
	_ = s.Storage.SavePlayer(s.Ctx, s.newPlayer(1, "Ana"))
	_ = s.Storage.SavePlayer(s.Ctx, s.newPlayer(2, "Bea"))

	_, err := s.Storage.DeletePlayer(s.Ctx, 1)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetPlayer(s.Ctx, 2)
	s.Require().NoError(err)
	s.Equal("Bea", retrieved.Name)
}
