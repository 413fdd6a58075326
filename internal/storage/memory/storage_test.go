package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	memory *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.memory = New()
	s.Storage = s.memory
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestSavePlayerCopiesInput() {
	player := model.NewPlayer(1, "Ana", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.memory.SavePlayer(s.Ctx, player))

	player.Name = "Mutated"

	retrieved, err := s.memory.GetPlayer(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal("Ana", retrieved.Name)
}

func (s *StorageSuite) TestLen() {
	s.Equal(0, s.memory.Len())
	_ = s.memory.SavePlayer(s.Ctx, model.NewPlayer(1, "Ana", time.Now()))
	_ = s.memory.SavePlayer(s.Ctx, model.NewPlayer(2, "Bea", time.Now()))
	s.Equal(2, s.memory.Len())
}
