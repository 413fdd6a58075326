package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numberguess/internal/dependencies/mocks"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/bot"
	"github.com/mcoot/numberguess/internal/services/game"
	"github.com/mcoot/numberguess/internal/services/player"
	"github.com/mcoot/numberguess/internal/storage/memory"
	"github.com/mcoot/numberguess/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom
	botRandom  *mocks.MockRandom
	players    *player.Service
	botService *bot.Service
	playerID   model.PlayerID
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	s.botRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	s.players = player.New(s.store, game.NewEngine(s.mockRandom), s.mockClock, logger)
	s.botService = bot.NewService(s.players, map[string]bot.Strategy{
		"bisect": bot.NewBisectStrategy(),
		"random": bot.NewRandomStrategy(s.botRandom),
	}, logger)

	pub, err := s.players.Create(s.ctx, "Ana")
	s.Require().NoError(err)
	s.playerID = pub.ID
}

func (s *ServiceSuite) guesses(result *bot.Result) []uint64 {
	out := make([]uint64, 0, len(result.Actions))
	for _, a := range result.Actions {
		out = append(out, a.Guess)
	}
	return out
}

func (s *ServiceSuite) TestPlay_BisectFindsSecret() {
	s.mockRandom.QueueIntn(37)

	result, err := s.botService.Play(s.ctx, s.playerID, "")
	s.Require().NoError(err)

	// 50 -> lower, 24 -> higher, 37 -> won
	s.Equal([]uint64{50, 24, 37}, s.guesses(result))
	s.Equal(bot.ActionLower, result.Actions[0].Type)
	s.Equal(bot.ActionHigher, result.Actions[1].Type)
	s.Equal(bot.ActionWon, result.Actions[2].Type)
	s.Equal(game.ClueWon, result.Actions[2].Clue)

	s.Require().NotNil(result.Player)
	s.Equal(model.WinPoints, result.Player.Score)
}

func (s *ServiceSuite) TestPlay_BisectWinsAtTheEdges() {
	for _, secret := range []int{0, 100} {
		s.SetupTest()
		s.mockRandom.QueueIntn(secret)

		result, err := s.botService.Play(s.ctx, s.playerID, "bisect")
		s.Require().NoError(err)

		last := result.Actions[len(result.Actions)-1]
		s.Equal(bot.ActionWon, last.Type, "secret %d", secret)
		s.Equal(uint64(secret), last.Guess)
		s.LessOrEqual(uint64(len(result.Actions)), model.MaxAttempts)
	}
}

func (s *ServiceSuite) TestPlay_RandomRunsOutOfTries() {
	s.mockRandom.QueueIntn(100)
	// Always offset 0 from the lower bound: 0, 1, 2, ...
	s.botRandom.QueueIntn(0, 0, 0, 0, 0, 0, 0)

	result, err := s.botService.Play(s.ctx, s.playerID, "random")
	s.Require().NoError(err)

	s.Equal([]uint64{0, 1, 2, 3, 4, 5, 6}, s.guesses(result))
	last := result.Actions[len(result.Actions)-1]
	s.Equal(bot.ActionOutOfTries, last.Type)
	s.Contains(last.Clue, game.ClueOutOfTries)
	s.Equal(uint64(0), result.Player.AttemptsLeft)

	// The exhausted round is left for the player to see
	stored, err := s.store.GetPlayer(s.ctx, s.playerID)
	s.Require().NoError(err)
	s.Equal(uint64(0), stored.AttemptsLeft)
}

func (s *ServiceSuite) TestPlay_ExhaustedRoundRestarts() {
	// Exhaust the first round by hand
	s.mockRandom.QueueIntn(90, 10)
	for i := 0; i < int(model.MaxAttempts); i++ {
		_, err := s.players.Guess(s.ctx, s.playerID, 1)
		s.Require().NoError(err)
	}

	result, err := s.botService.Play(s.ctx, s.playerID, "bisect")
	s.Require().NoError(err)

	s.Equal(bot.ActionGameOver, result.Actions[0].Type)
	last := result.Actions[len(result.Actions)-1]
	s.Equal(bot.ActionWon, last.Type)
	s.Equal(uint64(10), last.Guess)
}

func (s *ServiceSuite) TestPlay_UnknownStrategy() {
	_, err := s.botService.Play(s.ctx, s.playerID, "psychic")
	s.ErrorIs(err, model.ErrUnknownStrategy)
	s.Equal(0, s.mockRandom.Calls())
}

func (s *ServiceSuite) TestPlay_PlayerNotFound() {
	_, err := s.botService.Play(s.ctx, 99, "bisect")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
