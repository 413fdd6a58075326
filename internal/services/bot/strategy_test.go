package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numberguess/internal/dependencies/mocks"
	"github.com/mcoot/numberguess/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
}

func (s *StrategySuite) TestBisect_Midpoint() {
	strategy := bot.NewBisectStrategy()

	s.Equal(uint64(50), strategy.ChooseGuess(0, 100))
	s.Equal(uint64(75), strategy.ChooseGuess(51, 100))
	s.Equal(uint64(7), strategy.ChooseGuess(7, 7))
	s.Equal(uint64(3), strategy.ChooseGuess(3, 4))
}

func (s *StrategySuite) TestRandom_OffsetsFromLowerBound() {
	strategy := bot.NewRandomStrategy(s.mockRandom)

	s.mockRandom.QueueIntn(0, 9)
	s.Equal(uint64(20), strategy.ChooseGuess(20, 29))
	s.Equal(uint64(29), strategy.ChooseGuess(20, 29))

	// Intn is asked for the size of the inclusive range
	s.Equal([]int{10, 10}, s.mockRandom.Bounds)
}
