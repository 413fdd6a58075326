package mocks

import (
	"github.com/mcoot/numberguess/internal/dependencies/random"
)

// MockRandom returns queued values from Intn, then 0 once the queue is drained
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	// Bounds records the n passed to each Intn call
	Bounds []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Intn(n int) int {
	r.Bounds = append(r.Bounds, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Calls returns how many times Intn has been called
func (r *MockRandom) Calls() int {
	return len(r.Bounds)
}
