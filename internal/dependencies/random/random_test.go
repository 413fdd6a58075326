package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for i := 0; i < 500; i++ {
		v := r.Intn(101)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 101)
	}
}

func TestIntnNonPositive(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}
