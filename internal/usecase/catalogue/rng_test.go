package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand_FoldsSeed(t *testing.T) {
	assert.Equal(t, uint32(2166136261), NewRand("").state)
	assert.Equal(t, uint32(2237694710), NewRand("catalogue").state)
}

func TestRand_KnownSequence(t *testing.T) {
	r := NewRand("catalogue")

	assert.InDelta(t, 0.19920380623079836, r.Float64(), 1e-12)
	assert.InDelta(t, 0.5961875994689763, r.Float64(), 1e-12)
	assert.InDelta(t, 0.4528463815804571, r.Float64(), 1e-12)
}

func TestRand_Reproducible(t *testing.T) {
	a, b := NewRand("pinned"), NewRand("pinned")
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRand_Range(t *testing.T) {
	r := NewRand("range")
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}
