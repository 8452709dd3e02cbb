package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	for _, vec := range v {
		for _, x := range vec {
			assert.GreaterOrEqual(t, x, float32(0.0))
			assert.Less(t, x, float32(1.0))
		}
	}
}

func TestUniformRangeVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRangeVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	for _, vec := range v {
		for _, x := range vec {
			assert.GreaterOrEqual(t, x, float32(-1.0))
			assert.Less(t, x, float32(1.0))
		}
	}
}

func TestRangeVectors(t *testing.T) {
	rng := NewRNG(1)

	v := rng.RangeVectors(4, 9, 10, 20)

	assert.Equal(t, 4, len(v))
	for _, vec := range v {
		assert.Equal(t, 9, len(vec))
		assert.Equal(t, 9, cap(vec))
		for _, x := range vec {
			assert.GreaterOrEqual(t, x, float32(10))
			assert.Less(t, x, float32(20))
		}
	}
}

func TestGaussianVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.GaussianVectors(3, 16)

	assert.Equal(t, 3, len(v))
	assert.Equal(t, 16, len(v[2]))
}

func TestReset(t *testing.T) {
	rng := NewRNG(99)
	first := rng.UniformVectors(2, 4)

	rng.Reset()
	second := rng.UniformVectors(2, 4)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(99), rng.Seed())
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(3)
	dst := make([]float32, 64)

	rng.FillUniformRange(dst, -2, -1)

	for _, x := range dst {
		assert.GreaterOrEqual(t, x, float32(-2))
		assert.Less(t, x, float32(-1))
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten([][]float32{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, flat)
	assert.Empty(t, Flatten(nil))
}
