package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISA(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "generic", Generic.String())
		assert.Equal(t, "portable", Portable.String())
		assert.Equal(t, "avx", AVX.String())
		assert.Equal(t, "unknown", ISA(99).String())
	})

	t.Run("BatchWidth", func(t *testing.T) {
		assert.Equal(t, 1, Generic.BatchWidth())
		assert.Equal(t, 8, Portable.BatchWidth())
		assert.Equal(t, 8, AVX.BatchWidth())
	})

	t.Run("ParseISA", func(t *testing.T) {
		for _, isa := range []ISA{Generic, Portable, AVX} {
			got, ok := ParseISA(isa.String())
			require.True(t, ok)
			assert.Equal(t, isa, got)
		}

		got, ok := ParseISA("  AVX ")
		assert.True(t, ok)
		assert.Equal(t, AVX, got)

		_, ok = ParseISA("neon")
		assert.False(t, ok)
	})
}

func TestSelectISA(t *testing.T) {
	best := selectBestISA()

	isa, overridden := selectISA("")
	assert.Equal(t, best, isa)
	assert.False(t, overridden)

	isa, overridden = selectISA("generic")
	assert.Equal(t, Generic, isa)
	assert.True(t, overridden)

	isa, overridden = selectISA("portable")
	assert.Equal(t, Portable, isa)
	assert.True(t, overridden)

	isa, overridden = selectISA("bogus")
	assert.Equal(t, best, isa)
	assert.False(t, overridden)

	if !isISAAvailable(AVX) {
		isa, overridden = selectISA("avx")
		assert.Equal(t, best, isa)
		assert.False(t, overridden)
	}
}

func TestAvailable(t *testing.T) {
	isas := Available()
	require.GreaterOrEqual(t, len(isas), 2)
	assert.Equal(t, Generic, isas[0])
	assert.Equal(t, Portable, isas[1])
	assert.Contains(t, isas, ActiveISA())
	assert.Equal(t, isISAAvailable(AVX), len(isas) == 3)
}

func TestKernelFor(t *testing.T) {
	_, err := KernelFor(ISA(99))
	assert.ErrorIs(t, err, ErrUnsupportedISA)

	if !isISAAvailable(AVX) {
		_, err = KernelFor(AVX)
		assert.ErrorIs(t, err, ErrUnsupportedISA)
	}

	k, err := KernelFor(Generic)
	require.NoError(t, err)
	assert.Equal(t, float32(27), k([]float32{1, 2, 3}, []float32{4, 5, 6}))
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, map[string]bool{"avx": HasAVX()}, Features())
}
