package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	vec := []float32{1.5, -2.25, 0, 3}

	std := MustMarshal(JSON{}, vec)
	fast := MustMarshal(GoJSON{}, vec)
	assert.JSONEq(t, string(std), string(fast))

	var out []float32
	require.NoError(t, GoJSON{}.Unmarshal(std, &out))
	assert.Equal(t, vec, out)
}

func TestDefaultCodecReadsVectorLines(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())

	var buf bytes.Buffer
	w := NewVectorWriter(&buf, nil)
	require.NoError(t, w.Write([]float32{0.1, -7, 1e-3}))
	require.NoError(t, w.Flush())
	assert.JSONEq(t, string(MustMarshal(JSON{}, []float32{0.1, -7, 1e-3})), strings.TrimSuffix(buf.String(), "\n"))

	r := NewVectorReader(&buf, nil)
	vec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, -7, 1e-3}, vec)
}

func TestVectorReader(t *testing.T) {
	input := "[1,2,3]\n\n  [4.5, 5, 6]  \n[]\n"

	r := NewVectorReader(strings.NewReader(input), nil)

	vec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, vec)
	assert.Equal(t, 1, r.Line())

	vec, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, []float32{4.5, 5, 6}, vec)
	assert.Equal(t, 3, r.Line())

	vec, err = r.Read()
	require.NoError(t, err)
	assert.Empty(t, vec)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestVectorReaderBadLine(t *testing.T) {
	r := NewVectorReader(strings.NewReader("[1,2]\n{nope}\n"), JSON{})

	_, err := r.ReadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestVectorWriterRoundTrip(t *testing.T) {
	vectors := [][]float32{{1, 2, 3}, {0.25, -1}, nil}

	var buf bytes.Buffer
	w := NewVectorWriter(&buf, nil)
	for _, v := range vectors {
		require.NoError(t, w.Write(v))
	}
	require.NoError(t, w.Flush())

	assert.Equal(t, "[1,2,3]\n[0.25,-1]\n[]\n", buf.String())

	got, err := NewVectorReader(&buf, nil).ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, vectors[0], got[0])
	assert.Equal(t, vectors[1], got[1])
	assert.Empty(t, got[2])
}
