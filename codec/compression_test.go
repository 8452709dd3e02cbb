package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionFromPath(t *testing.T) {
	tests := map[string]Compression{
		"vecs.jsonl":     CompressionNone,
		"vecs.jsonl.gz":  CompressionGzip,
		"vecs.jsonl.ZST": CompressionZSTD,
		"vecs.zstd":      CompressionZSTD,
		"vecs.lz4":       CompressionLZ4,
		"-":              CompressionNone,
	}
	for path, want := range tests {
		assert.Equal(t, want, CompressionFromPath(path), path)
	}
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "gzip", CompressionGzip.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "Unknown(42)", Compression(42).String())
}

func TestCompressionRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("[0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8,0.9]\n"), 200)

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZSTD, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, c)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != CompressionNone {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := NewReader(&buf, c)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, got)
		})
	}
}

func TestUnsupportedCompression(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil), Compression(9))
	assert.Error(t, err)

	_, err = NewWriter(io.Discard, Compression(9))
	assert.Error(t, err)
}
