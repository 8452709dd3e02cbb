package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// MaxLineSize bounds a single encoded vector. 1M float32 values at full
// precision fit comfortably.
const MaxLineSize = 64 << 20

// VectorReader reads one vector per line. Blank lines are skipped.
type VectorReader struct {
	codec   Codec
	scanner *bufio.Scanner
	line    int
}

// NewVectorReader returns a reader decoding with c (Default if nil).
func NewVectorReader(r io.Reader, c Codec) *VectorReader {
	if c == nil {
		c = Default
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &VectorReader{codec: c, scanner: s}
}

// Read returns the next vector, or io.EOF after the last one.
func (r *VectorReader) Read() ([]float32, error) {
	for r.scanner.Scan() {
		r.line++
		data := bytes.TrimSpace(r.scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var vec []float32
		if err := r.codec.Unmarshal(data, &vec); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return vec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line+1, err)
	}
	return nil, io.EOF
}

// ReadAll reads vectors until EOF.
func (r *VectorReader) ReadAll() ([][]float32, error) {
	var out [][]float32
	for {
		vec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
}

// Line returns the 1-based line number of the last vector returned by Read.
func (r *VectorReader) Line() int {
	return r.line
}

// VectorWriter writes one vector per line. Call Flush when done.
type VectorWriter struct {
	codec Codec
	w     *bufio.Writer
}

// NewVectorWriter returns a writer encoding with c (Default if nil).
func NewVectorWriter(w io.Writer, c Codec) *VectorWriter {
	if c == nil {
		c = Default
	}
	return &VectorWriter{codec: c, w: bufio.NewWriter(w)}
}

// Write encodes vec followed by a newline.
func (w *VectorWriter) Write(vec []float32) error {
	if vec == nil {
		vec = []float32{}
	}
	b, err := w.codec.Marshal(vec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *VectorWriter) Flush() error {
	return w.w.Flush()
}
