package main

import (
	"io"
	"os"

	"github.com/hupe1980/vecdist/codec"
)

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInput opens path (stdin for "" or "-") and wraps it with the
// decompressor its extension implies.
func openInput(path string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if path == "" || path == "-" {
		return stdin, multiCloser{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := codec.NewReader(f, codec.CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return r, multiCloser{r, f}, nil
}

// createOutput creates path (stdout for "" or "-") and wraps it with the
// compressor its extension implies. The closer flushes the compressor
// before closing the file.
func createOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return stdout, multiCloser{}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w, err := codec.NewWriter(f, codec.CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return w, multiCloser{w, f}, nil
}
