package stream_test

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/xuanswe/streamkit/stream"
	"io"
	"testing"
)

func TestCloseNil(t *testing.T) {
	assert.NotPanics(t, func() {
		stream.CloseReader(nil)
		stream.CloseWriter(nil)
		stream.CloseRuneReader(nil)
		stream.CloseRuneWriter(nil)
	})
}

func TestCloseIgnoresErrors(t *testing.T) {
	tests := []struct {
		name  string
		close func(c *closeRecorder)
	}{
		{"Reader", func(c *closeRecorder) { stream.CloseReader(c) }},
		{"Writer", func(c *closeRecorder) { stream.CloseWriter(c) }},
		{"RuneReader", func(c *closeRecorder) { stream.CloseRuneReader(c) }},
		{"RuneWriter", func(c *closeRecorder) { stream.CloseRuneWriter(c) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, closeErr := range []error{nil, errors.New("close failed")} {
				c := &closeRecorder{Buffer: &bytes.Buffer{}, err: closeErr}

				assert.NotPanics(t, func() { tt.close(c) })
				assert.True(t, c.closed)
			}
		})
	}
}

// nilFile.Close dereferences its receiver, so it panics on a nil *nilFile.
type nilFile struct {
	closed bool
}

func (f *nilFile) Read(p []byte) (int, error)    { return 0, io.EOF }
func (f *nilFile) ReadRune() (rune, int, error)  { return 0, 0, io.EOF }
func (f *nilFile) Write(p []byte) (int, error)   { return len(p), nil }
func (f *nilFile) WriteRune(r rune) (int, error) { return 1, nil }

func (f *nilFile) Close() error {
	f.closed = true
	return nil
}

func TestCloseTypedNil(t *testing.T) {
	var f *nilFile

	assert.NotPanics(t, func() {
		stream.CloseReader(f)
		stream.CloseWriter(f)
		stream.CloseRuneReader(f)
		stream.CloseRuneWriter(f)
	})
}
