package stream_test

import (
	"bytes"
	"github.com/xuanswe/streamkit/internal/support"
	"math/rand"
	"os"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMain(m *testing.M) {
	support.SetupLogger()
	os.Exit(m.Run())
}

// flushRecorder is a sink that counts how often it was flushed.
type flushRecorder struct {
	bytes.Buffer
	flushes int
}

func (f *flushRecorder) Flush() error {
	f.flushes++
	return nil
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func (f failingWriter) WriteRune(r rune) (int, error) {
	return 0, f.err
}

type closeRecorder struct {
	*bytes.Buffer
	closed bool
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.err
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(b)
	return b
}

// chanWriter hands every write over to the test goroutine.
type chanWriter chan string

func (c chanWriter) Write(p []byte) (int, error) {
	c <- string(p)
	return len(p), nil
}

func (c chanWriter) WriteRune(r rune) (int, error) {
	c <- string(r)
	return utf8.RuneLen(r), nil
}

// writeCounter counts the Write calls reaching it.
type writeCounter struct {
	strings.Builder
	writes int
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.writes++
	return w.Builder.Write(p)
}
