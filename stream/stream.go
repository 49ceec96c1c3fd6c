// Package stream copies data between readers and writers and manages their buffering and closing.
//
// Byte streams are plain io.Reader and io.Writer values. Character streams
// carry runes and are described by RuneReader and RuneWriter. None of the
// functions close the streams they are given, except the Close helpers.
package stream

import (
	"io"
)

// BufferSize is the size of the buffers this package allocates, in bytes or runes.
const BufferSize = 8192

// RuneReader is a character source.
type RuneReader interface {
	io.Reader
	io.RuneReader
}

// RuneWriter is a character sink.
type RuneWriter interface {
	io.Writer
	WriteRune(r rune) (int, error)
}

type RuneReadCloser interface {
	RuneReader
	io.Closer
}

type RuneWriteCloser interface {
	RuneWriter
	io.Closer
}

// Flusher is implemented by sinks holding data that has not reached the underlying device yet.
// The copy functions flush such sinks once all data is written.
type Flusher interface {
	Flush() error
}

func flush(w any) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
