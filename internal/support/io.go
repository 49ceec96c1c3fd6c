package support

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
)

func EnsureBufferedReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	} else {
		return bufio.NewReader(r)
	}
}

// EnsureBufferedReaderSize is like EnsureBufferedReader, but a new reader gets a buffer of the given size.
// An existing *bufio.Reader is returned as is, whatever its size.
func EnsureBufferedReaderSize(r io.Reader, size int) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	} else {
		return bufio.NewReaderSize(r, size)
	}
}

// EnsureBufferedWriterSize returns w if it already is a *bufio.Writer, otherwise w wrapped with a buffer of the given size.
// An existing *bufio.Writer is returned as is, whatever its size.
func EnsureBufferedWriterSize(w io.Writer, size int) *bufio.Writer {
	if bw, ok := w.(*bufio.Writer); ok {
		return bw
	} else {
		return bufio.NewWriterSize(w, size)
	}
}

// LineReader reads lines ended by "\n", "\r" or "\r\n".
// It remembers a trailing "\r" so that a "\n" arriving with the next read is not taken for an empty line.
type LineReader struct {
	br     *bufio.Reader
	skipLF bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: EnsureBufferedReader(r)}
}

// ReadLine
// Reads the next line. The result doesn't contain the terminator.
// A last line without terminator is returned with a nil error, io.EOF is only returned
// when there is nothing left to read.
func (l *LineReader) ReadLine() (string, error) {
	if l == nil || l.br == nil {
		return "", errors.Errorf("nil reader")
	}

	var line []byte
	for {
		b, err := l.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		if l.skipLF {
			l.skipLF = false
			if b == '\n' {
				continue
			}
		}

		switch b {
		case '\r':
			l.skipLF = true
			return string(line), nil
		case '\n':
			return string(line), nil
		}
		line = append(line, b)
	}
}
