package stream

import (
	"bufio"
	"github.com/pkg/errors"
	"github.com/xuanswe/streamkit/internal/support"
	"io"
)

// ErrNilArgument is returned by the Decorate functions when given a nil stream.
var ErrNilArgument = errors.New("nil argument")

// DecorateReader returns r wrapped in a *bufio.Reader of BufferSize.
// If r already is a *bufio.Reader it is returned unchanged.
func DecorateReader(r io.Reader) (*bufio.Reader, error) {
	if r == nil {
		return nil, errors.Wrap(ErrNilArgument, "parameter 'r' must not be nil")
	}
	return support.EnsureBufferedReaderSize(r, BufferSize), nil
}

// DecorateWriter returns w wrapped in a *bufio.Writer of BufferSize.
// If w already is a *bufio.Writer it is returned unchanged.
// Data written to the result reaches w only once it is flushed.
func DecorateWriter(w io.Writer) (*bufio.Writer, error) {
	if w == nil {
		return nil, errors.Wrap(ErrNilArgument, "parameter 'w' must not be nil")
	}
	return support.EnsureBufferedWriterSize(w, BufferSize), nil
}

func DecorateRuneReader(r RuneReader) (*bufio.Reader, error) {
	if r == nil {
		return nil, errors.Wrap(ErrNilArgument, "parameter 'r' must not be nil")
	}
	return support.EnsureBufferedReaderSize(r, BufferSize), nil
}

func DecorateRuneWriter(w RuneWriter) (*bufio.Writer, error) {
	if w == nil {
		return nil, errors.Wrap(ErrNilArgument, "parameter 'w' must not be nil")
	}
	return support.EnsureBufferedWriterSize(w, BufferSize), nil
}
