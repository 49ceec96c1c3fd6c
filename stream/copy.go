package stream

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"unicode/utf8"
)

// CopyBytewise copies r to w one byte at a time until r returns io.EOF, then flushes w.
// It returns the number of bytes copied and the first read or write error.
func CopyBytewise(w io.Writer, r io.Reader) (int64, error) {
	var written int64
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			if _, werr := w.Write(b[:]); werr != nil {
				return written, errors.Wrap(werr, "failed to write byte")
			}
			written++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return written, errors.Wrap(err, "failed to read byte")
		}
	}

	if err := flush(w); err != nil {
		return written, errors.Wrap(err, "failed to flush")
	}
	return written, nil
}

// CopyBuffered wraps r and w with buffers of BufferSize before copying them bytewise.
// The buffer of w is flushed before returning, followed by w itself if it is a Flusher.
func CopyBuffered(w io.Writer, r io.Reader) (int64, error) {
	br, err := DecorateReader(r)
	if err != nil {
		return 0, err
	}
	bw, err := DecorateWriter(w)
	if err != nil {
		return 0, err
	}

	written, err := CopyBytewise(bw, br)
	if err != nil {
		return written, err
	}
	if _, ok := w.(*bufio.Writer); !ok {
		if err := flush(w); err != nil {
			return written, errors.Wrap(err, "failed to flush")
		}
	}
	return written, nil
}

// CopyOwnBuffering copies r to w through a single buffer of BufferSize, then flushes w.
func CopyOwnBuffering(w io.Writer, r io.Reader) (int64, error) {
	var written int64
	buf := make([]byte, BufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, errors.Wrap(werr, "failed to write")
			}
			if wn != n {
				return written, errors.Wrap(io.ErrShortWrite, "failed to write")
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return written, errors.Wrap(err, "failed to read")
		}
	}

	if err := flush(w); err != nil {
		return written, errors.Wrap(err, "failed to flush")
	}
	return written, nil
}

// CopyRunewise copies r to w one rune at a time until r returns io.EOF, then flushes w.
// It returns the number of runes copied.
func CopyRunewise(w RuneWriter, r RuneReader) (int64, error) {
	var written int64
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return written, errors.Wrap(err, "failed to read rune")
		}
		if _, err := w.WriteRune(c); err != nil {
			return written, errors.Wrap(err, "failed to write rune")
		}
		written++
	}

	if err := flush(w); err != nil {
		return written, errors.Wrap(err, "failed to flush")
	}
	return written, nil
}

// CopyRunesBuffered is the character counterpart of CopyBuffered.
func CopyRunesBuffered(w RuneWriter, r RuneReader) (int64, error) {
	br, err := DecorateRuneReader(r)
	if err != nil {
		return 0, err
	}
	bw, err := DecorateRuneWriter(w)
	if err != nil {
		return 0, err
	}

	written, err := CopyRunewise(bw, br)
	if err != nil {
		return written, err
	}
	if _, ok := w.(*bufio.Writer); !ok {
		if err := flush(w); err != nil {
			return written, errors.Wrap(err, "failed to flush")
		}
	}
	return written, nil
}

// CopyRunesOwnBuffering moves up to BufferSize runes at a time from r to w through one reused block.
// A round blocks only for its first rune and then takes what r can return without blocking,
// so data that is already available reaches w while r is still open.
func CopyRunesOwnBuffering(w RuneWriter, r RuneReader) (int64, error) {
	var written int64
	buf := make([]byte, 0, BufferSize*utf8.UTFMax)
	for {
		buf = buf[:0]
		n := 0
		c, _, err := r.ReadRune()
		for err == nil {
			buf = utf8.AppendRune(buf, c)
			n++
			if n == BufferSize || !runeReady(r) {
				break
			}
			c, _, err = r.ReadRune()
		}

		if n > 0 {
			if _, werr := w.Write(buf); werr != nil {
				return written, errors.Wrap(werr, "failed to write runes")
			}
			written += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return written, errors.Wrap(err, "failed to read runes")
		}
	}

	if err := flush(w); err != nil {
		return written, errors.Wrap(err, "failed to flush")
	}
	return written, nil
}

// runeReady reports whether r holds a complete rune it can return without blocking.
// Sources that can't tell are treated as empty.
func runeReady(r io.RuneReader) bool {
	switch src := r.(type) {
	case *bufio.Reader:
		n := src.Buffered()
		if n == 0 {
			return false
		}
		p, _ := src.Peek(n)
		return utf8.FullRune(p)
	case interface{ Len() int }:
		return src.Len() > 0
	}
	return false
}
