package stream

import (
	"io"
)

// CloseReader closes r and ignores any error. A nil r is a no-op.
// Use it in deferred cleanup where a close error must not hide the error being returned.
func CloseReader(r io.ReadCloser) {
	closeQuietly(r)
}

// CloseWriter closes w and ignores any error. A nil w is a no-op.
// Nothing is flushed before closing.
func CloseWriter(w io.WriteCloser) {
	closeQuietly(w)
}

func CloseRuneReader(r RuneReadCloser) {
	closeQuietly(r)
}

func CloseRuneWriter(w RuneWriteCloser) {
	closeQuietly(w)
}

// closeQuietly never fails, a Close that panics (e.g. on a typed nil pointer) is recovered too.
func closeQuietly(c io.Closer) {
	if c == nil {
		return
	}
	defer func() {
		// ignore
		_ = recover()
	}()
	_ = c.Close()
}
