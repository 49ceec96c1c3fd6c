package stream

import (
	"github.com/pkg/errors"
	"io"
	"strconv"
	"strings"
)

// Strategy selects how Copy and CopyRunes move data.
type Strategy int

const (
	// Bytewise moves one unit per read and write. Slow, mostly useful as a baseline.
	Bytewise Strategy = iota
	// Buffered moves one unit at a time through buffering decorators.
	Buffered
	// OwnBuffering moves blocks of up to BufferSize units through a single buffer.
	OwnBuffering
)

var strategyNames = map[Strategy]string{
	Bytewise:     "bytewise",
	Buffered:     "buffered",
	OwnBuffering: "own-buffering",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// ParseStrategy returns the Strategy with the given name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown copy strategy %q", name)
}

// Copy copies r to w with the given strategy.
func Copy(s Strategy, w io.Writer, r io.Reader) (int64, error) {
	switch s {
	case Bytewise:
		return CopyBytewise(w, r)
	case Buffered:
		return CopyBuffered(w, r)
	case OwnBuffering:
		return CopyOwnBuffering(w, r)
	}
	return 0, errors.Errorf("unknown copy strategy %v", s)
}

// CopyRunes copies the characters of r to w with the given strategy.
func CopyRunes(s Strategy, w RuneWriter, r RuneReader) (int64, error) {
	switch s {
	case Bytewise:
		return CopyRunewise(w, r)
	case Buffered:
		return CopyRunesBuffered(w, r)
	case OwnBuffering:
		return CopyRunesOwnBuffering(w, r)
	}
	return 0, errors.Errorf("unknown copy strategy %v", s)
}
