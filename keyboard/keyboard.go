// Package keyboard reads single values typed on the console.
//
// Every getter consumes exactly one line, the value ends with ENTER.
// Lines end at "\n", "\r" or "\r\n".
package keyboard

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xuanswe/streamkit/internal/support"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

type Keyboard struct {
	lines  *support.LineReader
	logger *zerolog.Logger
}

type Option func(k *Keyboard)

// WithLogger replaces the global logger used to report read failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(k *Keyboard) {
		k.logger = &logger
	}
}

// New returns a Keyboard reading lines from r.
// Lines buffered ahead of the current one stay in the Keyboard, so r should
// not be read elsewhere while the Keyboard is in use.
func New(r io.Reader, opts ...Option) *Keyboard {
	k := &Keyboard{lines: support.NewLineReader(r)}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

var stdin = New(os.Stdin)

// Integer reads a line from stdin as a base 10 int.
func Integer() (int, error) { return stdin.Integer() }

// Float reads a line from stdin as a float32.
func Float() (float32, error) { return stdin.Float() }

// Double reads a line from stdin as a float64.
func Double() (float64, error) { return stdin.Double() }

// Char reads a line from stdin and returns its first character.
func Char() (rune, error) { return stdin.Char() }

// String reads a line from stdin, ok is false when there was none.
func String() (string, bool) { return stdin.String() }

// Integer parses the next line as a base 10 integer in the 32-bit range.
// The line must hold nothing but the number, surrounding spaces are rejected.
func (k *Keyboard) Integer() (int, error) {
	line, ok := k.readLine()
	if !ok {
		return 0, &ParseError{Func: "Integer", Err: ErrNoInput}
	}

	value, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, &ParseError{Func: "Integer", Input: line, Err: numErr(err)}
	}
	return int(value), nil
}

// Float parses the next line as a float32. Values too large for a float32 become ±Inf.
func (k *Keyboard) Float() (float32, error) {
	line, ok := k.readLine()
	if !ok {
		return 0, &ParseError{Func: "Float", Err: ErrNoInput}
	}

	value, err := strconv.ParseFloat(line, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Func: "Float", Input: line, Err: numErr(err)}
	}
	return float32(value), nil
}

// Double parses the next line as a float64. Values too large for a float64 become ±Inf.
func (k *Keyboard) Double() (float64, error) {
	line, ok := k.readLine()
	if !ok {
		return 0, &ParseError{Func: "Double", Err: ErrNoInput}
	}

	value, err := strconv.ParseFloat(line, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Func: "Double", Input: line, Err: numErr(err)}
	}
	return value, nil
}

// Char returns the first character of the next line. Anything after it is discarded.
func (k *Keyboard) Char() (rune, error) {
	line, ok := k.readLine()
	if !ok || len(line) == 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "input value is not a character: %q", line)
	}

	r, _ := utf8.DecodeRuneInString(line)
	return r, nil
}

// String returns the next line unmodified. ok is false when the input ended
// or could not be read, this is the only getter that doesn't fail on it.
func (k *Keyboard) String() (string, bool) {
	return k.readLine()
}

// readLine blocks until a full line is read. Read failures other than the
// end of input are logged and reported like the end of input.
func (k *Keyboard) readLine() (string, bool) {
	line, err := k.lines.ReadLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			k.log().Warn().Err(err).Msg("unable to read from input device!")
		}
		return "", false
	}
	return line, true
}

func (k *Keyboard) log() *zerolog.Logger {
	if k.logger != nil {
		return k.logger
	}
	return &log.Logger
}

// numErr unwraps the *strconv.NumError, ParseError already carries the function and input.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
