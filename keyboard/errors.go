package keyboard

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrNoInput is the cause of a ParseError when no line could be read,
	// either because the input ended or because reading it failed.
	ErrNoInput = errors.New("no input available")

	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError reports an input line that isn't a literal of the requested type.
type ParseError struct {
	Func  string // the getter that failed, e.g. "Integer"
	Input string // the line read, empty when Err is ErrNoInput
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrNoInput) {
		return fmt.Sprintf("keyboard.%s: %v", e.Func, e.Err)
	}
	return fmt.Sprintf("keyboard.%s: parsing %q: %v", e.Func, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
