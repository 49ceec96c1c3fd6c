package support

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"time"
)

// SetupLogger sends the global logger to stderr, stdout is left to the programs reading the console.
func SetupLogger() {
	log.Logger = NewConsoleLogger(os.Stderr)
}

func NewConsoleLogger(out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	// Set the output to console
	return log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339Nano,
		NoColor:    true,
	})
}
