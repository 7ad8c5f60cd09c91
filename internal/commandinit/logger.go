package commandinit

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the logger of a command. format is "console" for human
// readable output or "json" for one object per line.
func NewLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer
	switch format {
	case "console":
		out = zerolog.ConsoleWriter{Out: w}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
