package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger writes to stderr, or to a file when one is set. The terminal
// host owns the tty, so without a file its logs are dropped.
func NewLogger(cfg Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.Host == HostTerminal:
		out = io.Discard
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn, nil
}
