package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	Level(zerolog.ErrorLevel).
	With().Timestamp().Logger()

// GetLogger returns the process logger. It writes to stderr only.
func GetLogger() *zerolog.Logger {
	return &l
}

// SetLogLevel maps a repeated -v count: 0=error, 1=warn, 2=info, 3+=debug.
func SetLogLevel(verbose int) {
	switch {
	case verbose <= 0:
		l = l.Level(zerolog.ErrorLevel)
	case verbose == 1:
		l = l.Level(zerolog.WarnLevel)
	case verbose == 2:
		l = l.Level(zerolog.InfoLevel)
	default:
		l = l.Level(zerolog.DebugLevel)
	}
}
