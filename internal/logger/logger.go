package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	Init("info")
}

// Init configures the package logger for the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func Init(level string) {
	SetOutput(os.Stdout, level)
}

// SetOutput redirects the package logger, mostly useful in tests.
func SetOutput(w io.Writer, level string) {
	log = New(w, level)
}

func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Info logs msg with optional alternating key/value pairs.
func Info(msg string, keyvals ...interface{}) {
	log.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...interface{}) {
	log.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...interface{}) {
	log.Error().Fields(keyvals).Msg(msg)
}

func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Debug(msg string, keyvals ...interface{}) {
	log.Debug().Fields(keyvals).Msg(msg)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

// WithError returns a child logger carrying err.
func WithError(err error) zerolog.Logger {
	return log.With().Err(err).Logger()
}
