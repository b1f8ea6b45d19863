package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func InitLogger() *zerolog.Logger {
	return InitLoggerWithLevel("debug", true)
}

// InitLoggerWithLevel installs the process-wide default context logger.
// Unknown levels fall back to info.
func InitLoggerWithLevel(level string, console bool) *zerolog.Logger {
	var out io.Writer = os.Stdout
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
