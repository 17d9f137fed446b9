package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Log *slog.Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}

// Init wires both loggers: slog carries the per-request wide events, zerolog
// the component logs. level is one of debug, info, warn, error.
func Init(level string, out io.Writer) {
	zl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || zl == zerolog.NoLevel {
		zl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	Log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: slogLevel(zl),
	}))
	slog.SetDefault(Log)
}

// InitConsole is Init for interactive tools: human readable output on w.
func InitConsole(level string, w io.Writer) {
	Init(level, zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}

func slogLevel(l zerolog.Level) slog.Level {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return slog.LevelDebug
	case zerolog.WarnLevel:
		return slog.LevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
