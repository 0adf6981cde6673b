package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/reusedev/imagen-studio/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

func InitLogger() {
	cfg := config.GConfig

	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer

	logFile := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize, // MB
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge, // days
		Compress:   true,
	}
	writers = append(writers, logFile)

	// mirror to the console while developing or when attached to a terminal
	if level <= zerolog.DebugLevel || term.IsTerminal(int(os.Stdout.Fd())) {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
}

// parseLogLevel falls back to info for unknown names.
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
