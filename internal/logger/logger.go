package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yukikurage/jcp-backend-service/internal/config"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
}

// New builds the application logger for the given environment.
// local gets a human readable console writer, everything else JSON on out.
func New(env string, out io.Writer) zerolog.Logger {
	w := out
	level := zerolog.InfoLevel
	switch env {
	case config.EnvLocal:
		level = zerolog.TraceLevel
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	case config.EnvDev:
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()
}

// NewDefault is used before configuration is read
func NewDefault() zerolog.Logger {
	return New(config.EnvProd, os.Stdout)
}

type gormWriter struct {
	log   zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.WithLevel(w.level).Msgf(format, args...)
}

// Gorm routes gorm's SQL logging into log. SQL statements are only
// traced outside prod.
func Gorm(log zerolog.Logger, env string) gormlogger.Interface {
	level := gormlogger.Warn
	w := gormWriter{log: log.With().Str("component", "gorm").Logger(), level: zerolog.WarnLevel}
	if env != config.EnvProd {
		level = gormlogger.Info
		w.level = zerolog.DebugLevel
	}

	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
