// Package stdlogger adapts the global zerolog logger to printf style logger interfaces,
// like the gorm logger writer.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps a zerolog logger with printf style methods.
type Logger struct {
	logger zerolog.Logger
	level  zerolog.Level // level used by Printf
}

// New returns a Logger using the current global logger. Printf logs at info level.
func New() *Logger {
	return &Logger{logger: log.Logger, level: zerolog.InfoLevel}
}

// NewComponent returns a Logger tagging every line with component. Printf logs at level.
func NewComponent(component string, level zerolog.Level) *Logger {
	return &Logger{
		logger: log.Logger.With().Str("component", component).Logger(),
		level:  level,
	}
}

// Printf implements the gorm logger.Writer interface.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.logger.WithLevel(l.level).Msgf(strings.TrimSpace(format), args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}
