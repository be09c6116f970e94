package main

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologLogger adapts zerolog to the ynab.Logger interface
type zerologLogger struct {
	log zerolog.Logger
}

// newLogger builds a console logger; verbose enables debug output
func newLogger(verbose bool) *zerologLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return &zerologLogger{
		log: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (l *zerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *zerologLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *zerologLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}
