package commands

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to the dip.Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a console logger writing to w.
func NewZerologLogger(w io.Writer) *ZerologLogger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Str("component", "dip-client").
		Logger()

	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
