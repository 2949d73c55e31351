package bus

import (
	"context"

	"github.com/rs/zerolog"
)

// Log is an EventBus that writes events to the process log. It is the
// default when no external bus is configured.
type Log struct {
	logger zerolog.Logger
}

// NewLog creates a log-backed event bus.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

// Publish logs the event at info level.
func (l *Log) Publish(ctx context.Context, event Event) error {
	l.logger.Info().
		Str("id", event.ID).
		Str("source", event.Source).
		Str("type", event.Type).
		Interface("detail", event.Detail).
		Msg("event published")
	return nil
}
