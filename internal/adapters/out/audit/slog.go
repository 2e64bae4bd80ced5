package audit

import (
	"context"
	"log/slog"

	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/ports"
)

// LogSink writes audit events to the structured log. It is used when no
// NATS server is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "audit")}
}

func (s *LogSink) Publish(ctx context.Context, event ports.AuditEvent) {
	attrs := []any{
		"event_id", event.ID.String(),
		"source", event.Source,
		"timestamp", event.Timestamp,
	}
	if len(event.Meta) > 0 {
		attrs = append(attrs, "meta", event.Meta)
	}
	s.logger.Log(ctx, slogLevel(event.Level), event.Message, attrs...)
}

func slogLevel(level journal.Level) slog.Level {
	switch level {
	case journal.LevelWarning:
		return slog.LevelWarn
	case journal.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
