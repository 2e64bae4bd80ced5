package audit

import (
	"context"

	"perfumery/internal/core/ports"
)

type eventCounter interface {
	AuditEvent(level string)
}

// CountingSink counts events by level before handing them to the next sink.
type CountingSink struct {
	next    ports.AuditSink
	counter eventCounter
}

func NewCountingSink(next ports.AuditSink, counter eventCounter) *CountingSink {
	return &CountingSink{next: next, counter: counter}
}

func (s *CountingSink) Publish(ctx context.Context, event ports.AuditEvent) {
	s.counter.AuditEvent(event.Level.String())
	s.next.Publish(ctx, event)
}
