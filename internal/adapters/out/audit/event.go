// Package audit holds the ports.AuditSink adapters. Publishing is fire and
// forget: failures are logged and never reach the caller.
package audit

import (
	"time"

	"perfumery/internal/core/ports"
)

// message is the wire form of an audit event.
type message struct {
	ID        string         `json:"id"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Source    string         `json:"source"`
	Meta      map[string]any `json:"meta,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func toMessage(event ports.AuditEvent) message {
	return message{
		ID:        event.ID.String(),
		Level:     event.Level.String(),
		Message:   event.Message,
		Source:    event.Source,
		Meta:      event.Meta,
		Timestamp: event.Timestamp.UTC(),
	}
}
