package ports

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/kernel"
)

// ProductionLog is the persisted, append-only production journal.
type ProductionLog interface {
	Append(ctx context.Context, entry journal.Entry) error

	// Recent returns entries newest first. limit <= 0 returns all.
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
}

// AuditEvent is a fire-and-forget event for the external audit log.
type AuditEvent struct {
	ID        kernel.UUID
	Level     journal.Level
	Message   string
	Source    string
	Meta      map[string]any
	Timestamp time.Time
}

// AuditSink delivers audit events. Implementations swallow delivery
// failures; Publish never blocks the caller on the remote side.
type AuditSink interface {
	Publish(ctx context.Context, event AuditEvent)
}
