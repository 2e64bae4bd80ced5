package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/ports"
)

// ProductionJournal records plant lifecycle events in the production log
// and forwards them to the audit sink. Recording never fails the caller.
type ProductionJournal struct {
	log    ports.ProductionLog
	audit  ports.AuditSink
	logger *slog.Logger
}

func NewProductionJournal(log ports.ProductionLog, audit ports.AuditSink, logger *slog.Logger) ProductionJournal {
	return ProductionJournal{
		log:    log,
		audit:  audit,
		logger: logger.With("component", "production-journal"),
	}
}

func (j ProductionJournal) Info(ctx context.Context, format string, args ...any) {
	j.record(ctx, journal.LevelInfo, fmt.Sprintf(format, args...))
}

func (j ProductionJournal) Warning(ctx context.Context, format string, args ...any) {
	j.record(ctx, journal.LevelWarning, fmt.Sprintf(format, args...))
}

func (j ProductionJournal) record(ctx context.Context, level journal.Level, message string) {
	now := time.Now().UTC()

	entry, err := journal.NewEntry(level, message, now)
	if err != nil {
		j.logger.WarnContext(ctx, "journal entry rejected", "error", err)
		return
	}

	if j.log != nil {
		if err := j.log.Append(ctx, entry); err != nil {
			j.logger.WarnContext(ctx, "failed to append production log", "error", err, "message", message)
		}
	}

	if j.audit != nil {
		j.audit.Publish(ctx, ports.AuditEvent{
			ID:        kernel.NewUUID(),
			Level:     level,
			Message:   message,
			Source:    "production",
			Timestamp: now,
		})
	}
}
