package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"perfumery/internal/core/ports"

	"github.com/nats-io/nats.go"
)

const DefaultSubjectPrefix = "audit"

type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes every event as JSON to <prefix>.<source>.
type NATSSink struct {
	conn   publisher
	prefix string
	logger *slog.Logger
}

// ConnectNATS dials url and returns a sink together with the connection so
// the caller can drain it on shutdown.
func ConnectNATS(url, prefix string, logger *slog.Logger) (*NATSSink, *nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("perfumery-audit"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("audit nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("audit nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}
	return NewNATSSink(conn, prefix, logger), conn, nil
}

func NewNATSSink(conn publisher, prefix string, logger *slog.Logger) *NATSSink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSSink{
		conn:   conn,
		prefix: prefix,
		logger: logger.With("component", "audit-nats"),
	}
}

func (s *NATSSink) Subject(source string) string {
	if source == "" {
		source = "unknown"
	}
	return s.prefix + "." + source
}

func (s *NATSSink) Publish(ctx context.Context, event ports.AuditEvent) {
	data, err := json.Marshal(toMessage(event))
	if err != nil {
		s.logger.WarnContext(ctx, "audit event not encodable", "source", event.Source, "error", err)
		return
	}

	subject := s.Subject(event.Source)
	if err = s.conn.Publish(subject, data); err != nil {
		s.logger.WarnContext(ctx, "audit event not published",
			"subject", subject, "event_id", event.ID.String(), "error", err)
	}
}
