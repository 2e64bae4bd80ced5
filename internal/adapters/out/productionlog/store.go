// Package productionlog persists the production journal in PostgreSQL
// through a pgx pool. The table lives outside the gorm schema and is
// created on start.
package productionlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perfumery/internal/core/domain/model/journal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pool is the subset of *pgxpool.Pool used by Store.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// Store implements ports.ProductionLog.
type Store struct {
	pool   pool
	logger *slog.Logger
}

// New connects to dsn and makes sure the production_logs table exists.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store, err := NewWithPool(ctx, p, logger)
	if err != nil {
		p.Close()
		return nil, err
	}
	return store, nil
}

// NewWithPool is New over an existing pool.
func NewWithPool(ctx context.Context, p pool, logger *slog.Logger) (*Store, error) {
	s := &Store{pool: p, logger: logger.With("component", "production-log")}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS production_logs (
            id BIGSERIAL PRIMARY KEY,
            level TEXT NOT NULL,
            message TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_production_logs_created ON production_logs(created_at DESC, id DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Append(ctx context.Context, entry journal.Entry) error {
	const query = `INSERT INTO production_logs (level, message, created_at) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, query, entry.Level().String(), entry.Message(), entry.CreatedAt()); err != nil {
		return fmt.Errorf("append production log: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of 0 or less
// returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	const base = `SELECT level, message, created_at FROM production_logs ORDER BY created_at DESC, id DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.pool.Query(ctx, base+` LIMIT $1`, limit)
	} else {
		rows, err = s.pool.Query(ctx, base)
	}
	if err != nil {
		return nil, fmt.Errorf("read production log: %w", err)
	}
	defer rows.Close()

	entries := make([]journal.Entry, 0)
	for rows.Next() {
		var (
			rawLevel  string
			message   string
			createdAt time.Time
		)
		if err = rows.Scan(&rawLevel, &message, &createdAt); err != nil {
			return nil, err
		}

		level, parseErr := journal.ParseLevel(rawLevel)
		if parseErr != nil {
			s.logger.WarnContext(ctx, "skipping production log row", "level", rawLevel, "error", parseErr)
			continue
		}

		entry, entryErr := journal.NewEntry(level, message, createdAt)
		if entryErr != nil {
			s.logger.WarnContext(ctx, "skipping production log row", "error", entryErr)
			continue
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
