package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the reports table used by Postgres.
const Schema = `
CREATE TABLE IF NOT EXISTS reports (
	report_key   TEXT PRIMARY KEY,
	company_id   TEXT NOT NULL,
	company_name TEXT NOT NULL DEFAULT '',
	period_from  TEXT NOT NULL,
	period_to    TEXT NOT NULL,
	payload      JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres stores payloads in the reports table, one row per report key.
type Postgres struct {
	db *pgxpool.Pool
}

// OpenPostgres connects to dsn and ensures the schema exists.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return NewPostgres(pool), nil
}

// NewPostgres wraps an existing pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Put(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.Key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	_, err := p.db.Exec(ctx, `
		INSERT INTO reports (report_key, company_id, company_name, period_from, period_to, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (report_key) DO UPDATE SET
			company_id=EXCLUDED.company_id,
			company_name=EXCLUDED.company_name,
			period_from=EXCLUDED.period_from,
			period_to=EXCLUDED.period_to,
			payload=EXCLUDED.payload,
			updated_at=now()
	`, rec.Key, rec.CompanyID, rec.CompanyName, rec.PeriodFrom, rec.PeriodTo, string(rec.Payload))
	if err != nil {
		return fmt.Errorf("upserting report %s: %w", rec.Key, err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) (Record, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Record{}, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	row := p.db.QueryRow(ctx, `
		SELECT report_key, company_id, company_name, period_from, period_to, payload::text, created_at
		FROM reports
		WHERE report_key = $1
	`, key)

	var rec Record
	var payload string
	err := row.Scan(&rec.Key, &rec.CompanyID, &rec.CompanyName, &rec.PeriodFrom, &rec.PeriodTo, &payload, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return Record{}, fmt.Errorf("loading report %s: %w", key, err)
	}
	rec.Payload = []byte(payload)
	return rec, nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	p.db.Close()
}
