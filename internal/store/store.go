// Package store persists raw report payloads under a report key so that a
// report can be rebuilt on request.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/ledgerview/internal/normalize"
)

var (
	// ErrNotFound is returned when no live payload exists for a key.
	ErrNotFound = errors.New("report not found")
	// ErrInvalidKey is returned for empty or malformed report keys and for
	// payloads missing the fields a key is built from.
	ErrInvalidKey = errors.New("invalid report key")
)

const keySep = "|"

// Record is one stored payload.
type Record struct {
	Key         string
	CompanyID   string
	CompanyName string
	PeriodFrom  string
	PeriodTo    string
	Payload     json.RawMessage
	CreatedAt   time.Time
}

// Store saves and loads payload records. Put replaces any record with the
// same key.
type Store interface {
	Put(ctx context.Context, rec Record) error
	Get(ctx context.Context, key string) (Record, error)
}

// Key builds the report key company_id|from|to.
func Key(companyID, from, to string) string {
	return strings.Join([]string{companyID, from, to}, keySep)
}

// ParseKey splits a report key into its parts.
func ParseKey(key string) (companyID, from, to string, err error) {
	parts := strings.Split(strings.TrimSpace(key), keySep)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return parts[0], parts[1], parts[2], nil
}

// NewRecord reads the ingest fields out of a raw payload. company_id,
// period.from and period.to are required; the payload itself is kept as
// JSON for later rebuilds.
func NewRecord(raw []byte) (Record, error) {
	obj, _ := normalize.Decode(raw).(map[string]any)
	if obj == nil {
		return Record{}, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidKey)
	}
	period, _ := normalize.Unwrap(obj["period"]).(map[string]any)

	rec := Record{
		CompanyID:   strings.TrimSpace(normalize.Text(obj["company_id"])),
		CompanyName: strings.TrimSpace(normalize.Text(obj["company"])),
		PeriodFrom:  strings.TrimSpace(normalize.Text(period["from"])),
		PeriodTo:    strings.TrimSpace(normalize.Text(period["to"])),
	}
	if rec.CompanyID == "" || rec.PeriodFrom == "" || rec.PeriodTo == "" {
		return Record{}, fmt.Errorf("%w: company_id, period.from, period.to are required", ErrInvalidKey)
	}
	rec.Key = Key(rec.CompanyID, rec.PeriodFrom, rec.PeriodTo)

	payload, err := json.Marshal(obj)
	if err != nil {
		return Record{}, fmt.Errorf("encoding payload: %w", err)
	}
	rec.Payload = payload
	return rec, nil
}
