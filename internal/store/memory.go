package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long the memory store keeps a payload.
const DefaultTTL = 2 * time.Hour

// Memory is a process-local Store. Records expire after the TTL and are
// evicted when an expired key is read.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	records map[string]Record
}

// NewMemory returns an empty memory store. A non-positive ttl uses DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, records: make(map[string]Record)}
}

func (m *Memory) Put(_ context.Context, rec Record) error {
	if strings.TrimSpace(rec.Key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.CreatedAt = m.now()
	m.records[rec.Key] = rec
	return nil
}

func (m *Memory) Get(_ context.Context, key string) (Record, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Record{}, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[key]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if m.now().Sub(rec.CreatedAt) > m.ttl {
		delete(m.records, key)
		return Record{}, fmt.Errorf("%w: %s expired", ErrNotFound, key)
	}
	return rec, nil
}

// Len reports how many records are held, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
