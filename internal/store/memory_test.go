package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	m := NewMemory(time.Hour)
	m.now = func() time.Time { return clock }

	require.NoError(t, m.Put(ctx, Record{Key: "k"}))

	clock = clock.Add(59 * time.Minute)
	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len(), "expired records are evicted on read")
}

func TestMemory_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemory(-time.Second).ttl)
	assert.Equal(t, 2*time.Hour, DefaultTTL)
}
