package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPostgres(t *testing.T) *Postgres {
	t.Helper()
	dsn := os.Getenv("LEDGERVIEW_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LEDGERVIEW_TEST_DATABASE_URL not set")
	}
	p, err := OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestPostgres_PutGet(t *testing.T) {
	ctx := context.Background()
	p := openTestPostgres(t)

	key := Key("test-"+t.Name(), "2025-01-01", "2025-01-31")
	t.Cleanup(func() { _, _ = p.db.Exec(context.Background(), `DELETE FROM reports WHERE report_key = $1`, key) })

	rec := Record{
		Key:         key,
		CompanyID:   "test-" + t.Name(),
		CompanyName: "Toko Maju",
		PeriodFrom:  "2025-01-01",
		PeriodTo:    "2025-01-31",
		Payload:     json.RawMessage(`{"company":"Toko Maju","journals":[]}`),
	}
	require.NoError(t, p.Put(ctx, rec))

	got, err := p.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Toko Maju", got.CompanyName)
	assert.JSONEq(t, string(rec.Payload), string(got.Payload))

	rec.CompanyName = "Toko Baru"
	require.NoError(t, p.Put(ctx, rec))
	got, err = p.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Toko Baru", got.CompanyName, "put upserts on report_key")
}

func TestPostgres_NotFound(t *testing.T) {
	p := openTestPostgres(t)
	_, err := p.Get(context.Background(), "nobody|2000-01-01|2000-01-31")
	assert.ErrorIs(t, err, ErrNotFound)
}
