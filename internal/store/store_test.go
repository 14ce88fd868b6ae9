package store

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	key := Key("c-42", "2025-01-01", "2025-01-31")
	assert.Equal(t, "c-42|2025-01-01|2025-01-31", key)

	company, from, to, err := ParseKey(key)
	require.NoError(t, err)
	assert.Equal(t, "c-42", company)
	assert.Equal(t, "2025-01-01", from)
	assert.Equal(t, "2025-01-31", to)
}

func TestParseKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "c-42", "c-42|2025-01-01", "|2025-01-01|2025-01-31", "a|b|c|d"} {
		_, _, _, err := ParseKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestNewRecord(t *testing.T) {
	raw := []byte(`{"company_id": 42, "company": " Toko Maju ", "period": {"from": "2025-01-01", "to": "2025-01-31"},
		"journals": [{"row_id": "r1", "debit": 100.50}]}`)

	rec, err := NewRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, "42|2025-01-01|2025-01-31", rec.Key)
	assert.Equal(t, "42", rec.CompanyID)
	assert.Equal(t, "Toko Maju", rec.CompanyName)

	var back map[string]any
	require.NoError(t, json.Unmarshal(rec.Payload, &back))
	assert.Contains(t, back, "journals")
	assert.Contains(t, string(rec.Payload), "100.50", "numbers are kept exactly")
}

func TestNewRecord_PercentEncoded(t *testing.T) {
	raw := url.PathEscape(`{"company_id":"c1","period":{"from":"2025-02-01","to":"2025-02-28"}}`)
	rec, err := NewRecord([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "c1|2025-02-01|2025-02-28", rec.Key)
}

func TestNewRecord_MissingFields(t *testing.T) {
	tests := map[string]string{
		"not json":      `hello`,
		"array":         `[1,2]`,
		"no company":    `{"period": {"from": "2025-01-01", "to": "2025-01-31"}}`,
		"no period":     `{"company_id": "c1"}`,
		"blank to":      `{"company_id": "c1", "period": {"from": "2025-01-01", "to": "  "}}`,
		"blank company": `{"company_id": "", "period": {"from": "2025-01-01", "to": "2025-01-31"}}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewRecord([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestMemory_PutGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	rec := Record{Key: Key("c1", "2025-01-01", "2025-01-31"), CompanyID: "c1", Payload: json.RawMessage(`{"a":1}`)}
	require.NoError(t, m.Put(ctx, rec))

	got, err := m.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
	assert.JSONEq(t, `{"a":1}`, string(got.Payload))
	assert.False(t, got.CreatedAt.IsZero())

	rec.Payload = json.RawMessage(`{"a":2}`)
	require.NoError(t, m.Put(ctx, rec))
	got, err = m.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got.Payload), "put replaces")
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Errors(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.ErrorIs(t, m.Put(ctx, Record{}), ErrInvalidKey)
}
