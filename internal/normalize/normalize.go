// Package normalize turns a raw report payload into typed journal rows.
//
// Payloads arrive from a low-code data source and may be a JSON object, a
// string holding JSON, or percent-encoded JSON; the journals list may be
// encoded the same way on its own. Normalization never fails: anything that
// cannot be decoded falls back to defaults.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// DefaultCompany names the company when the payload does not.
const DefaultCompany = "Optivuz Business"

var errTrailingData = errors.New("trailing data after JSON value")

// maxUnwrap bounds how many string-encoding layers are peeled off a value.
const maxUnwrap = 3

// Options carries the defaults applied during normalization.
type Options struct {
	DefaultCompany  string
	DefaultCurrency string
}

// DefaultOptions returns the stock defaults.
func DefaultOptions() Options {
	return Options{DefaultCompany: DefaultCompany, DefaultCurrency: model.DefaultCurrency}
}

// Payload is the normalized report input.
type Payload struct {
	Company  string             `json:"company"`
	Logo     string             `json:"logo"`
	Address  string             `json:"address"`
	Contact  string             `json:"contact"`
	Period   model.Period       `json:"period"`
	Journals []model.JournalRow `json:"journals"`
}

// Parse decodes raw payload bytes and normalizes them.
func Parse(raw []byte, opts Options) Payload {
	return Normalize(Decode(raw), opts)
}

// Decode loosely decodes raw payload bytes, unwrapping string and
// percent-encoded layers. Bytes that are not JSON come back as a string.
func Decode(raw []byte) any {
	v, err := decodeJSON(raw)
	if err != nil {
		v = string(raw)
	}
	return Unwrap(v)
}

// Normalize converts an already-decoded payload value.
func Normalize(v any, opts Options) Payload {
	opts = opts.withDefaults()
	obj, _ := Unwrap(v).(map[string]any)

	p := Payload{
		Company: strings.TrimSpace(Text(obj["company"])),
		Logo:    strings.TrimSpace(Text(obj["logo"])),
		Address: strings.TrimSpace(Text(obj["address"])),
		Contact: strings.TrimSpace(Text(obj["contact"])),
	}
	if p.Company == "" {
		p.Company = opts.DefaultCompany
	}

	if period, ok := Unwrap(obj["period"]).(map[string]any); ok {
		p.Period = model.Period{From: Date(period["from"]), To: Date(period["to"])}
	}

	items, _ := Unwrap(obj["journals"]).([]any)
	p.Journals = make([]model.JournalRow, 0, len(items))
	for _, item := range items {
		rec, _ := Unwrap(item).(map[string]any)
		p.Journals = append(p.Journals, normalizeRow(rec, opts))
	}
	return p
}

func normalizeRow(r map[string]any, opts Options) model.JournalRow {
	currency := Text(r["currency"])
	if strings.TrimSpace(currency) == "" {
		currency = opts.DefaultCurrency
	}
	return model.JournalRow{
		RowID:            Text(r["row_id"]),
		JournalHeaderID:  Text(r["journal_header_id"]),
		AccountID:        Text(r["account_id"]),
		AccountName:      Text(r["account_name"]),
		AccountCategory:  Text(r["account_category"]),
		AccountType:      Text(r["account_type"]),
		KelompokNeraca:   OptionalText(r["kelompok_neraca"]),
		IsCashAccount:    Bool(r["is_cash_account"]),
		CashflowActivity: OptionalText(r["cashflow_activity"]),
		Debit:            Number(r["debit"]),
		Credit:           Number(r["credit"]),
		AmountRaw:        Number(r["amount_raw"]),
		Currency:         currency,
		Description:      Text(r["description"]),
		TransactionDate:  Date(r["transaction_date"]),
		Status:           Text(r["status"]),
		PostedBy:         Text(r["posted_by"]),
	}
}

func (o Options) withDefaults() Options {
	if o.DefaultCompany == "" {
		o.DefaultCompany = DefaultCompany
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = model.DefaultCurrency
	}
	return o
}

// Unwrap peels string-encoded JSON off v: each layer is parsed directly, or
// percent-decoded and parsed. A string that decodes to nothing is returned
// as-is.
func Unwrap(v any) any {
	for i := 0; i < maxUnwrap; i++ {
		s, ok := v.(string)
		if !ok {
			return v
		}
		next, ok := decodeString(s)
		if !ok {
			return v
		}
		v = next
	}
	return v
}

func decodeString(s string) (any, bool) {
	if v, err := decodeJSON([]byte(s)); err == nil {
		return v, true
	}
	unescaped, err := url.PathUnescape(s)
	if err != nil || unescaped == s {
		return nil, false
	}
	v, err := decodeJSON([]byte(unescaped))
	if err != nil {
		return nil, false
	}
	return v, true
}

// decodeJSON decodes a single JSON value, keeping numbers exact.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}
