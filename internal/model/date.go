package model

import (
	"encoding/json"
	"time"
)

// DateLayout is the canonical transaction date layout.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The zero value means the date
// is absent; it sorts before every present date and encodes as JSON null.
type Date string

// NoDate is the absent date.
const NoDate Date = ""

// ParseDate accepts exactly YYYY-MM-DD naming a real calendar day.
func ParseDate(s string) (Date, bool) {
	if len(s) != len(DateLayout) {
		return NoDate, false
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return NoDate, false
	}
	return Date(s), true
}

// DateOf formats t's UTC calendar day.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return d == NoDate }

// Time returns midnight UTC of the date.
func (d Date) Time() (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Compare orders dates lexically, with the absent date first.
func (d Date) Compare(other Date) int {
	switch {
	case d == other:
		return 0
	case d < other:
		return -1
	default:
		return 1
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = NoDate
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = Date(s)
	return nil
}

// Period is an inclusive date range. An absent bound leaves that side open.
type Period struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}
