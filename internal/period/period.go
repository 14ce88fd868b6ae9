// Package period filters journal rows by date and derives comparison periods.
// Date arithmetic is calendar arithmetic in UTC.
package period

import (
	"sort"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// AddDays shifts d by n calendar days. The absent date stays absent.
func AddDays(d model.Date, n int) model.Date {
	t, ok := d.Time()
	if !ok {
		return model.NoDate
	}
	return model.DateOf(t.AddDate(0, 0, n))
}

const secondsPerDay = 24 * 60 * 60

// DaysInclusive counts the days in [from, to]. It returns 0 when either bound
// is absent or to precedes from.
func DaysInclusive(from, to model.Date) int {
	a, okA := from.Time()
	b, okB := to.Time()
	if !okA || !okB || b.Before(a) {
		return 0
	}
	return int((b.Unix()-a.Unix())/secondsPerDay) + 1
}

// InRange reports whether d lies within the inclusive period. Absent dates
// never match, even an unbounded period.
func InRange(d model.Date, p model.Period) bool {
	if d.IsZero() {
		return false
	}
	if !p.From.IsZero() && d < p.From {
		return false
	}
	if !p.To.IsZero() && d > p.To {
		return false
	}
	return true
}

// FilterByPeriod returns the rows dated within p. With both bounds absent every
// row is kept, including undated ones.
func FilterByPeriod(rows []model.JournalRow, p model.Period) []model.JournalRow {
	if p.From.IsZero() && p.To.IsZero() {
		out := make([]model.JournalRow, len(rows))
		copy(out, rows)
		return out
	}
	out := make([]model.JournalRow, 0, len(rows))
	for _, r := range rows {
		if InRange(r.TransactionDate, p) {
			out = append(out, r)
		}
	}
	return out
}

// FilterAsOf returns the rows dated on or before cutoff. An absent cutoff
// yields no rows; undated rows never qualify.
func FilterAsOf(rows []model.JournalRow, cutoff model.Date) []model.JournalRow {
	out := make([]model.JournalRow, 0, len(rows))
	if cutoff.IsZero() {
		return out
	}
	for _, r := range rows {
		if !r.TransactionDate.IsZero() && r.TransactionDate <= cutoff {
			out = append(out, r)
		}
	}
	return out
}

// OpeningRows returns the rows that make up opening balances for p: every
// row dated up to the day before p.From. Without a start bound there is no
// opening.
func OpeningRows(rows []model.JournalRow, p model.Period) []model.JournalRow {
	if p.From.IsZero() {
		return nil
	}
	return FilterAsOf(rows, AddDays(p.From, -1))
}

// Previous derives the window of equal inclusive length that ends the day
// before p.From. ok is false when either bound is absent or To precedes From.
func Previous(p model.Period) (prev model.Period, ok bool) {
	days := DaysInclusive(p.From, p.To)
	if days == 0 {
		return model.Period{}, false
	}
	to := AddDays(p.From, -1)
	return model.Period{From: AddDays(to, -(days - 1)), To: to}, true
}

// SortRows orders rows by date, then header id, then row id. The input is
// left untouched.
func SortRows(rows []model.JournalRow) []model.JournalRow {
	out := make([]model.JournalRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareRows(out[i], out[j]) < 0
	})
	return out
}

// CompareRows is the total row order used by ledgers and registers.
func CompareRows(a, b model.JournalRow) int {
	if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
		return c
	}
	if c := strings.Compare(a.JournalHeaderID, b.JournalHeaderID); c != 0 {
		return c
	}
	return strings.Compare(a.RowID, b.RowID)
}
