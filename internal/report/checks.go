package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// Checks are sanity figures over the whole normalized row set.
type Checks struct {
	TotalDebit   decimal.Decimal `json:"total_debit"`
	TotalCredit  decimal.Decimal `json:"total_credit"`
	IsBalanced   bool            `json:"is_balanced"`
	MissingDates int             `json:"missing_dates"`
	RowCount     int             `json:"row_count"`
}

// BasicChecks totals the raw rows and counts rows without a date.
func BasicChecks(rows []model.JournalRow) Checks {
	c := Checks{
		TotalDebit:  sumDebit(rows),
		TotalCredit: sumCredit(rows),
		RowCount:    len(rows),
	}
	for _, r := range rows {
		if r.TransactionDate.IsZero() {
			c.MissingDates++
		}
	}
	c.IsBalanced = IsBalanced(c.TotalDebit, c.TotalCredit)
	return c
}
