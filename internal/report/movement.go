package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// AccountMovementRow is one account's opening, movement and closing.
type AccountMovementRow struct {
	Account        model.Account   `json:"account"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	NetMovement    decimal.Decimal `json:"net_movement"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	JournalLines   int             `json:"journal_lines"`
	Trace          model.TraceRef  `json:"trace"`
}

// AccountMovementGroups holds the movement rows in account order.
type AccountMovementGroups struct {
	Rows []AccountMovementRow `json:"rows"`
}

// AccountMovementTotals sums the movement rows.
type AccountMovementTotals struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// AccountMovementReport summarizes per-account movement for a period.
type AccountMovementReport struct {
	RawRows     []model.JournalRow    `json:"raw_rows"`
	Grouped     AccountMovementGroups `json:"grouped"`
	Totals      AccountMovementTotals `json:"totals"`
	Validations BalanceValidations    `json:"validations"`
}

// AccountMovement is the trial balance with a single net movement per
// account, signed by the account's normal side.
func AccountMovement(rows []model.JournalRow, p model.Period) AccountMovementReport {
	rollups := rollupAccounts(rows, p)

	out := AccountMovementReport{
		RawRows: period.FilterByPeriod(rows, p),
		Grouped: AccountMovementGroups{Rows: make([]AccountMovementRow, 0, len(rollups))},
		Totals: AccountMovementTotals{
			OpeningBalance: decimal.Zero,
			Debit:          decimal.Zero,
			Credit:         decimal.Zero,
			ClosingBalance: decimal.Zero,
		},
	}

	for _, a := range rollups {
		row := AccountMovementRow{
			Account:        a.account,
			OpeningBalance: a.opening,
			Debit:          a.debit,
			Credit:         a.credit,
			NetMovement:    a.movement(),
			ClosingBalance: a.closing(),
			JournalLines:   a.lines,
			Trace:          a.trace,
		}
		out.Grouped.Rows = append(out.Grouped.Rows, row)

		t := &out.Totals
		t.OpeningBalance = t.OpeningBalance.Add(row.OpeningBalance)
		t.Debit = t.Debit.Add(row.Debit)
		t.Credit = t.Credit.Add(row.Credit)
		t.ClosingBalance = t.ClosingBalance.Add(row.ClosingBalance)
	}

	out.Validations.IsBalanced = IsBalanced(out.Totals.Debit, out.Totals.Credit)
	return out
}
