package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	Account        model.Account   `json:"account"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ClosingDebit   decimal.Decimal `json:"closing_debit"`
	ClosingCredit  decimal.Decimal `json:"closing_credit"`
	JournalLines   int             `json:"journal_lines"`
	Trace          model.TraceRef  `json:"trace"`
}

// TrialBalanceGroups holds the trial balance rows in account order.
type TrialBalanceGroups struct {
	Rows []TrialBalanceRow `json:"rows"`
}

// TrialBalanceTotals sums every trial balance column.
type TrialBalanceTotals struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ClosingDebit   decimal.Decimal `json:"closing_debit"`
	ClosingCredit  decimal.Decimal `json:"closing_credit"`
}

// BalanceValidations is the validation block shared by balanced-ness reports.
type BalanceValidations struct {
	IsBalanced bool `json:"is_balanced"`
}

// TrialBalanceReport is the trial balance for a period.
type TrialBalanceReport struct {
	RawRows     []model.JournalRow `json:"raw_rows"`
	Grouped     TrialBalanceGroups `json:"grouped"`
	Totals      TrialBalanceTotals `json:"totals"`
	Validations BalanceValidations `json:"validations"`
}

// TrialBalance reports every account's opening balance, period debits and
// credits, and closing balance split into a single debit or credit column.
// It is balanced when the closing columns agree within Tolerance.
func TrialBalance(rows []model.JournalRow, p model.Period) TrialBalanceReport {
	rollups := rollupAccounts(rows, p)

	out := TrialBalanceReport{
		RawRows: period.FilterByPeriod(rows, p),
		Grouped: TrialBalanceGroups{Rows: make([]TrialBalanceRow, 0, len(rollups))},
		Totals: TrialBalanceTotals{
			OpeningBalance: decimal.Zero,
			Debit:          decimal.Zero,
			Credit:         decimal.Zero,
			ClosingBalance: decimal.Zero,
			ClosingDebit:   decimal.Zero,
			ClosingCredit:  decimal.Zero,
		},
	}

	for _, a := range rollups {
		closing := a.closing()
		closingDebit, closingCredit := model.SplitDebitCredit(closing, a.side)
		out.Grouped.Rows = append(out.Grouped.Rows, TrialBalanceRow{
			Account:        a.account,
			OpeningBalance: a.opening,
			Debit:          a.debit,
			Credit:         a.credit,
			ClosingBalance: closing,
			ClosingDebit:   closingDebit,
			ClosingCredit:  closingCredit,
			JournalLines:   a.lines,
			Trace:          a.trace,
		})

		t := &out.Totals
		t.OpeningBalance = t.OpeningBalance.Add(a.opening)
		t.Debit = t.Debit.Add(a.debit)
		t.Credit = t.Credit.Add(a.credit)
		t.ClosingBalance = t.ClosingBalance.Add(closing)
		t.ClosingDebit = t.ClosingDebit.Add(closingDebit)
		t.ClosingCredit = t.ClosingCredit.Add(closingCredit)
	}

	out.Validations.IsBalanced = IsBalanced(out.Totals.ClosingDebit, out.Totals.ClosingCredit)
	return out
}
