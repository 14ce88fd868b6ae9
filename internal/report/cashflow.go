package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// UncategorizedActivity labels cash rows with a blank activity.
const UncategorizedActivity = "Uncategorized"

// CashflowActivityRow is the net cash movement of one activity label.
type CashflowActivityRow struct {
	Activity string          `json:"activity"`
	Amount   decimal.Decimal `json:"amount"`
	Trace    model.TraceRef  `json:"trace"`
}

// CashflowGroups buckets cash movement by activity.
type CashflowGroups struct {
	Operating     []CashflowActivityRow `json:"operating"`
	Investing     []CashflowActivityRow `json:"investing"`
	Financing     []CashflowActivityRow `json:"financing"`
	Uncategorized []CashflowActivityRow `json:"uncategorized"`
}

// CashflowTotals holds the net change in cash and its activity split.
type CashflowTotals struct {
	NetChange     decimal.Decimal `json:"net_change"`
	Operating     decimal.Decimal `json:"operating"`
	Investing     decimal.Decimal `json:"investing"`
	Financing     decimal.Decimal `json:"financing"`
	Uncategorized decimal.Decimal `json:"uncategorized"`
}

// Sum adds the four activity totals.
func (t CashflowTotals) Sum() decimal.Decimal {
	return t.Operating.Add(t.Investing).Add(t.Financing).Add(t.Uncategorized)
}

// CashflowValidations records whether the activity split adds up.
type CashflowValidations struct {
	NetMatches bool `json:"net_matches"`
}

// CashflowReport is the direct-method cashflow for a period.
type CashflowReport struct {
	RawRows     []model.JournalRow  `json:"raw_rows"`
	Grouped     CashflowGroups      `json:"grouped"`
	Totals      CashflowTotals      `json:"totals"`
	Validations CashflowValidations `json:"validations"`
}

// Cashflow builds a direct-method cash flow statement from the cash-account
// rows among rows. The caller restricts rows to the reporting period.
// Each row moves cash by debit-credit and lands in exactly one activity bucket.
func Cashflow(rows []model.JournalRow) CashflowReport {
	cash := make([]model.JournalRow, 0, len(rows))
	for _, r := range rows {
		if r.IsCashAccount {
			cash = append(cash, r)
		}
	}

	buckets := map[string]*rowIndex{
		ActivityOperating:     newRowIndex(),
		ActivityInvesting:     newRowIndex(),
		ActivityFinancing:     newRowIndex(),
		ActivityUncategorized: newRowIndex(),
	}
	net := decimal.Zero
	for _, r := range cash {
		net = net.Add(r.Debit.Sub(r.Credit))
		label := strings.TrimSpace(r.Activity())
		if label == "" {
			label = UncategorizedActivity
		}
		buckets[ClassifyActivity(label)].add(label, r)
	}

	operating, opTotal := cashflowRows(buckets[ActivityOperating])
	investing, invTotal := cashflowRows(buckets[ActivityInvesting])
	financing, finTotal := cashflowRows(buckets[ActivityFinancing])
	uncategorized, uncatTotal := cashflowRows(buckets[ActivityUncategorized])

	totals := CashflowTotals{
		NetChange:     net,
		Operating:     opTotal,
		Investing:     invTotal,
		Financing:     finTotal,
		Uncategorized: uncatTotal,
	}
	return CashflowReport{
		RawRows: cash,
		Grouped: CashflowGroups{
			Operating:     operating,
			Investing:     investing,
			Financing:     financing,
			Uncategorized: uncategorized,
		},
		Totals:      totals,
		Validations: CashflowValidations{NetMatches: IsCloseToZero(totals.Sum().Sub(net))},
	}
}

func cashflowRows(ix *rowIndex) ([]CashflowActivityRow, decimal.Decimal) {
	out := make([]CashflowActivityRow, 0, len(ix.keys))
	total := decimal.Zero
	for _, label := range ix.keys {
		rows := ix.get(label)
		amount := decimal.Zero
		for _, r := range rows {
			amount = amount.Add(r.Debit.Sub(r.Credit))
		}
		total = total.Add(amount)
		out = append(out, CashflowActivityRow{Activity: label, Amount: amount, Trace: model.TraceFromRows(rows)})
	}
	sortByLabel(out,
		func(r CashflowActivityRow) string { return r.Activity },
		func(r CashflowActivityRow) string { return r.Activity })
	return out, total
}
