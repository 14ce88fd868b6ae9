package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// EquityChangeRow is the roll-forward of one equity account.
type EquityChangeRow struct {
	Account        model.Account   `json:"account"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	NetChange      decimal.Decimal `json:"net_change"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Trace          model.TraceRef  `json:"trace"`
}

// EquityChangesGroups holds the per-account equity rows.
type EquityChangesGroups struct {
	Rows []EquityChangeRow `json:"rows"`
}

// EquityChangesTotals rolls opening equity forward to closing equity.
type EquityChangesTotals struct {
	OpeningEquity  decimal.Decimal `json:"opening_equity"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	EquityIncrease decimal.Decimal `json:"equity_increase"`
	EquityDecrease decimal.Decimal `json:"equity_decrease"`
	ClosingEquity  decimal.Decimal `json:"closing_equity"`
}

// RollForward is opening + net profit + increase + decrease.
func (t EquityChangesTotals) RollForward() decimal.Decimal {
	return t.OpeningEquity.Add(t.NetProfit).Add(t.EquityIncrease).Add(t.EquityDecrease)
}

// EquityChangesValidations records whether closing equity rolls forward.
type EquityChangesValidations struct {
	ClosingMatches bool `json:"closing_matches"`
}

// EquityChangesReport is the statement of changes in equity.
type EquityChangesReport struct {
	RawRows     []model.JournalRow       `json:"raw_rows"`
	Grouped     EquityChangesGroups      `json:"grouped"`
	Totals      EquityChangesTotals      `json:"totals"`
	Validations EquityChangesValidations `json:"validations"`
}

// EquityChanges rolls equity accounts forward over p. Balances are
// credit-debit. Non-negative movements count as increases and negative ones
// as decreases; netProfit comes from the period's profit and loss.
func EquityChanges(rows []model.JournalRow, p model.Period, netProfit decimal.Decimal) EquityChangesReport {
	current := period.FilterByPeriod(rows, p)
	opening := equityIndex(period.OpeningRows(rows, p))
	moving := equityIndex(current)

	keys := append([]string{}, opening.keys...)
	for _, k := range moving.keys {
		if _, ok := opening.rows[k]; !ok {
			keys = append(keys, k)
		}
	}

	t := EquityChangesTotals{
		OpeningEquity:  decimal.Zero,
		NetProfit:      netProfit,
		EquityIncrease: decimal.Zero,
		EquityDecrease: decimal.Zero,
	}
	out := make([]EquityChangeRow, 0, len(keys))
	for _, key := range keys {
		openRows, curRows := opening.get(key), moving.get(key)
		open := model.SideCredit.Net(sumDebit(openRows), sumCredit(openRows))
		change := model.SideCredit.Net(sumDebit(curRows), sumCredit(curRows))

		t.OpeningEquity = t.OpeningEquity.Add(open)
		if change.IsNegative() {
			t.EquityDecrease = t.EquityDecrease.Add(change)
		} else {
			t.EquityIncrease = t.EquityIncrease.Add(change)
		}

		seed := openRows
		if len(curRows) > 0 {
			seed = curRows
		}
		out = append(out, EquityChangeRow{
			Account:        seed[0].Account(),
			OpeningBalance: open,
			NetChange:      change,
			ClosingBalance: open.Add(change),
			Trace:          model.MergeTraces(model.TraceFromRows(openRows), model.TraceFromRows(curRows)),
		})
	}
	sortByAccount(out, func(r EquityChangeRow) model.Account { return r.Account })

	t.ClosingEquity = t.RollForward()
	return EquityChangesReport{
		RawRows:     current,
		Grouped:     EquityChangesGroups{Rows: out},
		Totals:      t,
		Validations: EquityChangesValidations{ClosingMatches: t.ClosingEquity.Equal(t.RollForward())},
	}
}

func equityIndex(rows []model.JournalRow) *rowIndex {
	ix := newRowIndex()
	for _, r := range rows {
		if r.Type() == model.AccountTypeEquity {
			ix.add(r.AccountKey(), r)
		}
	}
	return ix
}

func sumDebit(rows []model.JournalRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Debit)
	}
	return total
}

func sumCredit(rows []model.JournalRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Credit)
	}
	return total
}
