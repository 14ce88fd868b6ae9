package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// UncategorizedLabel names rows that carry no category.
const UncategorizedLabel = "(Uncategorized)"

// PnLRow is one account on the profit & loss statement.
type PnLRow struct {
	Account model.Account   `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Trace   model.TraceRef  `json:"trace"`
}

// PnLCategory groups P&L rows under one account category.
type PnLCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Accounts []PnLRow        `json:"accounts"`
	Trace    model.TraceRef  `json:"trace"`
}

// PnLGroup is the income or expense side of the P&L.
type PnLGroup struct {
	Type       model.AccountType `json:"type"`
	Total      decimal.Decimal   `json:"total"`
	Categories []PnLCategory     `json:"categories"`
	Trace      model.TraceRef    `json:"trace"`
}

// ProfitLossGroups holds the income and expense sides.
type ProfitLossGroups struct {
	Income  PnLGroup `json:"income"`
	Expense PnLGroup `json:"expense"`
}

// ProfitLossTotals holds income, expense and net profit.
type ProfitLossTotals struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

// ProfitLossReport is the profit & loss statement for a period.
type ProfitLossReport struct {
	RawRows     []model.JournalRow `json:"raw_rows"`
	Grouped     ProfitLossGroups   `json:"grouped"`
	Totals      ProfitLossTotals   `json:"totals"`
	Validations BalanceValidations `json:"validations"`
}

// ProfitLoss nets income and expense rows dated within p, grouped by
// category and then by account. Amounts are positive on the normal side:
// credit-debit for income, debit-credit for expense.
func ProfitLoss(rows []model.JournalRow, p model.Period) ProfitLossReport {
	current := period.FilterByPeriod(rows, p)

	income := pnlGroup(model.AccountTypeIncome, current)
	expense := pnlGroup(model.AccountTypeExpense, current)
	net := income.Total.Sub(expense.Total)

	return ProfitLossReport{
		RawRows: current,
		Grouped: ProfitLossGroups{Income: income, Expense: expense},
		Totals: ProfitLossTotals{
			Income:    income.Total,
			Expense:   expense.Total,
			NetProfit: net,
		},
		Validations: BalanceValidations{
			IsBalanced: income.Total.Sub(expense.Total).Equal(net),
		},
	}
}

func pnlGroup(t model.AccountType, rows []model.JournalRow) PnLGroup {
	side := t.NormalSide()
	categories := newRowIndex()
	for _, r := range rows {
		if r.Type() != t {
			continue
		}
		label := r.AccountCategory
		if label == "" {
			label = UncategorizedLabel
		}
		categories.add(label, r)
	}

	g := PnLGroup{Type: t, Total: decimal.Zero, Categories: make([]PnLCategory, 0, len(categories.keys))}
	var trace model.TraceBuilder
	for _, label := range categories.keys {
		catRows := categories.get(label)
		cat := PnLCategory{Category: label, Amount: decimal.Zero, Trace: model.TraceFromRows(catRows)}

		accounts := indexByAccount(catRows)
		for _, key := range accounts.keys {
			accRows := accounts.get(key)
			row := PnLRow{Account: accRows[0].Account(), Amount: decimal.Zero, Trace: model.TraceFromRows(accRows)}
			for _, r := range accRows {
				row.Amount = row.Amount.Add(side.Net(r.Debit, r.Credit))
			}
			cat.Amount = cat.Amount.Add(row.Amount)
			cat.Accounts = append(cat.Accounts, row)
		}
		sortByAccount(cat.Accounts, func(r PnLRow) model.Account { return r.Account })

		g.Total = g.Total.Add(cat.Amount)
		trace.Merge(cat.Trace)
		g.Categories = append(g.Categories, cat)
	}
	sortByLabel(g.Categories,
		func(c PnLCategory) string { return c.Category },
		func(c PnLCategory) string { return c.Category })
	g.Trace = trace.Ref()
	return g
}
