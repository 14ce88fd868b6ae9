package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// ComparativeRow compares one label across two periods. VariancePct is nil
// when the previous value is zero.
type ComparativeRow struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Current     decimal.Decimal  `json:"current"`
	Previous    decimal.Decimal  `json:"previous"`
	Variance    decimal.Decimal  `json:"variance"`
	VariancePct *decimal.Decimal `json:"variance_pct"`
}

// NewComparativeRow computes the variance of current against previous.
func NewComparativeRow(key, label string, current, previous decimal.Decimal) ComparativeRow {
	variance := current.Sub(previous)
	row := ComparativeRow{Key: key, Label: label, Current: current, Previous: previous, Variance: variance}
	if !previous.IsZero() {
		pct := variance.Div(previous.Abs())
		row.VariancePct = &pct
	}
	return row
}

// ComparativeSection is a labelled block of comparative rows with its total.
type ComparativeSection struct {
	Label string           `json:"label"`
	Rows  []ComparativeRow `json:"rows"`
	Total ComparativeRow   `json:"total"`
}

// ComparativeProfitLossReport sets a period's P&L beside the previous period's.
type ComparativeProfitLossReport struct {
	Income         ComparativeSection `json:"income"`
	Expense        ComparativeSection `json:"expense"`
	NetProfit      ComparativeRow     `json:"net_profit"`
	CurrentPeriod  model.Period       `json:"current_period"`
	PreviousPeriod model.Period       `json:"previous_period"`
}

// ComparativeBalanceSheetTotals compares the balance sheet side totals.
type ComparativeBalanceSheetTotals struct {
	Assets                ComparativeRow `json:"assets"`
	Liabilities           ComparativeRow `json:"liabilities"`
	Equity                ComparativeRow `json:"equity"`
	LiabilitiesPlusEquity ComparativeRow `json:"liabilities_plus_equity"`
}

// ComparativeBalanceSheetReport sets two balance sheets side by side.
type ComparativeBalanceSheetReport struct {
	Assets       ComparativeSection            `json:"assets"`
	Liabilities  ComparativeSection            `json:"liabilities"`
	Equity       ComparativeSection            `json:"equity"`
	Totals       ComparativeBalanceSheetTotals `json:"totals"`
	CurrentAsOf  model.Date                    `json:"current_as_of"`
	PreviousAsOf model.Date                    `json:"previous_as_of"`
}

// ComparativeProfitLoss joins two profit and loss reports by category label.
func ComparativeProfitLoss(cur, prev ProfitLossReport, curPeriod, prevPeriod model.Period) ComparativeProfitLossReport {
	return ComparativeProfitLossReport{
		Income:  pnlSection("Income", string(model.AccountTypeIncome), cur.Grouped.Income, prev.Grouped.Income),
		Expense: pnlSection("Expense", string(model.AccountTypeExpense), cur.Grouped.Expense, prev.Grouped.Expense),
		NetProfit: NewComparativeRow("net_profit", "Net Profit",
			cur.Totals.NetProfit, prev.Totals.NetProfit),
		CurrentPeriod:  curPeriod,
		PreviousPeriod: prevPeriod,
	}
}

func pnlSection(label, key string, cur, prev PnLGroup) ComparativeSection {
	var j labelJoin
	for _, c := range cur.Categories {
		j.addCurrent(c.Category, c.Amount)
	}
	for _, c := range prev.Categories {
		j.addPrevious(c.Category, c.Amount)
	}
	return j.section(label, key, cur.Total, prev.Total)
}

// ComparativeBalanceSheet joins two balance sheets by account name. Accounts
// sharing a name on one side are summed.
func ComparativeBalanceSheet(cur, prev BalanceSheetReport) ComparativeBalanceSheetReport {
	section := func(label, key string, c, p []BalanceSheetRow) ComparativeSection {
		var j labelJoin
		for _, r := range c {
			j.addCurrent(r.Account.Name, r.Balance)
		}
		for _, r := range p {
			j.addPrevious(r.Account.Name, r.Balance)
		}
		return j.section(label, key, sumBalances(c), sumBalances(p))
	}
	total := func(label string, c, p decimal.Decimal) ComparativeRow {
		return NewComparativeRow(label, label, c, p)
	}

	ct, pt := cur.Totals, prev.Totals
	return ComparativeBalanceSheetReport{
		Assets:      section("Assets", "assets", cur.Grouped.Assets(), prev.Grouped.Assets()),
		Liabilities: section("Liabilities", "liabilities", cur.Grouped.Liabilities(), prev.Grouped.Liabilities()),
		Equity:      section("Equity", "equity", cur.Grouped.Equity, prev.Grouped.Equity),
		Totals: ComparativeBalanceSheetTotals{
			Assets:                total("Total Assets", ct.Assets, pt.Assets),
			Liabilities:           total("Total Liabilities", ct.Liabilities, pt.Liabilities),
			Equity:                total("Total Equity", ct.Equity, pt.Equity),
			LiabilitiesPlusEquity: total("Liabilities + Equity", ct.LiabilitiesPlusEquity, pt.LiabilitiesPlusEquity),
		},
		CurrentAsOf:  cur.AsOf,
		PreviousAsOf: prev.AsOf,
	}
}

// labelJoin is a full outer join of two labelled amount lists. A label
// missing on one side counts as zero there.
type labelJoin struct {
	labels   []string
	current  map[string]decimal.Decimal
	previous map[string]decimal.Decimal
}

func (j *labelJoin) track(label string) {
	if j.current == nil {
		j.current = make(map[string]decimal.Decimal)
		j.previous = make(map[string]decimal.Decimal)
	}
	_, inCur := j.current[label]
	_, inPrev := j.previous[label]
	if !inCur && !inPrev {
		j.labels = append(j.labels, label)
		j.current[label] = decimal.Zero
		j.previous[label] = decimal.Zero
	}
}

func (j *labelJoin) addCurrent(label string, v decimal.Decimal) {
	j.track(label)
	j.current[label] = j.current[label].Add(v)
}

func (j *labelJoin) addPrevious(label string, v decimal.Decimal) {
	j.track(label)
	j.previous[label] = j.previous[label].Add(v)
}

func (j *labelJoin) section(label, key string, curTotal, prevTotal decimal.Decimal) ComparativeSection {
	rows := make([]ComparativeRow, 0, len(j.labels))
	for _, l := range j.labels {
		rows = append(rows, NewComparativeRow(l, l, j.current[l], j.previous[l]))
	}
	sortByLabel(rows,
		func(r ComparativeRow) string { return r.Label },
		func(r ComparativeRow) string { return r.Key })
	return ComparativeSection{
		Label: label,
		Rows:  rows,
		Total: NewComparativeRow(key+"_total", "Total "+label, curTotal, prevTotal),
	}
}
