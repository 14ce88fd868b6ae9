package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// Row sources on the balance sheet.
const (
	SourceAccount          = "account"
	SourceRetainedEarnings = "retained_earnings"
)

// RetainedEarningsAccountID identifies the computed retained earnings line.
const RetainedEarningsAccountID = "retained_earnings"

// BalanceSheetRow is one account, or the retained earnings line, on the balance sheet.
type BalanceSheetRow struct {
	Account model.Account   `json:"account"`
	Group   string          `json:"group"`
	Balance decimal.Decimal `json:"balance"`
	Source  string          `json:"source"`
	Trace   model.TraceRef  `json:"trace"`
}

// BalanceSheetGroups buckets balance sheet rows by classification.
type BalanceSheetGroups struct {
	AssetsCurrent            []BalanceSheetRow `json:"assets_current"`
	AssetsNonCurrent         []BalanceSheetRow `json:"assets_noncurrent"`
	AssetsUncategorized      []BalanceSheetRow `json:"assets_uncategorized"`
	LiabilitiesShort         []BalanceSheetRow `json:"liabilities_short"`
	LiabilitiesLong          []BalanceSheetRow `json:"liabilities_long"`
	LiabilitiesUncategorized []BalanceSheetRow `json:"liabilities_uncategorized"`
	Equity                   []BalanceSheetRow `json:"equity"`
}

// Assets returns every asset row, current first.
func (g BalanceSheetGroups) Assets() []BalanceSheetRow {
	return concatRows(g.AssetsCurrent, g.AssetsNonCurrent, g.AssetsUncategorized)
}

// Liabilities returns every liability row, short-term first.
func (g BalanceSheetGroups) Liabilities() []BalanceSheetRow {
	return concatRows(g.LiabilitiesShort, g.LiabilitiesLong, g.LiabilitiesUncategorized)
}

// BalanceSheetTotals holds the side totals and their difference.
type BalanceSheetTotals struct {
	Assets                decimal.Decimal `json:"assets"`
	Liabilities           decimal.Decimal `json:"liabilities"`
	Equity                decimal.Decimal `json:"equity"`
	LiabilitiesPlusEquity decimal.Decimal `json:"liabilities_plus_equity"`
	BalanceDiff           decimal.Decimal `json:"balance_diff"`
}

// RetainedEarnings is cumulative income minus expense up to the cutoff.
type RetainedEarnings struct {
	Amount decimal.Decimal `json:"amount"`
	Trace  model.TraceRef  `json:"trace"`
}

// BalanceSheetReport is the balance sheet as of one date.
type BalanceSheetReport struct {
	AsOf             model.Date         `json:"as_of"`
	RawRows          []model.JournalRow `json:"raw_rows"`
	Grouped          BalanceSheetGroups `json:"grouped"`
	Totals           BalanceSheetTotals `json:"totals"`
	Validations      BalanceValidations `json:"validations"`
	RetainedEarnings RetainedEarnings   `json:"retained_earnings"`
}

// BalanceSheet snapshots asset, liability and equity balances from every row
// dated on or before asOf. Retained earnings are computed from income and
// expense rows over the same range and shown under equity when non-zero.
func BalanceSheet(rows []model.JournalRow, asOf model.Date) BalanceSheetReport {
	snapshot := period.FilterAsOf(rows, asOf)

	g := BalanceSheetGroups{
		AssetsCurrent:            []BalanceSheetRow{},
		AssetsNonCurrent:         []BalanceSheetRow{},
		AssetsUncategorized:      []BalanceSheetRow{},
		LiabilitiesShort:         []BalanceSheetRow{},
		LiabilitiesLong:          []BalanceSheetRow{},
		LiabilitiesUncategorized: []BalanceSheetRow{},
		Equity:                   []BalanceSheetRow{},
	}

	accounts := indexByAccount(snapshot)
	for _, key := range accounts.keys {
		accRows := accounts.get(key)
		acc := accRows[0].Account()
		t := acc.AccountType()
		if !t.IsBalanceSheet() {
			continue
		}
		row := BalanceSheetRow{
			Account: acc,
			Balance: model.BalanceFromRows(accRows, t),
			Source:  SourceAccount,
			Trace:   model.TraceFromRows(accRows),
		}
		switch t {
		case model.AccountTypeAsset:
			row.Group = ClassifyAsset(acc.GroupingHint(), acc.Category)
			switch row.Group {
			case GroupCurrentAssets:
				g.AssetsCurrent = append(g.AssetsCurrent, row)
			case GroupNonCurrentAssets:
				g.AssetsNonCurrent = append(g.AssetsNonCurrent, row)
			default:
				g.AssetsUncategorized = append(g.AssetsUncategorized, row)
			}
		case model.AccountTypeLiability:
			row.Group = ClassifyLiability(acc.GroupingHint(), acc.Category)
			switch row.Group {
			case GroupShortTermLiabilities:
				g.LiabilitiesShort = append(g.LiabilitiesShort, row)
			case GroupLongTermLiabilities:
				g.LiabilitiesLong = append(g.LiabilitiesLong, row)
			default:
				g.LiabilitiesUncategorized = append(g.LiabilitiesUncategorized, row)
			}
		case model.AccountTypeEquity:
			row.Group = GroupEquity
			g.Equity = append(g.Equity, row)
		}
	}

	byAccount := func(r BalanceSheetRow) model.Account { return r.Account }
	for _, bucket := range [][]BalanceSheetRow{
		g.AssetsCurrent, g.AssetsNonCurrent, g.AssetsUncategorized,
		g.LiabilitiesShort, g.LiabilitiesLong, g.LiabilitiesUncategorized, g.Equity,
	} {
		sortByAccount(bucket, byAccount)
	}

	retained := retainedEarnings(snapshot)
	if !retained.Amount.IsZero() {
		g.Equity = append(g.Equity, retainedEarningsRow(retained))
	}

	assets := sumBalances(g.Assets())
	liabilities := sumBalances(g.Liabilities())
	equity := sumBalances(g.Equity)
	liabPlusEquity := liabilities.Add(equity)
	diff := assets.Sub(liabPlusEquity)

	return BalanceSheetReport{
		AsOf:    asOf,
		RawRows: snapshot,
		Grouped: g,
		Totals: BalanceSheetTotals{
			Assets:                assets,
			Liabilities:           liabilities,
			Equity:                equity,
			LiabilitiesPlusEquity: liabPlusEquity,
			BalanceDiff:           diff,
		},
		Validations:      BalanceValidations{IsBalanced: IsCloseToZero(diff)},
		RetainedEarnings: retained,
	}
}

func retainedEarnings(rows []model.JournalRow) RetainedEarnings {
	income, expense := decimal.Zero, decimal.Zero
	var trace model.TraceBuilder
	for _, r := range rows {
		if !r.Type().IsProfitLoss() {
			continue
		}
		if r.Type() == model.AccountTypeIncome {
			income = income.Add(r.Credit.Sub(r.Debit))
		} else {
			expense = expense.Add(r.Debit.Sub(r.Credit))
		}
		trace.AddRow(r)
	}
	return RetainedEarnings{Amount: income.Sub(expense), Trace: trace.Ref()}
}

func retainedEarningsRow(re RetainedEarnings) BalanceSheetRow {
	hint := "Retained Earnings"
	return BalanceSheetRow{
		Account: model.Account{
			ID:             RetainedEarningsAccountID,
			Name:           "Retained Earnings (Auto)",
			Category:       "Equity",
			Type:           string(model.AccountTypeEquity),
			KelompokNeraca: &hint,
		},
		Group:   GroupEquity,
		Balance: re.Amount,
		Source:  SourceRetainedEarnings,
		Trace:   re.Trace,
	}
}

func sumBalances(rows []BalanceSheetRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Balance)
	}
	return total
}

func concatRows(parts ...[]BalanceSheetRow) []BalanceSheetRow {
	var out []BalanceSheetRow
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
