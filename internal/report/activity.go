package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// TopLineCount is how many of the largest lines the activity summary keeps.
const TopLineCount = 10

// TypeActivity counts lines and sums movement per account type.
type TypeActivity struct {
	Type   string          `json:"type"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Lines  int             `json:"lines"`
}

// CategoryActivity counts lines and sums movement per account category.
type CategoryActivity struct {
	Category   string          `json:"category"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Lines      int             `json:"lines"`
	SampleType string          `json:"sample_type"`
}

// TopLine is a journal line ranked by its magnitude.
type TopLine struct {
	model.JournalRow
	Magnitude decimal.Decimal `json:"magnitude"`
}

// ActivitySummary is the account activity overview of a row set.
type ActivitySummary struct {
	UniqueAccounts int                `json:"unique_accounts"`
	ByType         []TypeActivity     `json:"by_type"`
	ByCategory     []CategoryActivity `json:"by_category"`
	Top10Lines     []TopLine          `json:"top10_lines"`
}

// AccountActivity summarises rows by account type and category and picks
// the largest lines by max(debit, credit). Ties keep input order.
func AccountActivity(rows []model.JournalRow) ActivitySummary {
	accounts := make(map[string]struct{})
	types := newRowIndex()
	categories := newRowIndex()
	top := make([]TopLine, 0, len(rows))

	for _, r := range rows {
		accounts[r.AccountKey()] = struct{}{}
		types.add(typeLabel(r), r)
		category := r.AccountCategory
		if category == "" {
			category = UncategorizedLabel
		}
		categories.add(category, r)
		top = append(top, TopLine{JournalRow: r, Magnitude: r.Magnitude()})
	}

	byType := make([]TypeActivity, 0, len(types.keys))
	for _, t := range types.keys {
		lines := types.get(t)
		byType = append(byType, TypeActivity{Type: t, Debit: sumDebit(lines), Credit: sumCredit(lines), Lines: len(lines)})
	}
	sortByLabel(byType,
		func(a TypeActivity) string { return a.Type },
		func(a TypeActivity) string { return a.Type })

	byCategory := make([]CategoryActivity, 0, len(categories.keys))
	for _, c := range categories.keys {
		lines := categories.get(c)
		byCategory = append(byCategory, CategoryActivity{
			Category:   c,
			Debit:      sumDebit(lines),
			Credit:     sumCredit(lines),
			Lines:      len(lines),
			SampleType: typeLabel(lines[0]),
		})
	}
	sortByLabel(byCategory,
		func(a CategoryActivity) string { return a.Category },
		func(a CategoryActivity) string { return a.Category })

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Magnitude.GreaterThan(top[j].Magnitude)
	})
	if len(top) > TopLineCount {
		top = top[:TopLineCount]
	}

	return ActivitySummary{
		UniqueAccounts: len(accounts),
		ByType:         byType,
		ByCategory:     byCategory,
		Top10Lines:     top,
	}
}

func typeLabel(r model.JournalRow) string {
	t := strings.ToLower(strings.TrimSpace(r.AccountType))
	if t == "" {
		return model.UnknownAccountKey
	}
	return t
}
