package report

import "strings"

// Balance sheet groups.
const (
	GroupCurrentAssets           = "Current Assets"
	GroupNonCurrentAssets        = "Non-Current Assets"
	GroupUnclassifiedAssets      = "Unclassified Assets"
	GroupShortTermLiabilities    = "Short-Term Liabilities"
	GroupLongTermLiabilities     = "Long-Term Liabilities"
	GroupUnclassifiedLiabilities = "Unclassified Liabilities"
	GroupEquity                  = "Equity"
)

// Cashflow activity buckets.
const (
	ActivityOperating     = "operating"
	ActivityInvesting     = "investing"
	ActivityFinancing     = "financing"
	ActivityUncategorized = "uncategorized"
)

// keywordRule assigns bucket to any text containing one of tokens.
type keywordRule struct {
	bucket string
	tokens []string
}

// Rules are tried in order. Negated and longer forms come first so that
// "tidak lancar" is not captured by "lancar", nor "non-current" by "current".
var (
	assetRules = []keywordRule{
		{GroupNonCurrentAssets, []string{"tidak lancar", "non-current", "noncurrent", "non current", "tetap", "fixed"}},
		{GroupCurrentAssets, []string{"lancar", "current"}},
	}
	liabilityRules = []keywordRule{
		{GroupLongTermLiabilities, []string{"panjang", "long", "tidak lancar", "non-current", "noncurrent", "non current"}},
		{GroupShortTermLiabilities, []string{"pendek", "short", "lancar", "current"}},
	}
	cashflowRules = []keywordRule{
		{ActivityOperating, []string{"operat", "operasi"}},
		{ActivityInvesting, []string{"invest"}},
		{ActivityFinancing, []string{"financ", "fund", "pendanaan"}},
	}
)

// classify returns the first rule bucket matched by any of texts, trying
// texts in order, or fallback when nothing matches. Matching is a
// case-insensitive substring test.
func classify(rules []keywordRule, fallback string, texts ...string) string {
	for _, text := range texts {
		t := strings.ToLower(text)
		if strings.TrimSpace(t) == "" {
			continue
		}
		for _, rule := range rules {
			for _, token := range rule.tokens {
				if strings.Contains(t, token) {
					return rule.bucket
				}
			}
		}
	}
	return fallback
}

// ClassifyAsset buckets an asset account by its grouping hint, then its category.
func ClassifyAsset(hint, category string) string {
	return classify(assetRules, GroupUnclassifiedAssets, hint, category)
}

// ClassifyLiability buckets a liability account by its grouping hint, then its category.
func ClassifyLiability(hint, category string) string {
	return classify(liabilityRules, GroupUnclassifiedLiabilities, hint, category)
}

// ClassifyActivity buckets free-text cashflow activity.
func ClassifyActivity(activity string) string {
	return classify(cashflowRules, ActivityUncategorized, activity)
}
