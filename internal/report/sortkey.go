package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// labelOrder compares display labels the way a reader expects ("bank" next to
// "Bank"), falling back to a byte comparison so the order is total.
// A collator is not safe for concurrent use, so each sort builds its own.
type labelOrder struct {
	c *collate.Collator
}

func newLabelOrder() labelOrder {
	return labelOrder{c: collate.New(language.Und)}
}

func (o labelOrder) compare(a, b string) int {
	if c := o.c.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// sortByLabel sorts items in place by label, then by id.
func sortByLabel[T any](items []T, label func(T) string, id func(T) string) {
	o := newLabelOrder()
	sort.SliceStable(items, func(i, j int) bool {
		if c := o.compare(label(items[i]), label(items[j])); c != 0 {
			return c < 0
		}
		return id(items[i]) < id(items[j])
	})
}

func sortByAccount[T any](items []T, account func(T) model.Account) {
	sortByLabel(items,
		func(t T) string { return account(t).Name },
		func(t T) string { return account(t).ID })
}

func sortStrings(items []string) {
	sortByLabel(items, func(s string) string { return s }, func(s string) string { return s })
}
