package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// accountRollup is the per-account opening/movement/closing figure shared by
// the ledger, trial balance and account movement reports.
type accountRollup struct {
	account model.Account
	side    model.NormalSide
	opening decimal.Decimal
	debit   decimal.Decimal
	credit  decimal.Decimal
	lines   int
	current []model.JournalRow
	trace   model.TraceRef
}

func (a *accountRollup) movement() decimal.Decimal {
	return a.side.Net(a.debit, a.credit)
}

func (a *accountRollup) closing() decimal.Decimal {
	return a.opening.Add(a.movement())
}

// rollupAccounts covers every account present anywhere in rows, so accounts
// without activity in p still report their opening and closing balances.
// Account details come from the first row seen for each account id.
func rollupAccounts(rows []model.JournalRow, p model.Period) []*accountRollup {
	byKey := make(map[string]*accountRollup)
	var out []*accountRollup
	for _, r := range rows {
		key := r.AccountKey()
		if _, ok := byKey[key]; ok {
			continue
		}
		acc := r.Account()
		a := &accountRollup{
			account: acc,
			side:    acc.AccountType().NormalSide(),
			opening: decimal.Zero,
			debit:   decimal.Zero,
			credit:  decimal.Zero,
		}
		byKey[key] = a
		out = append(out, a)
	}

	for _, r := range period.OpeningRows(rows, p) {
		a := byKey[r.AccountKey()]
		a.opening = a.opening.Add(a.side.Net(r.Debit, r.Credit))
	}

	for _, r := range period.FilterByPeriod(rows, p) {
		a := byKey[r.AccountKey()]
		a.debit = a.debit.Add(r.Debit)
		a.credit = a.credit.Add(r.Credit)
		a.lines++
		a.current = append(a.current, r)
	}

	for _, a := range out {
		a.trace = model.TraceFromRows(a.current)
	}

	sortByAccount(out, func(a *accountRollup) model.Account { return a.account })
	return out
}
