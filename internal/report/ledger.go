package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// LedgerEntry is one posted line with the account's running balance after it.
type LedgerEntry struct {
	TransactionDate model.Date      `json:"transaction_date"`
	JournalHeaderID string          `json:"journal_header_id"`
	RowID           string          `json:"row_id"`
	Description     string          `json:"description"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Balance         decimal.Decimal `json:"balance"`
	Trace           model.TraceRef  `json:"trace"`
}

// LedgerDay groups an account's entries for one date.
type LedgerDay struct {
	Date      model.Date      `json:"date"`
	Entries   []LedgerEntry   `json:"entries"`
	DayDebit  decimal.Decimal `json:"day_debit"`
	DayCredit decimal.Decimal `json:"day_credit"`
	DayNet    decimal.Decimal `json:"day_net"`
	Trace     model.TraceRef  `json:"trace"`
}

// LedgerAccount is one account's ledger with opening and closing balances.
type LedgerAccount struct {
	Account        model.Account   `json:"account"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	Days           []LedgerDay     `json:"days"`
	Trace          model.TraceRef  `json:"trace"`
}

// LedgerGroups holds the ledger accounts in account order.
type LedgerGroups struct {
	Accounts []LedgerAccount `json:"accounts"`
}

// LedgerTotals sums in-period debits and credits.
type LedgerTotals struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// GeneralLedgerReport is the general ledger for a period.
type GeneralLedgerReport struct {
	RawRows     []model.JournalRow `json:"raw_rows"`
	Grouped     LedgerGroups       `json:"grouped"`
	Totals      LedgerTotals       `json:"totals"`
	Validations BalanceValidations `json:"validations"`
}

// GeneralLedger lists each account's period entries by day. The running
// balance starts at the opening balance and advances row by row in date,
// header id, row id order.
func GeneralLedger(rows []model.JournalRow, p model.Period) GeneralLedgerReport {
	rollups := rollupAccounts(rows, p)

	out := GeneralLedgerReport{
		RawRows: period.FilterByPeriod(rows, p),
		Grouped: LedgerGroups{Accounts: make([]LedgerAccount, 0, len(rollups))},
		Totals:  LedgerTotals{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero},
	}

	for _, a := range rollups {
		acc := ledgerAccount(a)
		out.Grouped.Accounts = append(out.Grouped.Accounts, acc)
		out.Totals.TotalDebit = out.Totals.TotalDebit.Add(acc.TotalDebit)
		out.Totals.TotalCredit = out.Totals.TotalCredit.Add(acc.TotalCredit)
	}

	out.Validations.IsBalanced = IsBalanced(out.Totals.TotalDebit, out.Totals.TotalCredit)
	return out
}

func ledgerAccount(a *accountRollup) LedgerAccount {
	running := a.opening
	var days []*LedgerDay
	byDate := make(map[model.Date]*LedgerDay)
	dayTraces := make(map[model.Date]*model.TraceBuilder)

	for _, r := range period.SortRows(a.current) {
		running = running.Add(a.side.Net(r.Debit, r.Credit))

		day, ok := byDate[r.TransactionDate]
		if !ok {
			day = &LedgerDay{
				Date:      r.TransactionDate,
				DayDebit:  decimal.Zero,
				DayCredit: decimal.Zero,
				DayNet:    decimal.Zero,
			}
			byDate[r.TransactionDate] = day
			days = append(days, day)
			dayTraces[r.TransactionDate] = &model.TraceBuilder{}
		}
		entryTrace := model.TraceFromRows([]model.JournalRow{r})
		day.Entries = append(day.Entries, LedgerEntry{
			TransactionDate: r.TransactionDate,
			JournalHeaderID: r.JournalHeaderID,
			RowID:           r.RowID,
			Description:     r.Description,
			Debit:           r.Debit,
			Credit:          r.Credit,
			Balance:         running,
			Trace:           entryTrace,
		})
		day.DayDebit = day.DayDebit.Add(r.Debit)
		day.DayCredit = day.DayCredit.Add(r.Credit)
		day.DayNet = day.DayNet.Add(a.side.Net(r.Debit, r.Credit))
		dayTraces[r.TransactionDate].Merge(entryTrace)
	}

	for _, day := range days {
		day.Trace = dayTraces[day.Date].Ref()
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	acc := LedgerAccount{
		Account:        a.account,
		OpeningBalance: a.opening,
		ClosingBalance: running,
		TotalDebit:     a.debit,
		TotalCredit:    a.credit,
		Days:           make([]LedgerDay, 0, len(days)),
		Trace:          a.trace,
	}
	for _, day := range days {
		acc.Days = append(acc.Days, *day)
	}
	return acc
}
