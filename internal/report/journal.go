package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// NoHeaderKey groups rows that carry no journal_header_id.
const NoHeaderKey = "(no-header)"

// JournalEntry is one journal header with its lines.
type JournalEntry struct {
	JournalHeaderID string             `json:"journal_header_id"`
	Date            model.Date         `json:"date"`
	Description     string             `json:"description"`
	Lines           []model.JournalRow `json:"lines"`
	TotalDebit      decimal.Decimal    `json:"total_debit"`
	TotalCredit     decimal.Decimal    `json:"total_credit"`
	IsBalanced      bool               `json:"is_balanced"`
	Trace           model.TraceRef     `json:"trace"`
}

// JournalRegisterGroups holds the register entries in order.
type JournalRegisterGroups struct {
	Entries []JournalEntry `json:"entries"`
}

// JournalTotals sums the register.
type JournalTotals struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	EntryCount  int             `json:"entry_count"`
}

// JournalRegisterReport lists every journal entry with its lines.
type JournalRegisterReport struct {
	RawRows     []model.JournalRow    `json:"raw_rows"`
	Grouped     JournalRegisterGroups `json:"grouped"`
	Totals      JournalTotals         `json:"totals"`
	Validations BalanceValidations    `json:"validations"`
}

// JournalRegister groups rows into journal entries by header id. Lines keep
// their input order; entries are ordered by date, then header id.
func JournalRegister(rows []model.JournalRow) JournalRegisterReport {
	entries := journalEntries(rows)

	out := JournalRegisterReport{
		RawRows: rows,
		Grouped: JournalRegisterGroups{Entries: entries},
		Totals: JournalTotals{
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
			EntryCount:  len(entries),
		},
	}
	for _, e := range entries {
		out.Totals.TotalDebit = out.Totals.TotalDebit.Add(e.TotalDebit)
		out.Totals.TotalCredit = out.Totals.TotalCredit.Add(e.TotalCredit)
	}
	out.Validations.IsBalanced = IsBalanced(out.Totals.TotalDebit, out.Totals.TotalCredit)
	return out
}

func journalEntries(rows []model.JournalRow) []JournalEntry {
	headers := newRowIndex()
	for _, r := range rows {
		key := r.JournalHeaderID
		if key == "" {
			key = NoHeaderKey
		}
		headers.add(key, r)
	}

	entries := make([]JournalEntry, 0, len(headers.keys))
	for _, key := range headers.keys {
		lines := headers.get(key)
		e := JournalEntry{
			JournalHeaderID: key,
			Description:     lines[0].Description,
			Lines:           lines,
			TotalDebit:      sumDebit(lines),
			TotalCredit:     sumCredit(lines),
			Trace:           model.TraceFromRows(lines),
		}
		for _, l := range lines {
			if !l.TransactionDate.IsZero() {
				e.Date = l.TransactionDate
				break
			}
		}
		e.IsBalanced = IsBalanced(e.TotalDebit, e.TotalCredit)
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].Date.Compare(entries[j].Date); c != 0 {
			return c < 0
		}
		return strings.Compare(entries[i].JournalHeaderID, entries[j].JournalHeaderID) < 0
	})
	return entries
}

// AuditLine is a journal line with its own trace.
type AuditLine struct {
	model.JournalRow
	Trace model.TraceRef `json:"trace"`
}

// AuditEntry is one journal header with its lines in audit order.
type AuditEntry struct {
	JournalHeaderID string          `json:"journal_header_id"`
	Date            model.Date      `json:"date"`
	Description     string          `json:"description"`
	Lines           []AuditLine     `json:"lines"`
	TotalDebit      decimal.Decimal `json:"total_debit"`
	TotalCredit     decimal.Decimal `json:"total_credit"`
	IsBalanced      bool            `json:"is_balanced"`
	Trace           model.TraceRef  `json:"trace"`
}

// AuditTrailGroups holds the audit entries in order.
type AuditTrailGroups struct {
	Entries []AuditEntry `json:"entries"`
}

// AuditTrailReport is the line-level audit trail.
type AuditTrailReport struct {
	RawRows     []model.JournalRow `json:"raw_rows"`
	Grouped     AuditTrailGroups   `json:"grouped"`
	Totals      JournalTotals      `json:"totals"`
	Validations BalanceValidations `json:"validations"`
}

// AuditTrail is the journal register with line-level drill-down: every line
// carries the trace back to its own row, and lines within an entry are in
// date, header, row order.
func AuditTrail(rows []model.JournalRow) AuditTrailReport {
	register := JournalRegister(rows)
	entries := make([]AuditEntry, 0, len(register.Grouped.Entries))
	for _, e := range register.Grouped.Entries {
		sorted := period.SortRows(e.Lines)
		lines := make([]AuditLine, 0, len(sorted))
		for _, r := range sorted {
			lines = append(lines, AuditLine{JournalRow: r, Trace: model.TraceFromRows([]model.JournalRow{r})})
		}
		entries = append(entries, AuditEntry{
			JournalHeaderID: e.JournalHeaderID,
			Date:            e.Date,
			Description:     e.Description,
			Lines:           lines,
			TotalDebit:      e.TotalDebit,
			TotalCredit:     e.TotalCredit,
			IsBalanced:      e.IsBalanced,
			Trace:           e.Trace,
		})
	}
	return AuditTrailReport{
		RawRows:     register.RawRows,
		Grouped:     AuditTrailGroups{Entries: entries},
		Totals:      register.Totals,
		Validations: register.Validations,
	}
}
