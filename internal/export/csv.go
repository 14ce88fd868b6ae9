package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/report"
)

// TrialBalanceHeader is the CSV header of the trial balance export.
const TrialBalanceHeader = "account_id,account_name,account_type,opening_balance,debit,credit,closing_balance,closing_debit,closing_credit,journal_lines"

// TotalsLabel marks the trailing totals row.
const TotalsLabel = "TOTAL"

const (
	numFields      = 10
	colAcctID      = 0
	colAcctName    = 1
	colAcctType    = 2
	colOpening     = 3
	colDebit       = 4
	colCredit      = 5
	colClosing     = 6
	colClosingDr   = 7
	colClosingCr   = 8
	colJournalRows = 9
)

// WriteTrialBalanceCSV writes the trial balance rows of res followed by a
// totals row.
func WriteTrialBalanceCSV(w io.Writer, res report.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TrialBalanceHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	tb := res.Models.TrialBalance
	for i, row := range tb.Grouped.Rows {
		if err := cw.Write(MarshalTrialBalanceRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := cw.Write(marshalTotals(tb.Totals)); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTrialBalanceRow converts a trial balance row to a CSV record.
func MarshalTrialBalanceRow(r report.TrialBalanceRow) []string {
	row := make([]string, numFields)
	row[colAcctID] = r.Account.ID
	row[colAcctName] = r.Account.Name
	row[colAcctType] = r.Account.Type
	row[colOpening] = r.OpeningBalance.StringFixed(2)
	row[colDebit] = r.Debit.StringFixed(2)
	row[colCredit] = r.Credit.StringFixed(2)
	row[colClosing] = r.ClosingBalance.StringFixed(2)
	row[colClosingDr] = r.ClosingDebit.StringFixed(2)
	row[colClosingCr] = r.ClosingCredit.StringFixed(2)
	row[colJournalRows] = strconv.Itoa(r.JournalLines)
	return row
}

func marshalTotals(t report.TrialBalanceTotals) []string {
	row := make([]string, numFields)
	row[colAcctName] = TotalsLabel
	row[colOpening] = t.OpeningBalance.StringFixed(2)
	row[colDebit] = t.Debit.StringFixed(2)
	row[colCredit] = t.Credit.StringFixed(2)
	row[colClosing] = t.ClosingBalance.StringFixed(2)
	row[colClosingDr] = t.ClosingDebit.StringFixed(2)
	row[colClosingCr] = t.ClosingCredit.StringFixed(2)
	return row
}
