package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tolerance is the epsilon used by every balance check.
var Tolerance = decimal.New(1, -4)

// IsCloseToZero reports whether |v| is below Tolerance.
func IsCloseToZero(v decimal.Decimal) bool {
	return v.Abs().LessThan(Tolerance)
}

// IsBalanced reports whether debits and credits agree within Tolerance.
func IsBalanced(totalDebit, totalCredit decimal.Decimal) bool {
	return IsCloseToZero(totalDebit.Sub(totalCredit))
}

// ValidationError describes one failed validation flag in a built report.
// Failed flags are data: they never stop a build.
type ValidationError struct {
	Report      string
	Check       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Report, e.Check, e.Description)
}

// Validate collects every validation flag that came out false.
func (r Result) Validate() []ValidationError {
	var errs []ValidationError
	add := func(ok bool, report, check, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Report: report, Check: check, Description: fmt.Sprintf(format, args...)})
		}
	}

	m := r.Models
	add(r.Checks.IsBalanced, "checks", "is_balanced",
		"debits (%s) != credits (%s)", r.Checks.TotalDebit, r.Checks.TotalCredit)
	add(m.JournalRegister.Validations.IsBalanced, "journal_register", "is_balanced",
		"debits (%s) != credits (%s)", m.JournalRegister.Totals.TotalDebit, m.JournalRegister.Totals.TotalCredit)
	add(m.GeneralLedger.Validations.IsBalanced, "general_ledger", "is_balanced",
		"debits (%s) != credits (%s)", m.GeneralLedger.Totals.TotalDebit, m.GeneralLedger.Totals.TotalCredit)
	add(m.TrialBalance.Validations.IsBalanced, "trial_balance", "is_balanced",
		"closing debits (%s) != closing credits (%s)", m.TrialBalance.Totals.ClosingDebit, m.TrialBalance.Totals.ClosingCredit)
	add(m.ProfitLoss.Validations.IsBalanced, "profit_loss", "is_balanced",
		"income - expense != net profit (%s)", m.ProfitLoss.Totals.NetProfit)
	add(m.BalanceSheet.Validations.IsBalanced, "balance_sheet", "is_balanced",
		"assets - (liabilities + equity) = %s", m.BalanceSheet.Totals.BalanceDiff)
	add(m.Cashflow.Validations.NetMatches, "cashflow", "net_matches",
		"activity totals do not add up to net change (%s)", m.Cashflow.Totals.NetChange)
	add(m.AccountMovement.Validations.IsBalanced, "account_movement", "is_balanced",
		"debits (%s) != credits (%s)", m.AccountMovement.Totals.Debit, m.AccountMovement.Totals.Credit)
	add(m.EquityChanges.Validations.ClosingMatches, "equity_changes", "closing_matches",
		"closing equity (%s) does not roll forward", m.EquityChanges.Totals.ClosingEquity)
	for _, e := range m.JournalRegister.Grouped.Entries {
		add(e.IsBalanced, "journal_register", "entry_balanced",
			"entry %s: debits (%s) != credits (%s)", e.JournalHeaderID, e.TotalDebit, e.TotalCredit)
	}
	return errs
}
