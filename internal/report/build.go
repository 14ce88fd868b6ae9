// Package report builds every financial report from normalized journal rows.
//
// Engines are pure functions of their input rows: they never log, never
// return errors, and never share state, so any of them may run concurrently
// over the same rows. Failed checks surface as validation flags in the output.
package report

import (
	"github.com/cleared-dev/ledgerview/internal/normalize"
	"github.com/cleared-dev/ledgerview/internal/period"
)

// Models holds one entry per report engine. The comparative reports are nil
// when no previous period can be derived.
type Models struct {
	JournalRegister         JournalRegisterReport          `json:"journal_register"`
	GeneralLedger           GeneralLedgerReport            `json:"general_ledger"`
	TrialBalance            TrialBalanceReport             `json:"trial_balance"`
	ProfitLoss              ProfitLossReport               `json:"profit_loss"`
	BalanceSheet            BalanceSheetReport             `json:"balance_sheet"`
	Cashflow                CashflowReport                 `json:"cashflow"`
	AccountMovement         AccountMovementReport          `json:"account_movement"`
	EquityChanges           EquityChangesReport            `json:"equity_changes"`
	ComparativeProfitLoss   *ComparativeProfitLossReport   `json:"comparative_profit_loss"`
	ComparativeBalanceSheet *ComparativeBalanceSheetReport `json:"comparative_balance_sheet"`
	AuditTrail              AuditTrailReport               `json:"audit_trail"`
	ActivitySummary         ActivitySummary                `json:"activity_summary"`
}

// Result is the composite report model: the normalized payload plus checks
// and every report.
type Result struct {
	normalize.Payload
	Checks Checks `json:"checks"`
	Models Models `json:"models"`
}

// Build runs every engine over the payload's rows.
func Build(p normalize.Payload) Result {
	rows := p.Journals
	cur := p.Period
	current := period.FilterByPeriod(rows, cur)

	pnl := ProfitLoss(rows, cur)
	bs := BalanceSheet(rows, cur.To)

	m := Models{
		JournalRegister: JournalRegister(current),
		GeneralLedger:   GeneralLedger(rows, cur),
		TrialBalance:    TrialBalance(rows, cur),
		ProfitLoss:      pnl,
		BalanceSheet:    bs,
		Cashflow:        Cashflow(current),
		AccountMovement: AccountMovement(rows, cur),
		EquityChanges:   EquityChanges(rows, cur, pnl.Totals.NetProfit),
		AuditTrail:      AuditTrail(current),
		ActivitySummary: AccountActivity(current),
	}

	if prev, ok := period.Previous(cur); ok {
		cpl := ComparativeProfitLoss(pnl, ProfitLoss(rows, prev), cur, prev)
		cbs := ComparativeBalanceSheet(bs, BalanceSheet(rows, prev.To))
		m.ComparativeProfitLoss = &cpl
		m.ComparativeBalanceSheet = &cbs
	}

	return Result{
		Payload: p,
		Checks:  BasicChecks(rows),
		Models:  m,
	}
}
