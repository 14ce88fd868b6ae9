package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func TestTrialBalance_SingleSale(t *testing.T) {
	tb := TrialBalance(saleRows(), january())

	require.Len(t, tb.Grouped.Rows, 2)
	cash, sales := tb.Grouped.Rows[0], tb.Grouped.Rows[1]

	assert.Equal(t, "Cash", cash.Account.Name)
	assert.Equal(t, "100", cash.ClosingDebit.String())
	assert.True(t, cash.ClosingCredit.IsZero())
	assert.Equal(t, 1, cash.JournalLines)

	assert.Equal(t, "Sales", sales.Account.Name)
	assert.True(t, sales.ClosingDebit.IsZero())
	assert.Equal(t, "100", sales.ClosingCredit.String())

	assert.Equal(t, "100", tb.Totals.ClosingDebit.String())
	assert.Equal(t, "100", tb.Totals.ClosingCredit.String())
	assert.True(t, tb.Validations.IsBalanced)
}

func TestTrialBalance_OpeningAndIdleAccounts(t *testing.T) {
	rows := []model.JournalRow{
		line("o1", "h0", "A", "Cash", "asset", "2024-12-20", "500", ""),
		line("o2", "h0", "C", "Capital", "equity", "2024-12-20", "", "500"),
		line("r1", "h1", "A", "Cash", "asset", "2025-01-10", "", "200"),
		line("r2", "h1", "E", "Rent", "expense", "2025-01-10", "200", ""),
	}
	tb := TrialBalance(rows, january())

	require.Len(t, tb.Grouped.Rows, 3)
	byName := map[string]TrialBalanceRow{}
	for _, r := range tb.Grouped.Rows {
		byName[r.Account.Name] = r
	}

	cash := byName["Cash"]
	assert.Equal(t, "500", cash.OpeningBalance.String())
	assert.Equal(t, "300", cash.ClosingBalance.String())
	assert.Equal(t, "300", cash.ClosingDebit.String())

	capital := byName["Capital"]
	assert.Equal(t, "500", capital.OpeningBalance.String())
	assert.Equal(t, "500", capital.ClosingBalance.String(), "no activity keeps the opening balance")
	assert.Equal(t, 0, capital.JournalLines)
	assert.Empty(t, capital.Trace.RowIDs)

	assert.True(t, tb.Validations.IsBalanced)
	assert.Equal(t, tb.Totals.ClosingDebit.String(), tb.Totals.ClosingCredit.String())
}

func TestTrialBalance_NegativeBalanceFlipsColumn(t *testing.T) {
	rows := []model.JournalRow{
		line("r1", "h1", "A", "Bank", "asset", "2025-01-10", "", "75"),
		line("r2", "h1", "L", "Loan", "liability", "2025-01-10", "75", ""),
	}
	tb := TrialBalance(rows, january())

	require.Len(t, tb.Grouped.Rows, 2)
	bank := tb.Grouped.Rows[0]
	assert.Equal(t, "-75", bank.ClosingBalance.String())
	assert.True(t, bank.ClosingDebit.IsZero())
	assert.Equal(t, "75", bank.ClosingCredit.String())

	loan := tb.Grouped.Rows[1]
	assert.Equal(t, "75", loan.ClosingDebit.String())
	assert.True(t, tb.Validations.IsBalanced)
}

func TestTrialBalance_Unbalanced(t *testing.T) {
	rows := []model.JournalRow{line("r1", "h1", "A", "Cash", "asset", "2025-01-10", "10", "")}
	tb := TrialBalance(rows, january())
	assert.False(t, tb.Validations.IsBalanced)
}

func TestAccountMovement(t *testing.T) {
	rows := []model.JournalRow{
		line("o1", "h0", "A", "Cash", "asset", "2024-12-20", "500", ""),
		line("o2", "h0", "C", "Capital", "equity", "2024-12-20", "", "500"),
		line("r1", "h1", "A", "Cash", "asset", "2025-01-10", "", "200"),
		line("r2", "h1", "E", "Rent", "expense", "2025-01-10", "200", ""),
	}
	mv := AccountMovement(rows, january())

	require.Len(t, mv.Grouped.Rows, 3)
	assert.Equal(t, "Capital", mv.Grouped.Rows[0].Account.Name)
	assert.True(t, mv.Grouped.Rows[0].NetMovement.IsZero())
	assert.Equal(t, "Cash", mv.Grouped.Rows[1].Account.Name)
	assert.Equal(t, "-200", mv.Grouped.Rows[1].NetMovement.String())
	assert.Equal(t, "300", mv.Grouped.Rows[1].ClosingBalance.String())
	assert.Equal(t, "Rent", mv.Grouped.Rows[2].Account.Name)
	assert.Equal(t, "200", mv.Grouped.Rows[2].NetMovement.String())

	assert.Equal(t, "200", mv.Totals.Debit.String())
	assert.Equal(t, "200", mv.Totals.Credit.String())
	assert.True(t, mv.Validations.IsBalanced)
	assert.Len(t, mv.RawRows, 2)
}
