package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func TestProfitLoss_SingleSale(t *testing.T) {
	pl := ProfitLoss(saleRows(), january())

	assert.Equal(t, "100", pl.Totals.Income.String())
	assert.True(t, pl.Totals.Expense.IsZero())
	assert.Equal(t, "100", pl.Totals.NetProfit.String())
	assert.True(t, pl.Validations.IsBalanced)

	require.Len(t, pl.Grouped.Income.Categories, 1)
	cat := pl.Grouped.Income.Categories[0]
	assert.Equal(t, "Revenue", cat.Category)
	require.Len(t, cat.Accounts, 1)
	assert.Equal(t, "Sales", cat.Accounts[0].Account.Name)
	assert.Equal(t, []string{"r2"}, cat.Trace.RowIDs)
	assert.Empty(t, pl.Grouped.Expense.Categories)
}

func TestProfitLoss_Grouping(t *testing.T) {
	rows := []model.JournalRow{
		withCategory(line("r1", "h1", "I1", "Consulting", "income", "2025-01-03", "", "300"), "Service Revenue"),
		withCategory(line("r2", "h2", "I1", "Consulting", "income", "2025-01-09", "50", ""), "Service Revenue"),
		line("r3", "h3", "I2", "Interest", "Income", "2025-01-12", "", "20"),
		withCategory(line("r4", "h4", "X1", "Rent", "expense", "2025-01-15", "120", ""), "Operating Expense"),
		withCategory(line("r5", "h4", "X2", "Utilities", "expense", "2025-01-15", "30", ""), "Operating Expense"),
		withCategory(line("r6", "h5", "X1", "Rent", "expense", "2025-02-01", "999", ""), "Operating Expense"),
		line("r7", "h6", "A", "Cash", "asset", "2025-01-15", "150", ""),
	}
	pl := ProfitLoss(rows, january())

	income := pl.Grouped.Income
	require.Len(t, income.Categories, 2)
	assert.Equal(t, UncategorizedLabel, income.Categories[0].Category)
	assert.Equal(t, "20", income.Categories[0].Amount.String())
	assert.Equal(t, "Service Revenue", income.Categories[1].Category)
	assert.Equal(t, "250", income.Categories[1].Amount.String())
	assert.Equal(t, "270", income.Total.String())

	expense := pl.Grouped.Expense
	require.Len(t, expense.Categories, 1)
	opex := expense.Categories[0]
	require.Len(t, opex.Accounts, 2)
	assert.Equal(t, "Rent", opex.Accounts[0].Account.Name)
	assert.Equal(t, "120", opex.Accounts[0].Amount.String(), "rows after the period are excluded")
	assert.Equal(t, "Utilities", opex.Accounts[1].Account.Name)
	assert.Equal(t, []string{"h4"}, opex.Trace.HeaderIDs)

	assert.Equal(t, "150", pl.Totals.Expense.String())
	assert.Equal(t, "120", pl.Totals.NetProfit.String())
	assert.Len(t, pl.RawRows, 6)
}
