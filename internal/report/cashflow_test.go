package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func TestClassifyActivity(t *testing.T) {
	tests := map[string]string{
		"Operating Activities": ActivityOperating,
		"Aktivitas Operasi":    ActivityOperating,
		"Investing":            ActivityInvesting,
		"Financing":            ActivityFinancing,
		"Pendanaan":            ActivityFinancing,
		"Funding round":        ActivityFinancing,
		"Uncategorized":        ActivityUncategorized,
		"Misc":                 ActivityUncategorized,
		"":                     ActivityUncategorized,
	}
	for in, want := range tests {
		assert.Equal(t, want, ClassifyActivity(in), "ClassifyActivity(%q)", in)
	}
}

func TestCashflow(t *testing.T) {
	rows := []model.JournalRow{
		withCash(line("r1", "h1", "A", "Cash", "asset", "2025-01-02", "100", ""), "Operating - Sales"),
		withCash(line("r2", "h2", "A", "Cash", "asset", "2025-01-03", "", "40"), "Operating - Payroll"),
		withCash(line("r3", "h3", "A", "Cash", "asset", "2025-01-04", "", "30"), "Investing"),
		withCash(line("r4", "h4", "A", "Cash", "asset", "2025-01-05", "20", ""), "Pendanaan"),
		withCash(line("r5", "h5", "A", "Cash", "asset", "2025-01-06", "5", ""), "  "),
		withCash(line("r6", "h6", "A", "Cash", "asset", "2025-01-07", "", "8"), "Misc"),
		line("r7", "h1", "B", "Sales", "income", "2025-01-02", "", "100"),
	}
	cf := Cashflow(rows)

	assert.Len(t, cf.RawRows, 6)

	require.Len(t, cf.Grouped.Operating, 2)
	assert.Equal(t, "Operating - Payroll", cf.Grouped.Operating[0].Activity)
	assert.Equal(t, "-40", cf.Grouped.Operating[0].Amount.String())
	assert.Equal(t, "Operating - Sales", cf.Grouped.Operating[1].Activity)
	assert.Equal(t, []string{"r1"}, cf.Grouped.Operating[1].Trace.RowIDs)

	require.Len(t, cf.Grouped.Uncategorized, 2)
	assert.Equal(t, "Misc", cf.Grouped.Uncategorized[0].Activity)
	assert.Equal(t, UncategorizedActivity, cf.Grouped.Uncategorized[1].Activity)

	assert.Equal(t, "60", cf.Totals.Operating.String())
	assert.Equal(t, "-30", cf.Totals.Investing.String())
	assert.Equal(t, "20", cf.Totals.Financing.String())
	assert.Equal(t, "-3", cf.Totals.Uncategorized.String())
	assert.Equal(t, "47", cf.Totals.NetChange.String())
	assert.True(t, cf.Totals.Sum().Equal(cf.Totals.NetChange))
	assert.True(t, cf.Validations.NetMatches)
}

func TestCashflow_PartitionIsExact(t *testing.T) {
	activities := []string{"operating", "investing", "financing", "", "other", "Fund transfer"}
	amounts := []string{"0.1", "0.2", "0.3", "1234567.89", "0.0001", "99.99"}
	var rows []model.JournalRow
	for i, a := range activities {
		for j, amt := range amounts {
			r := line("r", "h", "A", "Cash", "asset", "2025-01-01", amt, "")
			if (i+j)%2 == 1 {
				r.Debit, r.Credit = r.Credit, r.Debit
			}
			rows = append(rows, withCash(r, a))
		}
	}
	cf := Cashflow(rows)
	assert.True(t, cf.Totals.Sum().Equal(cf.Totals.NetChange), "%s != %s", cf.Totals.Sum(), cf.Totals.NetChange)
}

func TestCashflow_NoCashRows(t *testing.T) {
	cf := Cashflow(saleRows()[1:])
	assert.Empty(t, cf.RawRows)
	assert.Empty(t, cf.Grouped.Operating)
	assert.True(t, cf.Totals.NetChange.IsZero())
	assert.True(t, cf.Validations.NetMatches)
}
