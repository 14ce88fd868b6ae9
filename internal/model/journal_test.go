package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want AccountType
	}{
		{"asset", AccountTypeAsset},
		{"Asset", AccountTypeAsset},
		{" LIABILITY ", AccountTypeLiability},
		{"equity", AccountTypeEquity},
		{"Income", AccountTypeIncome},
		{"expense", AccountTypeExpense},
		{"revenue", AccountTypeUnknown},
		{"", AccountTypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAccountType(tt.in), "ParseAccountType(%q)", tt.in)
	}
}

func TestNormalSide(t *testing.T) {
	assert.Equal(t, SideDebit, AccountTypeAsset.NormalSide())
	assert.Equal(t, SideDebit, AccountTypeExpense.NormalSide())
	assert.Equal(t, SideCredit, AccountTypeLiability.NormalSide())
	assert.Equal(t, SideCredit, AccountTypeEquity.NormalSide())
	assert.Equal(t, SideCredit, AccountTypeIncome.NormalSide())
	assert.Equal(t, SideDebit, AccountTypeUnknown.NormalSide(), "unknown types default to debit")
}

func TestStatementMembership(t *testing.T) {
	for _, typ := range []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity} {
		assert.True(t, typ.IsBalanceSheet(), typ)
		assert.False(t, typ.IsProfitLoss(), typ)
	}
	for _, typ := range []AccountType{AccountTypeIncome, AccountTypeExpense} {
		assert.True(t, typ.IsProfitLoss(), typ)
		assert.False(t, typ.IsBalanceSheet(), typ)
	}
	assert.False(t, AccountTypeUnknown.IsProfitLoss())
	assert.False(t, AccountTypeUnknown.IsBalanceSheet())
}

func TestSignedAmount(t *testing.T) {
	asset := JournalRow{AccountType: "asset", Debit: dec("100"), Credit: dec("30")}
	income := JournalRow{AccountType: "INCOME", Debit: dec("10"), Credit: dec("250")}
	unknown := JournalRow{AccountType: "mystery", Debit: dec("5")}

	assert.True(t, asset.SignedAmount().Equal(dec("70")))
	assert.True(t, income.SignedAmount().Equal(dec("240")))
	assert.True(t, unknown.SignedAmount().Equal(dec("5")))
}

func TestSplitDebitCredit(t *testing.T) {
	tests := []struct {
		balance    string
		side       NormalSide
		wantDebit  string
		wantCredit string
	}{
		{"100", SideDebit, "100", "0"},
		{"-40", SideDebit, "0", "40"},
		{"0", SideDebit, "0", "0"},
		{"75", SideCredit, "0", "75"},
		{"-12.5", SideCredit, "12.5", "0"},
	}
	for _, tt := range tests {
		d, c := SplitDebitCredit(dec(tt.balance), tt.side)
		assert.True(t, d.Equal(dec(tt.wantDebit)), "debit for %s/%s: %s", tt.balance, tt.side, d)
		assert.True(t, c.Equal(dec(tt.wantCredit)), "credit for %s/%s: %s", tt.balance, tt.side, c)
	}
}

func TestBalanceFromRows(t *testing.T) {
	rows := []JournalRow{
		{Debit: dec("10"), Credit: dec("0")},
		{Debit: dec("0"), Credit: dec("4")},
	}
	assert.True(t, BalanceFromRows(rows, AccountTypeAsset).Equal(dec("6")))
	assert.True(t, BalanceFromRows(rows, AccountTypeLiability).Equal(dec("-6")))
	assert.True(t, BalanceFromRows(nil, AccountTypeLiability).IsZero())
}

func TestAccountProjection(t *testing.T) {
	hint := "Aset Lancar"
	r := JournalRow{AccountID: "1010", AccountCategory: "Cash", AccountType: "asset", KelompokNeraca: &hint}
	acc := r.Account()
	assert.Equal(t, "1010", acc.ID)
	assert.Equal(t, UnknownAccountName, acc.Name)
	assert.Equal(t, "Aset Lancar", acc.GroupingHint())
	assert.Equal(t, AccountTypeAsset, acc.AccountType())

	assert.Equal(t, UnknownAccountKey, JournalRow{}.AccountKey())
	assert.Equal(t, "", Account{}.GroupingHint())
}

func TestTraceMerge(t *testing.T) {
	rows := []JournalRow{
		{RowID: "r1", JournalHeaderID: "h1"},
		{RowID: "r2", JournalHeaderID: "h1"},
		{RowID: "r1", JournalHeaderID: "h1"},
		{RowID: "", JournalHeaderID: ""},
	}
	tr := TraceFromRows(rows)
	assert.Equal(t, []string{"r1", "r2"}, tr.RowIDs)
	assert.Equal(t, []string{"h1"}, tr.HeaderIDs)

	merged := MergeTraces(tr, TraceRef{RowIDs: []string{"r3", "r2"}, HeaderIDs: []string{"h2"}})
	assert.ElementsMatch(t, []string{"r1", "r2", "r3"}, merged.RowIDs)
	assert.ElementsMatch(t, []string{"h1", "h2"}, merged.HeaderIDs)

	empty := TraceFromRows(nil)
	assert.NotNil(t, empty.RowIDs)
	assert.NotNil(t, empty.HeaderIDs)
}

func TestDate(t *testing.T) {
	d, ok := ParseDate("2025-01-05")
	assert.True(t, ok)
	assert.Equal(t, Date("2025-01-05"), d)

	_, ok = ParseDate("2025-02-30")
	assert.False(t, ok)
	_, ok = ParseDate("2025-1-5")
	assert.False(t, ok)

	assert.Equal(t, -1, NoDate.Compare("2025-01-01"))
	assert.Equal(t, 1, Date("2025-01-02").Compare("2025-01-01"))
	assert.Equal(t, 0, Date("2025-01-02").Compare("2025-01-02"))

	b, err := NoDate.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
	b, err = d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2025-01-05"`, string(b))
}
