package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}

func strPtr(s string) *string {
	return &s
}

// line builds a journal row; amounts are decimal strings, "" meaning zero.
func line(rowID, header, accountID, name, typ, on, debit, credit string) model.JournalRow {
	r := model.JournalRow{
		RowID:           rowID,
		JournalHeaderID: header,
		AccountID:       accountID,
		AccountName:     name,
		AccountType:     typ,
		Debit:           decimal.Zero,
		Credit:          decimal.Zero,
		AmountRaw:       decimal.Zero,
		Currency:        model.DefaultCurrency,
		TransactionDate: date(on),
	}
	if debit != "" {
		r.Debit = dec(debit)
	}
	if credit != "" {
		r.Credit = dec(credit)
	}
	return r
}

func withCategory(r model.JournalRow, category string) model.JournalRow {
	r.AccountCategory = category
	return r
}

func withHint(r model.JournalRow, hint string) model.JournalRow {
	r.KelompokNeraca = strPtr(hint)
	return r
}

func withCash(r model.JournalRow, activity string) model.JournalRow {
	r.IsCashAccount = true
	r.CashflowActivity = strPtr(activity)
	return r
}

// saleRows is a single balanced sale: cash debit 100, revenue credit 100.
func saleRows() []model.JournalRow {
	return []model.JournalRow{
		withCash(withCategory(line("r1", "h", "A", "Cash", "asset", "2025-01-05", "100", ""), "Current Asset"), "Operating"),
		withCategory(line("r2", "h", "B", "Sales", "income", "2025-01-05", "", "100"), "Revenue"),
	}
}

func january() model.Period {
	return model.Period{From: date("2025-01-01"), To: date("2025-01-31")}
}
