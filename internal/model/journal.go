package model

import "github.com/shopspring/decimal"

// DefaultCurrency is used when a row carries no currency.
const DefaultCurrency = "IDR"

// JournalRow is one normalized journal line. Rows are values and are never
// modified after normalization; engines copy what they need.
type JournalRow struct {
	RowID            string          `json:"row_id"`
	JournalHeaderID  string          `json:"journal_header_id"`
	AccountID        string          `json:"account_id"`
	AccountName      string          `json:"account_name"`
	AccountCategory  string          `json:"account_category"`
	AccountType      string          `json:"account_type"`
	KelompokNeraca   *string         `json:"kelompok_neraca"`
	IsCashAccount    bool            `json:"is_cash_account"`
	CashflowActivity *string         `json:"cashflow_activity"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	AmountRaw        decimal.Decimal `json:"amount_raw"`
	Currency         string          `json:"currency"`
	Description      string          `json:"description"`
	TransactionDate  Date            `json:"transaction_date"`
	Status           string          `json:"status"`
	PostedBy         string          `json:"posted_by"`
}

// Type returns the row's parsed account type.
func (r JournalRow) Type() AccountType {
	return ParseAccountType(r.AccountType)
}

// SignedAmount is the row's net amount on its own type's normal side.
func (r JournalRow) SignedAmount() decimal.Decimal {
	return r.Type().NormalSide().Net(r.Debit, r.Credit)
}

// AccountKey groups rows by account; rows without an id share one key.
func (r JournalRow) AccountKey() string {
	if r.AccountID == "" {
		return UnknownAccountKey
	}
	return r.AccountID
}

// Account projects the row's account fields.
func (r JournalRow) Account() Account {
	name := r.AccountName
	if name == "" {
		name = UnknownAccountName
	}
	return Account{
		ID:             r.AccountID,
		Name:           name,
		Category:       r.AccountCategory,
		Type:           r.AccountType,
		KelompokNeraca: r.KelompokNeraca,
	}
}

// Activity returns the cashflow activity text, or "" when absent.
func (r JournalRow) Activity() string {
	if r.CashflowActivity == nil {
		return ""
	}
	return *r.CashflowActivity
}

// Magnitude is the larger of the row's debit and credit.
func (r JournalRow) Magnitude() decimal.Decimal {
	return decimal.Max(r.Debit, r.Credit)
}
