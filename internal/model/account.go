package model

import "strings"

// AccountType classifies the account a journal row posts to.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeUnknown   AccountType = ""
)

// ParseAccountType maps free text onto a known AccountType, case-insensitively.
// Anything unrecognised is AccountTypeUnknown.
func ParseAccountType(s string) AccountType {
	switch t := AccountType(strings.ToLower(strings.TrimSpace(s))); t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return t
	default:
		return AccountTypeUnknown
	}
}

// NormalSide returns the side on which balances of this type are positive.
// Unknown types are treated as debit-normal.
func (t AccountType) NormalSide() NormalSide {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeIncome:
		return SideCredit
	default:
		return SideDebit
	}
}

// IsBalanceSheet reports whether the type belongs on the balance sheet.
func (t AccountType) IsBalanceSheet() bool {
	return t == AccountTypeAsset || t == AccountTypeLiability || t == AccountTypeEquity
}

// IsProfitLoss reports whether the type belongs on the profit & loss statement.
func (t AccountType) IsProfitLoss() bool {
	return t == AccountTypeIncome || t == AccountTypeExpense
}

// UnknownAccountKey groups rows that carry no account_id.
const UnknownAccountKey = "(unknown)"

// UnknownAccountName labels accounts whose rows carry no account_name.
const UnknownAccountName = "(Unknown Account)"

// Account is the account projection of a journal row. There is no account
// master: every engine rebuilds accounts from the rows it sees.
type Account struct {
	ID             string  `json:"account_id"`
	Name           string  `json:"account_name"`
	Category       string  `json:"account_category"`
	Type           string  `json:"account_type"`
	KelompokNeraca *string `json:"kelompok_neraca"`
}

// AccountType returns the parsed type of the account.
func (a Account) AccountType() AccountType {
	return ParseAccountType(a.Type)
}

// GroupingHint returns the balance-sheet grouping hint, or "" when absent.
func (a Account) GroupingHint() string {
	if a.KelompokNeraca == nil {
		return ""
	}
	return *a.KelompokNeraca
}
