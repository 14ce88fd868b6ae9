package model

import "github.com/shopspring/decimal"

// NormalSide is the debit/credit direction in which a balance is positive.
type NormalSide string

const (
	SideDebit  NormalSide = "debit"
	SideCredit NormalSide = "credit"
)

// Net returns debit-credit for debit-normal sides and credit-debit otherwise.
func (s NormalSide) Net(debit, credit decimal.Decimal) decimal.Decimal {
	if s == SideCredit {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// SplitDebitCredit presents a balance in a single column. A non-negative
// balance lands on the normal side; a negative one lands on the opposite side
// with its magnitude preserved.
func SplitDebitCredit(balance decimal.Decimal, side NormalSide) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	onNormal := !balance.IsNegative()
	if (side == SideDebit) == onNormal {
		debit = balance.Abs()
	} else {
		credit = balance.Abs()
	}
	return debit, credit
}

// BalanceFromRows sums the rows' net amounts using the normal side of accountType.
func BalanceFromRows(rows []JournalRow, accountType AccountType) decimal.Decimal {
	side := accountType.NormalSide()
	balance := decimal.Zero
	for _, r := range rows {
		balance = balance.Add(side.Net(r.Debit, r.Credit))
	}
	return balance
}
