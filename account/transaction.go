package account

import "time"

// Kind identifies what a transaction record represents.
type Kind string

const (
	KindDeposit  Kind = "DEPOSIT"
	KindWithdraw Kind = "WITHDRAW"
	KindBuy      Kind = "BUY"
	KindSell     Kind = "SELL"
)

// Transaction is one entry in the account's append-only log. Records are
// immutable once appended; readers always receive independent copies.
//
// Symbol, Quantity and UnitPrice are set only on BUY and SELL records.
// Total is the cash that moved: the deposit or withdrawal amount, or
// quantity times unit price for trades.
type Transaction struct {
	ID        string
	Time      time.Time
	Kind      Kind
	Symbol    string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// IsTrade reports whether the record is a BUY or SELL.
func (t Transaction) IsTrade() bool {
	return t.Kind == KindBuy || t.Kind == KindSell
}
