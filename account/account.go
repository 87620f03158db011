package account

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rustyeddy/papertrade/internal/id"
)

// PriceSource resolves a stock symbol to its current tradable price.
// The account depends only on this capability; the concrete source (a
// static table, a live feed) is chosen by whoever wires the account up.
//
// Implementations must be side-effect free and return ErrUnknownSymbol
// (wrapped or bare) for symbols they cannot price.
type PriceSource interface {
	Price(symbol string) (float64, error)
}

// Account is a single-user trading-simulation ledger. It owns the cash
// balance, share holdings and transaction log, and consults a PriceSource
// for trades and valuation.
//
// Every operation is atomic: all validation happens before any mutation,
// so a failed call leaves the account exactly as it was. A mutex guards
// each operation, making concurrent use from multiple goroutines safe.
//
// Invariants held at all times:
//   - cash balance never goes negative
//   - total deposited only ever grows; withdrawals and trades never touch it
//   - holdings never contain a zero or negative quantity
//   - the transaction log is append-only
type Account struct {
	mu     sync.Mutex
	userID string
	prices PriceSource
	now    func() time.Time

	cash         float64
	deposited    float64
	holdings     map[string]int
	transactions []Transaction
}

// Option configures an Account at construction.
type Option func(*Account)

// WithClock overrides the wall clock used to stamp transaction records.
// Tests use this to get deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Account) { a.now = now }
}

// New opens an empty account for userID: zero cash, zero deposits, no
// holdings, no transactions.
func New(userID string, prices PriceSource, opts ...Option) *Account {
	a := &Account{
		userID:   userID,
		prices:   prices,
		now:      time.Now,
		holdings: make(map[string]int),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// UserID returns the identifier the account was opened with.
func (a *Account) UserID() string { return a.userID }

// Deposit adds cash to the account and grows the deposit basis used for
// profit/loss. The amount must be positive.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit %.2f: %w", amount, ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.cash += amount
	a.deposited += amount
	a.record(Transaction{Kind: KindDeposit, Total: amount})
	return nil
}

// Withdraw removes cash from the account. The amount must be positive and
// no more than the current cash balance. The deposit basis is untouched:
// withdrawing profits does not lower the baseline profit/loss is measured
// against.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw %.2f: %w", amount, ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.cash {
		return fmt.Errorf("withdraw %.2f: %w: balance is %.2f", amount, ErrInsufficientFunds, a.cash)
	}

	a.cash -= amount
	a.record(Transaction{Kind: KindWithdraw, Total: amount})
	return nil
}

// Buy purchases quantity shares of symbol at the price source's current
// price, paying from the cash balance.
func (a *Account) Buy(symbol string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("buy %s: %w", symbol, ErrInvalidQuantity)
	}

	sym := normalize(symbol)
	price, err := a.prices.Price(sym)
	if err != nil {
		return fmt.Errorf("buy %s: %w", sym, err)
	}
	cost := price * float64(quantity)

	a.mu.Lock()
	defer a.mu.Unlock()

	if cost > a.cash {
		return fmt.Errorf("buy %d %s for %.2f: %w: balance is %.2f",
			quantity, sym, cost, ErrInsufficientFunds, a.cash)
	}

	a.cash -= cost
	a.holdings[sym] += quantity
	a.record(Transaction{
		Kind:      KindBuy,
		Symbol:    sym,
		Quantity:  quantity,
		UnitPrice: price,
		Total:     cost,
	})
	return nil
}

// Sell sells quantity shares of symbol at the price source's current price,
// crediting the proceeds to the cash balance. Selling a full position
// removes the symbol from holdings entirely.
func (a *Account) Sell(symbol string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("sell %s: %w", symbol, ErrInvalidQuantity)
	}

	sym := normalize(symbol)

	a.mu.Lock()
	defer a.mu.Unlock()

	held := a.holdings[sym]
	if held < quantity {
		return fmt.Errorf("sell %d %s: %w: own %d", quantity, sym, ErrInsufficientShares, held)
	}

	price, err := a.prices.Price(sym)
	if err != nil {
		return fmt.Errorf("sell %s: %w", sym, err)
	}
	proceeds := price * float64(quantity)

	a.cash += proceeds
	if held == quantity {
		delete(a.holdings, sym)
	} else {
		a.holdings[sym] = held - quantity
	}
	a.record(Transaction{
		Kind:      KindSell,
		Symbol:    sym,
		Quantity:  quantity,
		UnitPrice: price,
		Total:     proceeds,
	})
	return nil
}

// PortfolioValue returns cash plus the market value of every holding.
// A held symbol the price source can no longer resolve is an internal
// consistency fault and surfaces as an error rather than being skipped.
func (a *Account) PortfolioValue() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.portfolioValueLocked()
}

// ProfitLoss returns the portfolio value minus everything ever deposited.
// It is negative when the account is under water.
func (a *Account) ProfitLoss() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	value, err := a.portfolioValueLocked()
	if err != nil {
		return 0, err
	}
	return value - a.deposited, nil
}

// CashBalance returns the cash currently available.
func (a *Account) CashBalance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cash
}

// TotalDeposited returns the cumulative cash ever deposited.
func (a *Account) TotalDeposited() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deposited
}

// Holdings returns a copy of the current holdings, symbol to share count.
// Mutating the returned map never affects the account.
func (a *Account) Holdings() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return maps.Clone(a.holdings)
}

// Transactions returns a copy of the transaction log, oldest first.
// Mutating the returned slice never affects the account.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.transactions)
}

// record stamps and appends a transaction. Callers hold the mutex.
func (a *Account) record(t Transaction) {
	t.ID = id.New()
	t.Time = a.now()
	a.transactions = append(a.transactions, t)
}

// portfolioValueLocked sums cash and priced holdings. Callers hold the mutex.
func (a *Account) portfolioValueLocked() (float64, error) {
	value := a.cash
	for sym, qty := range a.holdings {
		price, err := a.prices.Price(sym)
		if err != nil {
			return 0, fmt.Errorf("portfolio value: held symbol %s: %w", sym, err)
		}
		value += price * float64(qty)
	}
	return value, nil
}

// normalize maps a caller-supplied symbol to its canonical form. Holdings
// keys and price lookups always use the normalized symbol.
func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
