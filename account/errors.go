package account

import (
	"errors"
	"fmt"
)

// ErrTrading is the base error for every trading failure. Operations wrap
// the specialized sentinels below, so callers can match narrowly with
// errors.Is(err, ErrInsufficientFunds) or broadly with
// errors.Is(err, ErrTrading).
var ErrTrading = errors.New("trading error")

var (
	// ErrInsufficientFunds is returned when a withdrawal or purchase
	// exceeds the available cash balance.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrTrading)

	// ErrInsufficientShares is returned when a sale exceeds the held
	// quantity, including selling a symbol that was never held.
	ErrInsufficientShares = fmt.Errorf("%w: insufficient shares", ErrTrading)

	// ErrUnknownSymbol is returned when the price source does not
	// recognize a symbol.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrTrading)
)

// Argument-validation errors. These report a malformed argument rather
// than a trading-rule violation, so they sit outside the ErrTrading family.
var (
	// ErrInvalidAmount rejects non-positive deposit or withdrawal amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidQuantity rejects non-positive share quantities.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)
