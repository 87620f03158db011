// Package market provides price sources for the account ledger.
package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/papertrade/account"
)

// StaticPrices is a fixed symbol-to-price table. It is immutable once
// constructed and safe for concurrent lookups. Lookups are
// case-insensitive: symbols are uppercased before hitting the table.
type StaticPrices struct {
	table map[string]float64
}

var _ account.PriceSource = (*StaticPrices)(nil)

// DefaultTable returns the built-in demo price table.
func DefaultTable() map[string]float64 {
	return map[string]float64{
		"AAPL":  150.00,
		"GOOGL": 2500.00,
		"TSLA":  700.00,
	}
}

// NewStaticPrices builds a price source from the given table. Symbols are
// normalized to uppercase; every price must be positive. An empty or nil
// table falls back to DefaultTable.
func NewStaticPrices(table map[string]float64) (*StaticPrices, error) {
	if len(table) == 0 {
		table = DefaultTable()
	}

	normalized := make(map[string]float64, len(table))
	for sym, price := range table {
		if price <= 0 {
			return nil, fmt.Errorf("price for %q must be positive, got %v", sym, price)
		}
		normalized[strings.ToUpper(strings.TrimSpace(sym))] = price
	}
	return &StaticPrices{table: normalized}, nil
}

// Default returns a price source over DefaultTable.
func Default() *StaticPrices {
	p, err := NewStaticPrices(nil)
	if err != nil {
		panic(err) // DefaultTable is known good
	}
	return p
}

// Price returns the current price for symbol, or ErrUnknownSymbol when the
// symbol is not in the table. No side effects.
func (p *StaticPrices) Price(symbol string) (float64, error) {
	price, ok := p.table[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", symbol, account.ErrUnknownSymbol)
	}
	return price, nil
}

// Symbols returns the known symbols in sorted order.
func (p *StaticPrices) Symbols() []string {
	syms := make([]string, 0, len(p.table))
	for sym := range p.table {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
