// Package journal records account activity outside the ledger itself.
// The account stays purely in-memory; a journal is an optional sidecar the
// presentation layer attaches to keep an on-disk trace of a session.
package journal

import (
	"time"

	"github.com/rustyeddy/papertrade/account"
)

// Snapshot captures the account's headline numbers after an operation.
type Snapshot struct {
	Time           time.Time
	Cash           float64
	PortfolioValue float64
	TotalDeposited float64
	ProfitLoss     float64
}

type Journal interface {
	RecordTransaction(account.Transaction) error
	RecordSnapshot(Snapshot) error
	Close() error
}

// Nop is a Journal that discards everything. It is the default when no
// journaling is configured, and handy in tests.
type Nop struct{}

func (Nop) RecordTransaction(account.Transaction) error { return nil }
func (Nop) RecordSnapshot(Snapshot) error               { return nil }
func (Nop) Close() error                                { return nil }
