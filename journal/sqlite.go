package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/rustyeddy/papertrade/account"
)

type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLite opens (or creates) the journal database at path and ensures
// the schema exists.
func NewSQLite(path string, log zerolog.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	log = log.With().Str("component", "journal").Str("backend", "sqlite").Logger()
	log.Info().Str("path", path).Msg("journal opened")

	return &SQLite{db: db, log: log}, nil
}

func (j *SQLite) RecordTransaction(t account.Transaction) error {
	_, err := j.db.Exec(`
		INSERT INTO transactions
		(id, time, kind, symbol, quantity, unit_price, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Time, string(t.Kind), t.Symbol, t.Quantity, t.UnitPrice, t.Total,
	)
	if err != nil {
		return err
	}

	j.log.Debug().Str("id", t.ID).Str("kind", string(t.Kind)).Msg("transaction recorded")
	return nil
}

func (j *SQLite) RecordSnapshot(s Snapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO snapshots
		(time, cash, portfolio_value, total_deposited, profit_loss)
		VALUES (?, ?, ?, ?, ?)`,
		s.Time, s.Cash, s.PortfolioValue, s.TotalDeposited, s.ProfitLoss,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
