package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/papertrade/account"
)

type CSV struct {
	transactions *csv.Writer
	snapshots    *csv.Writer
	tf, sf       *os.File
	log          zerolog.Logger
}

// NewCSV creates a journal writing transactions and snapshots to two CSV
// files. Existing files are truncated.
func NewCSV(transactionsPath, snapshotsPath string, log zerolog.Logger) (*CSV, error) {
	tf, err := os.Create(transactionsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(snapshotsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	sw := csv.NewWriter(sf)

	if err := tw.Write([]string{"id", "time", "kind", "symbol", "quantity", "unit_price", "total"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"time", "cash", "portfolio_value", "total_deposited", "profit_loss"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	log = log.With().Str("component", "journal").Str("backend", "csv").Logger()
	log.Info().Str("transactions", transactionsPath).Str("snapshots", snapshotsPath).Msg("journal opened")

	return &CSV{transactions: tw, snapshots: sw, tf: tf, sf: sf, log: log}, nil
}

func (j *CSV) RecordTransaction(t account.Transaction) error {
	err := j.transactions.Write([]string{
		t.ID,
		t.Time.Format(time.RFC3339),
		string(t.Kind),
		t.Symbol,
		strconv.Itoa(t.Quantity),
		f(t.UnitPrice),
		f(t.Total),
	})
	if err != nil {
		return err
	}

	j.transactions.Flush()
	return j.transactions.Error()
}

func (j *CSV) RecordSnapshot(s Snapshot) error {
	err := j.snapshots.Write([]string{
		s.Time.Format(time.RFC3339),
		f(s.Cash),
		f(s.PortfolioValue),
		f(s.TotalDeposited),
		f(s.ProfitLoss),
	})
	if err != nil {
		return err
	}

	j.snapshots.Flush()
	return j.snapshots.Error()
}

func (j *CSV) Close() error {
	j.transactions.Flush()
	if err := j.transactions.Error(); err != nil {
		return err
	}
	j.snapshots.Flush()
	if err := j.snapshots.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
