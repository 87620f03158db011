package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "session.yaml", `
account:
  id: alice
  opening_deposit: 5000
prices:
  MSFT: 410.25
  nvda: 920.10
journal:
  type: csv
  transactions_file: ./tx.csv
  snapshots_file: ./snap.csv
script:
  - action: buy
    symbol: MSFT
    quantity: 2
  - action: withdraw
    amount: 100
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Account.ID)
	assert.InDelta(t, 5000, cfg.Account.OpeningDeposit, 1e-9)
	assert.InDelta(t, 410.25, cfg.Prices["MSFT"], 1e-9)
	assert.Equal(t, "csv", cfg.Journal.Type)
	require.Len(t, cfg.Script, 2)
	assert.Equal(t, "buy", cfg.Script[0].Action)
	assert.Equal(t, 2, cfg.Script[0].Quantity)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "session.json", `{
  "account": {"id": "bob", "opening_deposit": 1000},
  "journal": {"type": "none"},
  "script": [{"action": "deposit", "amount": 250}]
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Account.ID)
	require.Len(t, cfg.Script, 1)
	assert.InDelta(t, 250, cfg.Script[0].Amount, 1e-9)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := Default()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default_is_valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing_account_id",
			mutate:  func(c *Config) { c.Account.ID = "" },
			wantErr: "account.id",
		},
		{
			name:    "negative_opening_deposit",
			mutate:  func(c *Config) { c.Account.OpeningDeposit = -1 },
			wantErr: "opening_deposit",
		},
		{
			name:    "non_positive_price",
			mutate:  func(c *Config) { c.Prices = map[string]float64{"AAPL": 0} },
			wantErr: "must be positive",
		},
		{
			name:    "unknown_journal_type",
			mutate:  func(c *Config) { c.Journal.Type = "parquet" },
			wantErr: "journal.type",
		},
		{
			name:    "csv_journal_missing_files",
			mutate:  func(c *Config) { c.Journal = JournalConfig{Type: "csv"} },
			wantErr: "transactions_file",
		},
		{
			name:    "sqlite_journal_missing_path",
			mutate:  func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} },
			wantErr: "db_path",
		},
		{
			name:    "step_unknown_action",
			mutate:  func(c *Config) { c.Script = []Step{{Action: "short", Symbol: "AAPL", Quantity: 1}} },
			wantErr: "unknown action",
		},
		{
			name:    "buy_step_missing_symbol",
			mutate:  func(c *Config) { c.Script = []Step{{Action: "buy", Quantity: 1}} },
			wantErr: "requires a symbol",
		},
		{
			name:    "sell_step_bad_quantity",
			mutate:  func(c *Config) { c.Script = []Step{{Action: "sell", Symbol: "AAPL"}} },
			wantErr: "positive quantity",
		},
		{
			name:    "deposit_step_bad_amount",
			mutate:  func(c *Config) { c.Script = []Step{{Action: "deposit"}} },
			wantErr: "positive amount",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Prices = map[string]float64{"AAPL": 150}
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
