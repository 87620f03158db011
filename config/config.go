package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a complete simulation session: the account to open, the
// price table the oracle serves, where to journal activity, and the script
// of operations to replay.
type Config struct {
	Account AccountConfig      `json:"account" yaml:"account"`
	Prices  map[string]float64 `json:"prices,omitempty" yaml:"prices,omitempty"`
	Journal JournalConfig      `json:"journal" yaml:"journal"`
	Script  []Step             `json:"script,omitempty" yaml:"script,omitempty"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	ID             string  `json:"id" yaml:"id"`
	OpeningDeposit float64 `json:"opening_deposit" yaml:"opening_deposit"`
}

// JournalConfig selects where session activity is recorded.
type JournalConfig struct {
	Type             string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TransactionsFile string `json:"transactions_file,omitempty" yaml:"transactions_file,omitempty"`
	SnapshotsFile    string `json:"snapshots_file,omitempty" yaml:"snapshots_file,omitempty"`
	DBPath           string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Step is one scripted account operation.
type Step struct {
	Action   string  `json:"action" yaml:"action"` // deposit, withdraw, buy, sell
	Amount   float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Symbol   string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Quantity int     `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// Validate checks a single script step.
func (s Step) Validate() error {
	switch strings.ToLower(s.Action) {
	case "deposit", "withdraw":
		if s.Amount <= 0 {
			return fmt.Errorf("%s step requires a positive amount", s.Action)
		}
	case "buy", "sell":
		if s.Symbol == "" {
			return fmt.Errorf("%s step requires a symbol", s.Action)
		}
		if s.Quantity <= 0 {
			return fmt.Errorf("%s step requires a positive quantity", s.Action)
		}
	default:
		return fmt.Errorf("unknown action: %q", s.Action)
	}
	return nil
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.ID == "" {
		return fmt.Errorf("account.id is required")
	}
	if c.Account.OpeningDeposit < 0 {
		return fmt.Errorf("account.opening_deposit must not be negative")
	}
	for sym, price := range c.Prices {
		if price <= 0 {
			return fmt.Errorf("price for %q must be positive", sym)
		}
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TransactionsFile == "" || c.Journal.SnapshotsFile == "" {
			return fmt.Errorf("journal transactions_file and snapshots_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	for i, step := range c.Script {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("script step %d: %w", i, err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults: the demo account,
// the built-in price table, no journal, and a short deposit/buy/sell script.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:             "demo-user",
			OpeningDeposit: 10_000,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Script: []Step{
			{Action: "buy", Symbol: "AAPL", Quantity: 10},
			{Action: "sell", Symbol: "AAPL", Quantity: 10},
		},
	}
}
