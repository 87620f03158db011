package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted session from a config file",
	Long: `Run a trading session using settings from a configuration file.

The config file specifies the account, an optional price table, journal
settings, and a script of deposit/withdraw/buy/sell steps to replay.
Rejected steps are reported and the session continues.

Example:
  papertrade run -f examples/session.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	log, err := logger()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prices, err := market.NewStaticPrices(cfg.Prices)
	if err != nil {
		return fmt.Errorf("build price table: %w", err)
	}

	j, err := newJournal(cfg.Journal, log)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	acct := account.New(cfg.Account.ID, prices)

	fmt.Printf("Running session with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Opening Deposit: $%.2f)\n", cfg.Account.ID, cfg.Account.OpeningDeposit)
	fmt.Printf("  Symbols: %s\n\n", strings.Join(prices.Symbols(), ", "))

	if cfg.Account.OpeningDeposit > 0 {
		if err := acct.Deposit(cfg.Account.OpeningDeposit); err != nil {
			return fmt.Errorf("opening deposit: %w", err)
		}
		if err := journalStep(acct, j); err != nil {
			return fmt.Errorf("journal opening deposit: %w", err)
		}
	}

	for i, step := range cfg.Script {
		if err := applyStep(acct, step); err != nil {
			// Trading errors are never fatal to the session; the account
			// is unchanged and the script keeps going.
			log.Warn().Int("step", i).Str("action", step.Action).Err(err).Msg("step rejected")
			fmt.Printf("Step %d %s: REJECTED (%v)\n", i+1, describeStep(step), err)
			continue
		}

		fmt.Printf("Step %d %s: ok (cash $%.2f)\n", i+1, describeStep(step), acct.CashBalance())

		if err := journalStep(acct, j); err != nil {
			return fmt.Errorf("journal step %d: %w", i, err)
		}
	}

	fmt.Println()
	return printReport(acct)
}

// newJournal builds the configured journal backend.
func newJournal(cfg config.JournalConfig, log zerolog.Logger) (journal.Journal, error) {
	switch cfg.Type {
	case "", "none":
		return journal.Nop{}, nil
	case "csv":
		return journal.NewCSV(cfg.TransactionsFile, cfg.SnapshotsFile, log)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath, log)
	default:
		return nil, fmt.Errorf("unknown journal type: %q", cfg.Type)
	}
}

// applyStep dispatches one scripted step to the account.
func applyStep(a *account.Account, s config.Step) error {
	switch strings.ToLower(s.Action) {
	case "deposit":
		return a.Deposit(s.Amount)
	case "withdraw":
		return a.Withdraw(s.Amount)
	case "buy":
		return a.Buy(s.Symbol, s.Quantity)
	case "sell":
		return a.Sell(s.Symbol, s.Quantity)
	default:
		return fmt.Errorf("unknown action: %q", s.Action)
	}
}

func describeStep(s config.Step) string {
	switch strings.ToLower(s.Action) {
	case "deposit", "withdraw":
		return fmt.Sprintf("%s $%.2f", s.Action, s.Amount)
	default:
		return fmt.Sprintf("%s %d %s", s.Action, s.Quantity, s.Symbol)
	}
}

// journalStep records the account's latest transaction and a snapshot of
// its headline numbers.
func journalStep(a *account.Account, j journal.Journal) error {
	txs := a.Transactions()
	if len(txs) == 0 {
		return nil
	}
	last := txs[len(txs)-1]

	if err := j.RecordTransaction(last); err != nil {
		return err
	}

	value, err := a.PortfolioValue()
	if err != nil {
		return err
	}
	pl, err := a.ProfitLoss()
	if err != nil {
		return err
	}

	return j.RecordSnapshot(journal.Snapshot{
		Time:           last.Time,
		Cash:           a.CashBalance(),
		PortfolioValue: value,
		TotalDeposited: a.TotalDeposited(),
		ProfitLoss:     pl,
	})
}

// printReport renders the account's reports: balances, holdings and the
// full transaction history.
func printReport(a *account.Account) error {
	value, err := a.PortfolioValue()
	if err != nil {
		return err
	}
	pl, err := a.ProfitLoss()
	if err != nil {
		return err
	}

	fmt.Printf("Account Report (%s):\n", a.UserID())
	fmt.Printf("  Cash Balance:    $%.2f\n", a.CashBalance())
	fmt.Printf("  Portfolio Value: $%.2f\n", value)
	fmt.Printf("  Total Deposited: $%.2f\n", a.TotalDeposited())
	fmt.Printf("  Profit / Loss:   $%.2f\n", pl)

	holdings := a.Holdings()
	if len(holdings) > 0 {
		syms := make([]string, 0, len(holdings))
		for sym := range holdings {
			syms = append(syms, sym)
		}
		sort.Strings(syms)

		fmt.Println("\nHoldings:")
		for _, sym := range syms {
			fmt.Printf("  %-6s %d\n", sym, holdings[sym])
		}
	}

	txs := a.Transactions()
	if len(txs) > 0 {
		fmt.Println("\nTransaction History:")
		for _, t := range txs {
			if t.IsTrade() {
				fmt.Printf("  %s  %-8s %-6s qty=%-4d @ $%.2f  total $%.2f\n",
					t.Time.Format("2006-01-02 15:04:05"), t.Kind, t.Symbol, t.Quantity, t.UnitPrice, t.Total)
			} else {
				fmt.Printf("  %s  %-8s total $%.2f\n",
					t.Time.Format("2006-01-02 15:04:05"), t.Kind, t.Total)
			}
		}
	}

	return nil
}
