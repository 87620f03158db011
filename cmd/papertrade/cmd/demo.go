package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/account"
	"github.com/rustyeddy/papertrade/market"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demo trading session",
	Long: `Run a short scripted session against the built-in price table.

Shows the basic workflow of:
  1. Opening an account and funding it
  2. Buying and selling shares at the oracle's prices
  3. Handling rejected operations
  4. Reading the account reports`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Paper Trading Demo ===")
	fmt.Println()

	prices := market.Default()
	acct := account.New("demo-user", prices)

	fmt.Printf("Opened account %q. Tradable symbols: AAPL, GOOGL, TSLA\n\n", acct.UserID())

	if err := acct.Deposit(10_000); err != nil {
		return err
	}
	fmt.Printf("Deposited $10,000.00 (cash: $%.2f)\n", acct.CashBalance())

	if err := acct.Buy("AAPL", 10); err != nil {
		return err
	}
	fmt.Printf("Bought 10 AAPL @ $150.00 (cash: $%.2f)\n", acct.CashBalance())

	// A couple of operations the ledger rejects; the account is untouched.
	if err := acct.Buy("XXXX", 5); err != nil {
		fmt.Printf("Buy 5 XXXX rejected: %v\n", err)
	}
	if err := acct.Withdraw(20_000); err != nil {
		fmt.Printf("Withdraw $20,000.00 rejected: %v\n", err)
	}

	if err := acct.Sell("AAPL", 10); err != nil {
		return err
	}
	fmt.Printf("Sold 10 AAPL @ $150.00 (cash: $%.2f)\n", acct.CashBalance())

	if err := acct.Withdraw(500); err != nil {
		return err
	}
	fmt.Printf("Withdrew $500.00 (cash: $%.2f)\n\n", acct.CashBalance())

	return printReport(acct)
}
