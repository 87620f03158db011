package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/market"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Print the built-in price table",
	Long: `Print the symbols and prices served by the built-in price table.

A custom table can be supplied per session via the config file's "prices"
section; see the run command.`,
	RunE: runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	p := market.Default()

	fmt.Println("Symbol   Price")
	for _, sym := range p.Symbols() {
		price, err := p.Price(sym)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s $%.2f\n", sym, price)
	}
	return nil
}
