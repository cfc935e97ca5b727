// Package report handles ledger summaries
package report

import (
	"fmt"
	"sort"

	"paisaparse/cmd/root"
	"paisaparse/internal/common"
	"paisaparse/internal/ledger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a ledger file",
	Long: `Print income, spending, running balance and per-category totals for a
ledger file. The opening balance is taken from the configuration.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Report command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Ledger file is required (use --input)")
	}

	collection, err := common.ReadLedgerFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}

	summary := ledger.Summarize(collection, root.Cfg.OpeningBalance())

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Printf("Transactions: %d\n", len(collection))
	fmt.Printf("Income:       %s\n", green(summary.Income.StringFixed(2)))
	fmt.Printf("Spent:        %s\n", red(summary.Spent.StringFixed(2)))
	fmt.Printf("Balance:      %s\n", green(summary.Balance.StringFixed(2)))

	totals := ledger.CategoryTotals(collection)
	categories := make([]string, 0, len(totals))
	for name := range totals {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	if len(categories) > 0 {
		fmt.Println("\nBy category:")
		for _, name := range categories {
			fmt.Printf("  %-15s %s\n", name, totals[name].StringFixed(2))
		}
	}

	pending := 0
	for _, tx := range collection {
		if tx.IsPending() {
			pending++
		}
	}
	if pending > 0 {
		fmt.Printf("\n%d transactions pending confirmation\n", pending)
	}
}
