// Package importcmd handles bulk import of CSV statement exports
package importcmd

import (
	"fmt"

	"paisaparse/cmd/root"
	"paisaparse/internal/common"
	"paisaparse/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV statement export",
	Long: `Import transactions from a loosely-structured CSV statement export.
Description and amount columns are discovered from the headers, malformed
rows are skipped, and every imported transaction starts out pending until
it is confirmed. With --output the batch is prepended to the ledger file.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Import command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}

	_, parser, err := root.BuildEngine()
	if err != nil {
		root.Log.Fatalf("Error loading categorization rules: %v", err)
	}

	transactions, err := parser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing CSV file: %v", err)
	}
	if len(transactions) == 0 {
		fmt.Println("No transactions could be recovered from the file.")
		return
	}

	for _, tx := range transactions {
		fmt.Printf("%s  %s  %s  [%s] %s\n", tx.ID, tx.Vendor, tx.Amount.String(), tx.Category, tx.Status)
	}
	root.Log.Infof("Imported %d transactions from %s", len(transactions), root.SharedFlags.Input)

	if root.SharedFlags.Output == "" {
		return
	}

	collection, err := common.ReadLedgerFile(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}
	collection = ledger.Prepend(collection, transactions...)
	if err := common.WriteLedgerFile(collection, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing ledger file: %v", err)
	}
	root.Log.Infof("Ledger written to %s", root.SharedFlags.Output)
}
