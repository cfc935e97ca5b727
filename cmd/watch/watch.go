// Package watch handles continuous extraction from a message stream
package watch

import (
	"bufio"
	"fmt"
	"os"

	"paisaparse/cmd/root"
	"paisaparse/internal/common"
	"paisaparse/internal/ledger"
	"paisaparse/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the watch command
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Extract transactions from a stream of messages on stdin",
	Long: `Read notification messages line by line from standard input and extract
a transaction from each line that carries one. Non-transactional lines are
ignored silently. With --output every extracted transaction is prepended to
the ledger file as it arrives.`,
	Run: watchFunc,
}

func watchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Watch command called, reading messages from stdin")

	parser, _, err := root.BuildEngine()
	if err != nil {
		root.Log.Fatalf("Error loading categorization rules: %v", err)
	}

	var collection []models.Transaction
	if root.SharedFlags.Output != "" {
		existing, err := common.ReadLedgerFile(root.SharedFlags.Output)
		if err != nil {
			root.Log.Fatalf("Error reading ledger file: %v", err)
		}
		collection = existing
	}

	matched := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tx, ok := parser.Extract(scanner.Text())
		if !ok {
			continue
		}
		matched++
		fmt.Printf("%s  %s  %s  [%s]\n", tx.ID, tx.Vendor, tx.Amount.String(), tx.Category)

		if root.SharedFlags.Output != "" {
			collection = ledger.Prepend(collection, tx)
			if err := common.WriteLedgerFile(collection, root.SharedFlags.Output); err != nil {
				root.Log.Fatalf("Error writing ledger file: %v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		root.Log.Fatalf("Error reading stdin: %v", err)
	}
	root.Log.Infof("Stream ended, %d transactions extracted", matched)
}
