// Package confirm handles verification of pending imported transactions
package confirm

import (
	"fmt"

	"paisaparse/cmd/root"
	"paisaparse/internal/common"
	"paisaparse/internal/ledger"
	"paisaparse/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the confirm command
var Cmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm a pending imported transaction",
	Long: `Mark a pending transaction in the ledger file as verified.
Confirming an already verified transaction is a no-op, and an unknown
identifier leaves the ledger unchanged.`,
	Run: confirmFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.TransactionID, "id", "d", "", "Identifier of the transaction to confirm")
	Cmd.MarkFlagRequired("id")
}

func confirmFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Confirm command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Ledger file is required (use --input)")
	}

	collection, err := common.ReadLedgerFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}

	tx, ok := ledger.Find(collection, root.TransactionID)
	if !ok {
		fmt.Printf("No transaction with id %s in %s\n", root.TransactionID, root.SharedFlags.Input)
		return
	}
	if tx.Status == models.StatusVerified {
		fmt.Printf("Transaction %s is already verified\n", tx.ID)
		return
	}

	collection = ledger.Confirm(collection, root.TransactionID)
	if err := common.WriteLedgerFile(collection, root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Error writing ledger file: %v", err)
	}
	fmt.Printf("Transaction %s confirmed\n", root.TransactionID)
}
