// Package sms handles extraction of transactions from notification text
package sms

import (
	"fmt"

	"paisaparse/cmd/root"
	"paisaparse/internal/common"
	"paisaparse/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the sms command
var Cmd = &cobra.Command{
	Use:   "sms",
	Short: "Extract a transaction from a bank notification message",
	Long: `Extract a structured transaction from a single bank notification message.
Spam and OTP messages are rejected, the amount and vendor are recovered from
the text, and the result is categorized. With --output the transaction is
prepended to the ledger file.`,
	Run: smsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.MessageText, "text", "t", "", "Notification message text to parse")
	Cmd.MarkFlagRequired("text")
}

func smsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("SMS command called")

	parser, _, err := root.BuildEngine()
	if err != nil {
		root.Log.Fatalf("Error loading categorization rules: %v", err)
	}

	tx, ok := parser.Extract(root.MessageText)
	if !ok {
		fmt.Println("Could not detect a valid transaction. Check the text format.")
		return
	}

	fmt.Printf("%s  %s  %s  [%s]\n", tx.ID, tx.Vendor, tx.Amount.String(), tx.Category)

	if root.SharedFlags.Output == "" {
		return
	}

	collection, err := common.ReadLedgerFile(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}
	collection = ledger.Prepend(collection, tx)
	if err := common.WriteLedgerFile(collection, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing ledger file: %v", err)
	}
	root.Log.Infof("Transaction %s appended to %s", tx.ID, root.SharedFlags.Output)
}
