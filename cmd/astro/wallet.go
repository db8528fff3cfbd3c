package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-arcade/internal/relay"
	"github.com/vovakirdan/astro-arcade/internal/storage"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show minted token balance",
	Long: `Print the dev ledger balance of --wallet.

Example:
  astro wallet --wallet alice`,
	Run: runWallet,
}

func runWallet(_ *cobra.Command, _ []string) {
	if flagWallet == "" {
		fmt.Fprintln(os.Stderr, "Error: --wallet is required")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	balance, err := relay.NewLedgerMinter(store).Balance(flagWallet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d tokens\n", flagWallet, balance)
}
