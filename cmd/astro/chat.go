package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-arcade/internal/storage"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Read or post chat messages",
	Long: `Without arguments, print the chat history (last 100 messages).
With a message, post it as --wallet.

Examples:
  astro chat
  astro chat --wallet alice gg everyone`,
	Run: runChat,
}

func runChat(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) > 0 {
		if flagWallet == "" {
			fmt.Fprintln(os.Stderr, "Error: --wallet is required to post")
			os.Exit(1)
		}
		msg := storage.ChatMessage{
			Wallet: flagWallet,
			Text:   strings.Join(args, " "),
			At:     time.Now().UTC(),
		}
		if err := store.AppendChat(msg); err != nil {
			fmt.Fprintf(os.Stderr, "Error posting message: %v\n", err)
			os.Exit(1)
		}
	}

	history, err := store.ChatHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading chat: %v\n", err)
		os.Exit(1)
	}
	if len(history) == 0 {
		fmt.Println("No messages yet.")
		return
	}
	for _, m := range history {
		fmt.Printf("[%s] %s: %s\n", m.At.Local().Format("Jan 02 15:04"), m.Wallet, m.Text)
	}
}
