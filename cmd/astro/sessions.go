package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-arcade/internal/storage"
)

var flagSessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions [id]",
	Short: "Show recorded sessions",
	Long: `List the most recently updated session records, or show one in full.

Examples:
  astro sessions
  astro sessions --limit 50
  astro sessions 3f1c2a9e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Number of sessions to list")
}

func runSessions(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showSession(store, args[0])
		return
	}

	records, err := store.ListSessions(flagSessionLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-20s  %-8s  %-5s  %-6s  %s\n", "ID", "Wallet", "Score", "Level", "Tokens", "Status")
	fmt.Printf("  %-36s  %-20s  %-8s  %-5s  %-6s  %s\n", "--", "------", "-----", "-----", "------", "------")
	for _, r := range records {
		fmt.Printf("  %-36s  %-20s  %-8d  %-5d  %-6d  %s\n",
			r.ID, r.WalletAddress, r.Score, r.LevelReached, sum(r.TokensEarned), status(r))
	}
}

func showSession(store *storage.Store, id string) {
	rec, err := store.LoadSession(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no session %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Session       %s\n", rec.ID)
	fmt.Printf("Wallet        %s\n", rec.WalletAddress)
	fmt.Printf("Mode          %s\n", rec.Mode)
	fmt.Printf("Score         %d\n", rec.Score)
	fmt.Printf("Level         %d\n", rec.LevelReached)
	fmt.Printf("Tokens        %d\n", sum(rec.TokensEarned))
	fmt.Printf("Started       %s\n", rec.SessionStart.Format(time.RFC3339))
	if rec.SessionEnd != nil {
		fmt.Printf("Ended         %s (%s)\n", rec.SessionEnd.Format(time.RFC3339), rec.SessionEnd.Sub(rec.SessionStart).Round(time.Second))
	}
	fmt.Printf("Last update   %s\n", rec.LastUpdated.Format(time.RFC3339))
	if len(rec.Mints) > 0 {
		fmt.Printf("Mints         %s\n", strings.Join(rec.Mints, "\n              "))
	}
}

func status(r storage.SessionRecord) string {
	if r.Open() {
		return "open"
	}
	return "closed"
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
