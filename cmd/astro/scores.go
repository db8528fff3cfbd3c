package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astro-arcade/internal/platform/tui"
	"github.com/vovakirdan/astro-arcade/internal/registry"
	"github.com/vovakirdan/astro-arcade/internal/storage"
)

var (
	flagInteractive bool
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores of a mode (default: classic).

With --wallet, only that wallet's runs are listed.

Examples:
  astro scores
  astro scores hardcore
  astro scores --wallet alice
  astro scores --stats
  astro scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-mode statistics")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'astro list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunLeaderboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case flagStats:
		printStats(store)
	default:
		printScores(store, mode)
	}
}

func printScores(store *storage.Store, mode string) {
	var (
		scores []storage.ScoreEntry
		err    error
		title  = mode
	)
	if flagWallet != "" {
		scores, err = store.WalletScores(flagWallet, 10)
		title = "wallet " + flagWallet
	} else {
		scores, err = store.TopScores(mode, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'astro play %s --wallet <address>' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-20s  %s\n", "Rank", "Score", "Level", "Mode", "Wallet", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-20s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %-20s  %s\n",
			i+1, e.Score, e.Level, e.GameID, e.Wallet, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagWallet == "" {
		if best, err := store.HighScore(mode); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-5s  %-8s  %-9s  %-9s  %s\n", "Mode", "Runs", "Best", "Average", "Top lvl", "Last played")
	fmt.Printf("  %-10s  %-5s  %-8s  %-9s  %-9s  %s\n", "----", "----", "----", "-------", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-5d  %-8d  %-9.1f  %-9d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
