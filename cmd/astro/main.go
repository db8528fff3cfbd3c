// astro is a terminal asteroids game with wallet-gated sessions and
// token rewards.
//
// Usage:
//
//	astro list               - List game modes
//	astro play [mode]        - Play a session
//	astro serve              - Start SSH server for remote play
//	astro scores [mode]      - Show high scores
//	astro sessions [id]      - Show recorded sessions
//	astro chat [message]     - Read or post to the chat history
//	astro wallet             - Show dev ledger balance
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.astro/astro.db)
//	--wallet <address>    - Wallet the session is played for
//	--config <path>       - Custom astro.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-arcade/internal/sim"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagWallet     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astro",
	Short: "Astro - asteroids in your terminal",
	Long: `Astro is a terminal asteroids game. Runs are tied to a wallet,
collected tokens are minted to it and every run is recorded.

Available commands:
  list      - Show game modes
  play      - Play a session
  serve     - Start SSH server for remote play
  scores    - View high scores
  sessions  - View recorded sessions
  chat      - Read or post chat messages
  wallet    - Show minted token balance

Examples:
  astro play --wallet 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
  astro play hardcore --wallet alice --difficulty hard
  astro serve --ssh :2222
  astro scores -i`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		sim.SetConfigPath(flagConfig)
		sim.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.astro/astro.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagWallet, "wallet", "", "Wallet address to play for")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom astro config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(walletCmd)
}
