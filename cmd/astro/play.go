package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/platform/tui"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a session",
	Long: `Start a session in the given mode (default: classic).

Controls:
  Enter        - Start / launch
  Left/Right   - Rotate (A/D)
  Up           - Thrust (W)
  Space        - Fire
  1 / 2 / 3    - Use ship / token bomb / shield pill
  P            - Pause and resume
  R            - Restart after game over
  B/Esc        - Back to the start screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower hazards
  normal - Config values
  hard   - Fewer lives, faster hazards
  fixed  - No progression with level

Examples:
  astro play --wallet alice
  astro play hardcore --wallet alice --difficulty hard
  astro play --wallet alice --seed 42 --config ./my-astro.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'astro list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Wallet:   flagWallet,
	}

	logFile := openLogFile()
	defer logFile.Close()
	logger := newLogger(logFile, "astro")

	rl, stop, err := startRelay(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without persistence - the game still works
	}

	game, err := newSession(mode, flagWallet, rl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg)

	if stop != nil {
		stop()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
