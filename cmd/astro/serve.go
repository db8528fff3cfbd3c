package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-arcade/internal/platform/tui"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeMode   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the astro SSH server",
	Long: `Start an SSH server that allows users to connect and play.

The SSH user name is the wallet the session is played for.
All connections share one database: sessions, scores and the dev ledger.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.astro/host_key

Examples:
  astro serve                           # Listen on :23234
  astro serve --ssh :2222               # Listen on port 2222
  astro serve --mode hardcore           # Serve hardcore sessions

Users can connect with:
  ssh <wallet>@localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "classic", "Game mode served to every connection")
}

func runServe(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagServeMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagServeMode)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "astro-ssh")

	rl, stop, err := startRelay(logger)
	if err != nil {
		logger.Warn("could not open database, sessions will not be recorded", "error", err)
	}
	if stop != nil {
		defer stop()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	factory := func(wallet string) (registry.Game, error) {
		return newSession(flagServeMode, wallet, rl)
	}

	server, err := tui.NewSSHServer(cfg, factory, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting astro SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh <wallet>@localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
	}
}
