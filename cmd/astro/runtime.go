package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-arcade/internal/registry"
	"github.com/vovakirdan/astro-arcade/internal/relay"
	"github.com/vovakirdan/astro-arcade/internal/sim"
	"github.com/vovakirdan/astro-arcade/internal/storage"
)

// newLogger creates a structured logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens ~/.astro/astro.log for the local player, whose
// terminal belongs to the game. Falls back to discarding.
func openLogFile() io.WriteCloser {
	home, err := os.UserHomeDir()
	if err != nil {
		return nopCloser{io.Discard}
	}
	dir := filepath.Join(home, ".astro")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(filepath.Join(dir, "astro.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// startRelay opens the database and starts a relay writing to it.
// The returned stop function drains the relay and closes the store.
func startRelay(logger *log.Logger) (*relay.Relay, func(), error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}

	rl := relay.New(relay.DefaultConfig(), store, relay.NewLedgerMinter(store), relay.WithLogger(logger))
	rl.Start()

	stop := func() {
		rl.Stop()
		store.Close()
	}
	return rl, stop, nil
}

// newSession creates a session of mode reporting to rl, if any.
func newSession(mode, wallet string, rl *relay.Relay) (registry.Game, error) {
	game, err := registry.Create(mode)
	if err != nil {
		return nil, err
	}
	if s, ok := game.(*sim.Session); ok && rl != nil {
		s.SetHooks(rl.Bind(wallet, s.ID(), s.State))
	}
	return game, nil
}
