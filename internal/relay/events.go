// Package relay carries session notifications from the simulation to the
// persistence and minting collaborators without blocking the frame loop.
package relay

import (
	"time"

	"github.com/vovakirdan/astro-arcade/internal/sim"
)

// Event is a notification processed by the relay worker.
type Event interface {
	relayEvent()
}

// StartedEvent opens a session record.
type StartedEvent struct {
	SessionID string
	Wallet    string
	Mode      string
	At        time.Time
}

func (StartedEvent) relayEvent() {}

// ProgressEvent updates the running score and level.
type ProgressEvent struct {
	SessionID string
	Score     int
	Level     int
	At        time.Time
}

func (ProgressEvent) relayEvent() {}

// TokenAwardedEvent records a collected token and requests a mint.
type TokenAwardedEvent struct {
	SessionID string
	Wallet    string
	Amount    int
	At        time.Time
}

func (TokenAwardedEvent) relayEvent() {}

// MintedEvent reports a successful mint back to the worker.
type MintedEvent struct {
	SessionID string
	Signature string
	At        time.Time
}

func (MintedEvent) relayEvent() {}

// EndedEvent finalizes a session. Abandoned runs carry no summary and
// do not produce a score.
type EndedEvent struct {
	SessionID string
	Summary   sim.Summary
	Abandoned bool
	At        time.Time
}

func (EndedEvent) relayEvent() {}
