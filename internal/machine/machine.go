// Package machine implements the game lifecycle state machine.
package machine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/clock"
)

// DefaultHistorySize is the number of transitions kept by default.
const DefaultHistorySize = 32

// State is a lifecycle state.
type State int

const (
	Initial State = iota
	ReadyToPlay
	Playing
	Paused
	GameOver
)

// States lists every state.
var States = []State{Initial, ReadyToPlay, Playing, Paused, GameOver}

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initial:
		return "INITIAL"
	case ReadyToPlay:
		return "READY_TO_PLAY"
	case Playing:
		return "PLAYING"
	case Paused:
		return "PAUSED"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("STATE(%d)", int(s))
	}
}

// adjacency is the fixed set of legal transitions.
var adjacency = map[State][]State{
	Initial:     {ReadyToPlay},
	ReadyToPlay: {Playing, Initial},
	Playing:     {Paused, GameOver},
	Paused:      {Playing, Initial},
	GameOver:    {ReadyToPlay, Initial},
}

// CanTransition reports whether from -> to is in the adjacency table.
func CanTransition(from, to State) bool {
	for _, s := range adjacency[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrInvalidTransition is matched by every rejected transition.
var ErrInvalidTransition = errors.New("machine: invalid transition")

// InvalidTransitionError describes a rejected request.
type InvalidTransitionError struct {
	From    State
	To      State
	Current State
}

func (e *InvalidTransitionError) Error() string {
	if e.From != e.Current {
		return fmt.Sprintf("machine: stale transition %s -> %s (current %s)", e.From, e.To, e.Current)
	}
	return fmt.Sprintf("machine: invalid transition %s -> %s", e.From, e.To)
}

// Is lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Transition is one accepted state change.
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Listener is notified after every accepted transition.
type Listener func(current, previous State)

// Machine is the lifecycle controller. It is owned by one goroutine.
type Machine struct {
	current       State
	previous      State
	transitioning bool
	err           error

	history []Transition
	head    int
	size    int

	listeners []Listener
	now       clock.TimeProvider
}

// Option configures a Machine.
type Option func(*Machine)

// WithHistorySize sets the transition history capacity.
func WithHistorySize(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.history = make([]Transition, n)
		}
	}
}

// WithTimeProvider sets the source of transition timestamps.
func WithTimeProvider(tp clock.TimeProvider) Option {
	return func(m *Machine) {
		m.now = tp
	}
}

// New creates a machine in the Initial state.
func New(opts ...Option) *Machine {
	m := &Machine{
		history: make([]Transition, DefaultHistorySize),
		now:     clock.System{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Previous returns the state before the last accepted transition.
func (m *Machine) Previous() State {
	return m.previous
}

// IsTransitioning is true while listeners of an accepted transition run.
func (m *Machine) IsTransitioning() bool {
	return m.transitioning
}

// Err returns the error of the last rejected request, or nil after a success.
func (m *Machine) Err() error {
	return m.err
}

// Subscribe registers a listener called after each accepted transition.
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// RequestTransition moves from -> to. It fails if the pair is not adjacent
// or from is not the current state; a failure leaves the state unchanged.
func (m *Machine) RequestTransition(from, to State) error {
	if from != m.current || !CanTransition(from, to) {
		m.err = &InvalidTransitionError{From: from, To: to, Current: m.current}
		return m.err
	}

	m.previous = from
	m.current = to
	m.err = nil
	m.record(Transition{From: from, To: to, At: m.now.Now()})

	m.transitioning = true
	for _, l := range m.listeners {
		l(m.current, m.previous)
	}
	m.transitioning = false
	return nil
}

// To transitions from the current state.
func (m *Machine) To(to State) error {
	return m.RequestTransition(m.current, to)
}

func (m *Machine) record(t Transition) {
	m.history[m.head] = t
	m.head = (m.head + 1) % len(m.history)
	if m.size < len(m.history) {
		m.size++
	}
}

// History returns the retained transitions, oldest first.
func (m *Machine) History() []Transition {
	out := make([]Transition, 0, m.size)
	start := (m.head - m.size + len(m.history)) % len(m.history)
	for i := 0; i < m.size; i++ {
		out = append(out, m.history[(start+i)%len(m.history)])
	}
	return out
}
