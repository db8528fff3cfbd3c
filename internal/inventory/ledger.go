// Package inventory implements the bounded resource ledger of a session.
package inventory

import (
	"errors"
	"fmt"
)

// Kind identifies a resource tracked by the ledger.
type Kind int

const (
	Ships Kind = iota
	Tokens
	Pills
)

// Kinds lists every known resource kind.
var Kinds = []Kind{Ships, Tokens, Pills}

// String returns the resource name.
func (k Kind) String() string {
	switch k {
	case Ships:
		return "ships"
	case Tokens:
		return "tokens"
	case Pills:
		return "pills"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a resource name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResourceKind, name)
}

var (
	// ErrResourceExhausted reports a ledger operation denied by capacity or availability.
	ErrResourceExhausted = errors.New("inventory: resource exhausted")
	// ErrUnknownResourceKind reports an operation on an unregistered kind.
	ErrUnknownResourceKind = errors.New("inventory: unknown resource kind")
)

// Limits holds the fixed capacity and reset value of a kind.
type Limits struct {
	Capacity int
	Default  int
}

// DefaultLimits returns the stock capacities: ships 5 (3 on reset),
// tokens 99 and pills 99 (0 on reset).
func DefaultLimits() map[Kind]Limits {
	return map[Kind]Limits{
		Ships:  {Capacity: 5, Default: 3},
		Tokens: {Capacity: 99, Default: 0},
		Pills:  {Capacity: 99, Default: 0},
	}
}

// Ledger is a set of bounded counters. For every kind
// 0 <= count <= capacity holds after every operation.
// It has no locking; the owning session serializes access.
type Ledger struct {
	limits map[Kind]Limits
	counts map[Kind]int
}

// New creates a ledger with the given limits, reset to defaults.
// A nil map uses DefaultLimits.
func New(limits map[Kind]Limits) *Ledger {
	if limits == nil {
		limits = DefaultLimits()
	}
	l := &Ledger{
		limits: make(map[Kind]Limits, len(limits)),
		counts: make(map[Kind]int, len(limits)),
	}
	for k, lim := range limits {
		if lim.Capacity < 0 {
			lim.Capacity = 0
		}
		if lim.Default > lim.Capacity {
			lim.Default = lim.Capacity
		}
		if lim.Default < 0 {
			lim.Default = 0
		}
		l.limits[k] = lim
	}
	l.Reset()
	return l
}

// Reset restores every kind to its default count.
func (l *Ledger) Reset() {
	for k, lim := range l.limits {
		l.counts[k] = lim.Default
	}
}

// Count returns the current count of kind, 0 for unknown kinds.
func (l *Ledger) Count(k Kind) int {
	return l.counts[k]
}

// Capacity returns the capacity of kind, 0 for unknown kinds.
func (l *Ledger) Capacity(k Kind) int {
	return l.limits[k].Capacity
}

// Counts returns a copy of all counts.
func (l *Ledger) Counts() map[Kind]int {
	out := make(map[Kind]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

// Known reports whether kind is registered.
func (l *Ledger) Known(k Kind) bool {
	_, ok := l.limits[k]
	return ok
}

// CanAddItem reports whether amount more units fit without clamping.
func (l *Ledger) CanAddItem(k Kind, amount int) bool {
	lim, ok := l.limits[k]
	if !ok || amount < 0 {
		return false
	}
	return l.counts[k]+amount <= lim.Capacity
}

// AddItem adds amount units, clamping at capacity.
// Returns false only for an unknown kind or negative amount.
func (l *Ledger) AddItem(k Kind, amount int) bool {
	return l.TryAdd(k, amount) == nil
}

// TryAdd is AddItem reporting the reason for a failure.
func (l *Ledger) TryAdd(k Kind, amount int) error {
	lim, ok := l.limits[k]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResourceKind, k)
	}
	if amount < 0 {
		return fmt.Errorf("inventory: negative amount %d for %s", amount, k)
	}
	l.counts[k] = min(l.counts[k]+amount, lim.Capacity)
	return nil
}

// RemoveItem removes amount units. Returns false with no mutation when
// fewer than amount are held.
func (l *Ledger) RemoveItem(k Kind, amount int) bool {
	return l.TryRemove(k, amount) == nil
}

// TryRemove is RemoveItem reporting the reason for a failure.
func (l *Ledger) TryRemove(k Kind, amount int) error {
	if _, ok := l.limits[k]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResourceKind, k)
	}
	if amount < 0 {
		return fmt.Errorf("inventory: negative amount %d for %s", amount, k)
	}
	if l.counts[k] < amount {
		return fmt.Errorf("%w: %s has %d, need %d", ErrResourceExhausted, k, l.counts[k], amount)
	}
	l.counts[k] -= amount
	return nil
}

// UseItem consumes one unit of kind and returns the effect to apply.
// Returns false with no mutation when the kind is exhausted or unknown.
func (l *Ledger) UseItem(k Kind) (Effect, bool) {
	eff, err := l.TryUse(k)
	return eff, err == nil
}

// TryUse is UseItem reporting the reason for a failure.
func (l *Ledger) TryUse(k Kind) (Effect, error) {
	if err := l.TryRemove(k, 1); err != nil {
		return EffectNone, err
	}
	return ApplyUse(k), nil
}
