package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Minting errors.
var (
	ErrInvalidAmount = errors.New("relay: mint amount must be positive")
	ErrNoWallet      = errors.New("relay: mint without wallet")
)

// Minter credits tokens to a wallet and returns a transaction signature.
type Minter interface {
	Mint(ctx context.Context, wallet string, amount int) (string, error)
}

// KV is the blob store the dev ledger lives in.
type KV interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, v any) error
}

// LedgerPrefix prefixes dev ledger keys in the blob store.
const LedgerPrefix = "ledger:"

// Mint is one credited amount in the dev ledger.
type Mint struct {
	Signature string    `json:"signature"`
	Amount    int       `json:"amount"`
	At        time.Time `json:"at"`
}

// Account is a wallet's dev ledger entry.
type Account struct {
	Wallet  string `json:"wallet"`
	Balance int    `json:"balance"`
	Mints   []Mint `json:"mints"`
}

// LedgerMinter is a Minter backed by the blob store. It stands in for an
// on-chain program during development.
type LedgerMinter struct {
	mu    sync.Mutex
	store KV
	now   func() time.Time
}

// NewLedgerMinter creates a dev ledger minter.
func NewLedgerMinter(store KV) *LedgerMinter {
	return &LedgerMinter{store: store, now: time.Now}
}

// Mint credits amount to wallet.
func (m *LedgerMinter) Mint(ctx context.Context, wallet string, amount int) (string, error) {
	if wallet == "" {
		return "", ErrNoWallet
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.account(wallet)
	if err != nil {
		return "", err
	}

	sig := uuid.NewString()
	acct.Balance += amount
	acct.Mints = append(acct.Mints, Mint{Signature: sig, Amount: amount, At: m.now()})
	if err := m.store.Set(LedgerPrefix+wallet, acct); err != nil {
		return "", fmt.Errorf("relay: cannot record mint: %w", err)
	}
	return sig, nil
}

// Balance returns the credited total of a wallet.
func (m *LedgerMinter) Balance(wallet string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, err := m.account(wallet)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

func (m *LedgerMinter) account(wallet string) (Account, error) {
	acct := Account{Wallet: wallet}
	raw, err := m.store.Get(LedgerPrefix + wallet)
	if err != nil {
		return acct, fmt.Errorf("relay: cannot read ledger: %w", err)
	}
	if raw == nil {
		return acct, nil
	}
	if err := json.Unmarshal(raw, &acct); err != nil {
		return acct, fmt.Errorf("relay: cannot decode ledger: %w", err)
	}
	return acct, nil
}
