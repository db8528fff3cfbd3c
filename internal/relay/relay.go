package relay

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-arcade/internal/clock"
	"github.com/vovakirdan/astro-arcade/internal/storage"
)

// Store is the persistence the relay writes through.
type Store interface {
	SaveSession(rec storage.SessionRecord) error
	SaveScore(gameID, wallet string, score, level int) (int64, error)
}

// Config holds relay tuning.
type Config struct {
	BufferSize    int           // Queued events before the oldest is dropped
	StaleAfter    time.Duration // Idle time before an open session is closed
	CleanupPeriod time.Duration // How often to look for stale sessions
	MintTimeout   time.Duration // Deadline of a single mint call
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:    256,
		StaleAfter:    10 * time.Minute,
		CleanupPeriod: time.Minute,
		MintTimeout:   10 * time.Second,
	}
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Relay) { r.logger = l }
}

// WithTimeProvider sets the wall clock used for record timestamps.
func WithTimeProvider(tp clock.TimeProvider) Option {
	return func(r *Relay) { r.wall = tp }
}

// Relay owns session records. A single worker goroutine applies events
// so records are never written concurrently.
type Relay struct {
	cfg      Config
	store    Store
	minter   Minter // Optional, can be nil
	logger   *log.Logger
	wall     clock.TimeProvider
	sink     *EventSink
	sessions *Registry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a relay. Call Start to begin processing.
func New(cfg Config, store Store, minter Minter, opts ...Option) *Relay {
	def := DefaultConfig()
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = def.StaleAfter
	}
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = def.CleanupPeriod
	}
	if cfg.MintTimeout <= 0 {
		cfg.MintTimeout = def.MintTimeout
	}

	r := &Relay{
		cfg:      cfg,
		store:    store,
		minter:   minter,
		logger:   log.New(io.Discard),
		wall:     clock.System{},
		sink:     NewEventSink(cfg.BufferSize),
		sessions: NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ctx, r.cancel = context.WithCancel(context.Background())
	return r
}

// Start begins background processing.
func (r *Relay) Start() {
	r.wg.Add(1)
	go r.run()
}

// Stop closes the sink, lets the worker drain queued events and waits
// for in-flight mints.
func (r *Relay) Stop() {
	r.once.Do(func() {
		r.sink.Close()
		r.wg.Wait()
		r.cancel()
	})
}

// Send queues an event. Never blocks.
func (r *Relay) Send(evt Event) {
	r.sink.Send(evt)
}

// Sessions returns the registry of open sessions.
func (r *Relay) Sessions() *Registry {
	return r.sessions
}

// Dropped returns the number of events lost to overflow.
func (r *Relay) Dropped() uint64 {
	return r.sink.Dropped()
}

func (r *Relay) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case evt := <-r.sink.Events():
			r.handle(evt)
		case <-ticker.C:
			r.sweepStale(r.wall.Now())
		case <-r.sink.Done():
			for {
				select {
				case evt := <-r.sink.Events():
					r.handle(evt)
				default:
					return
				}
			}
		}
	}
}

func (r *Relay) handle(evt Event) {
	switch e := evt.(type) {
	case StartedEvent:
		r.handleStarted(e)
	case ProgressEvent:
		r.update(e.SessionID, e.At, func(rec *storage.SessionRecord) {
			rec.Score = e.Score
			rec.LevelReached = max(rec.LevelReached, e.Level)
		})
	case TokenAwardedEvent:
		r.update(e.SessionID, e.At, func(rec *storage.SessionRecord) {
			rec.TokensEarned = append(rec.TokensEarned, e.Amount)
		})
		r.mint(e)
	case MintedEvent:
		r.update(e.SessionID, e.At, func(rec *storage.SessionRecord) {
			rec.Mints = append(rec.Mints, e.Signature)
		})
	case EndedEvent:
		r.handleEnded(e)
	}
}

func (r *Relay) handleStarted(e StartedEvent) {
	rec := &storage.SessionRecord{
		ID:            e.SessionID,
		WalletAddress: e.Wallet,
		Mode:          e.Mode,
		TokensEarned:  []int{},
		LevelReached:  1,
		SessionStart:  e.At,
		LastUpdated:   e.At,
	}
	r.sessions.Put(rec)
	r.save(rec)
	r.logger.Info("session started", "session", e.SessionID, "wallet", e.Wallet, "mode", e.Mode)
}

func (r *Relay) handleEnded(e EndedEvent) {
	rec, ok := r.sessions.Get(e.SessionID)
	if !ok {
		r.logger.Warn("end of unknown session", "session", e.SessionID)
		return
	}
	r.sessions.Remove(e.SessionID)

	end := e.At
	rec.SessionEnd = &end
	rec.LastUpdated = e.At
	if !e.Abandoned {
		sum := e.Summary
		rec.Score = sum.Score
		rec.LevelReached = max(rec.LevelReached, sum.LevelReached)
		rec.TokensEarned = append([]int{}, sum.TokensEarned...)
	}
	r.save(rec)

	if e.Abandoned {
		r.logger.Info("session abandoned", "session", rec.ID, "wallet", rec.WalletAddress)
		return
	}
	if _, err := r.store.SaveScore(rec.Mode, rec.WalletAddress, rec.Score, rec.LevelReached); err != nil {
		r.logger.Error("could not save score", "session", rec.ID, "error", err)
	}
	r.logger.Info("session ended",
		"session", rec.ID,
		"wallet", rec.WalletAddress,
		"score", rec.Score,
		"level", rec.LevelReached,
		"tokens", len(rec.TokensEarned),
	)
}

// update applies fn to an open record and persists it.
func (r *Relay) update(id string, at time.Time, fn func(*storage.SessionRecord)) {
	rec, ok := r.sessions.Get(id)
	if !ok {
		r.logger.Debug("event for unknown session", "session", id)
		return
	}
	fn(rec)
	rec.LastUpdated = at
	r.save(rec)
}

func (r *Relay) save(rec *storage.SessionRecord) {
	if err := r.store.SaveSession(*rec); err != nil {
		r.logger.Error("could not save session", "session", rec.ID, "error", err)
	}
}

// mint runs outside the worker. The outcome comes back as an event.
func (r *Relay) mint(e TokenAwardedEvent) {
	if r.minter == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(r.ctx, r.cfg.MintTimeout)
		defer cancel()

		sig, err := r.minter.Mint(ctx, e.Wallet, e.Amount)
		if err != nil {
			r.logger.Warn("mint failed", "session", e.SessionID, "wallet", e.Wallet, "amount", e.Amount, "error", err)
			return
		}
		r.logger.Info("minted", "session", e.SessionID, "wallet", e.Wallet, "amount", e.Amount, "signature", sig)
		r.sink.Send(MintedEvent{SessionID: e.SessionID, Signature: sig, At: r.wall.Now()})
	}()
}

// sweepStale closes sessions that stopped reporting.
func (r *Relay) sweepStale(now time.Time) {
	for _, rec := range r.sessions.Stale(now, r.cfg.StaleAfter) {
		r.sessions.Remove(rec.ID)
		end := now
		rec.SessionEnd = &end
		r.save(rec)
		r.logger.Info("closed stale session", "session", rec.ID, "wallet", rec.WalletAddress, "idle", now.Sub(rec.LastUpdated))
	}
}
