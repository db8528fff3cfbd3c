package relay

import (
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/storage"
)

// Registry tracks open session records.
// Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*storage.SessionRecord
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*storage.SessionRecord)}
}

// Put adds or replaces a record.
func (r *Registry) Put(rec *storage.SessionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = rec
}

// Get retrieves a record by session ID.
func (r *Registry) Get(id string) (*storage.SessionRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return rec, ok
}

// Remove drops a record.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
}

// Count returns the number of open records.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Stale returns records not updated for longer than after, ordered by ID.
func (r *Registry) Stale(now time.Time, after time.Duration) []*storage.SessionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stale []*storage.SessionRecord
	for _, rec := range r.records {
		if now.Sub(rec.LastUpdated) > after {
			stale = append(stale, rec)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		return stale[i].ID < stale[j].ID
	})
	return stale
}
