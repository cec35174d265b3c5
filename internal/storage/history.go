// Package storage provides submission history implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.HistoryStore = (*MemoryHistory)(nil)

// DefaultCapacity is how many entries MemoryHistory keeps by default.
const DefaultCapacity = 100

// Option configures a MemoryHistory.
type Option func(*MemoryHistory)

// WithCapacity bounds the number of retained entries. Values < 1 are
// ignored.
func WithCapacity(n int) Option {
	return func(h *MemoryHistory) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// MemoryHistory is an in-memory, bounded history, oldest first. Appending
// the same expression twice in a row refreshes the newest entry instead of
// adding a duplicate. Safe for concurrent access.
type MemoryHistory struct {
	mu       sync.RWMutex
	entries  []domain.HistoryEntry
	capacity int
	log      *logger.Logger
}

// NewMemoryHistory creates an empty history.
func NewMemoryHistory(log *logger.Logger, opts ...Option) *MemoryHistory {
	h := &MemoryHistory{
		capacity: DefaultCapacity,
		log:      log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append records an entry, evicting the oldest once full.
func (h *MemoryHistory) Append(ctx context.Context, entry domain.HistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1].Expr == entry.Expr {
		h.entries[n-1] = entry
		h.log.Debug("history: refreshed %q", entry.Expr)
		return nil
	}

	h.entries = append(h.entries, entry)
	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.log.Debug("history: appended %q (count=%d)", entry.Expr, len(h.entries))
	return nil
}

// List returns a copy of the entries, oldest first.
func (h *MemoryHistory) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out, nil
}

// Clear removes every entry.
func (h *MemoryHistory) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	h.log.Debug("history: cleared")
	return nil
}
