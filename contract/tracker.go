// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/democracy-vote/metrics"
)

// Pending is a contract write that has been handed to the wallet and has
// not settled yet
type Pending struct {
	ID        uuid.UUID
	Method    string
	StartedAt time.Time
}

// Tracker records outstanding contract writes. Loading is derived from the
// set, so overlapping calls cannot clear each other's state. The in-flight
// gauge is written under the same lock so it never lags the set.
type Tracker struct {
	mu      sync.Mutex
	pending map[uuid.UUID]Pending
	metrics *metrics.Metrics
}

func NewTracker(m *metrics.Metrics) *Tracker {
	return &Tracker{
		pending: make(map[uuid.UUID]Pending),
		metrics: m,
	}
}

// Begin registers a new outstanding call and returns its id
func (t *Tracker) Begin(method string) uuid.UUID {
	p := Pending{ID: uuid.New(), Method: method, StartedAt: time.Now()}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending[p.ID] = p
	t.metrics.SetInFlight(len(t.pending))
	return p.ID
}

// End settles the call. Ending an unknown id is a no-op.
func (t *Tracker) End(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.pending, id)
	t.metrics.SetInFlight(len(t.pending))
}

// IsLoading is true iff at least one call is outstanding
func (t *Tracker) IsLoading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

// Outstanding returns the pending calls, oldest first
func (t *Tracker) Outstanding() []Pending {
	t.mu.Lock()
	out := make([]Pending, 0, len(t.pending))
	for _, p := range t.pending {
		out = append(out, p)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
