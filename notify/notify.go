// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/models"
)

var (
	_ contract.Notifier = Logger{}
	_ contract.Notifier = (*Feed)(nil)
	_ contract.Notifier = Fanout(nil)
)

// Logger writes notifications to slog. Destructive ones are logged as warnings.
type Logger struct{}

func (Logger) Notify(n models.Notification) {
	if n.Variant == models.VariantDestructive {
		slog.Warn("notification", "title", n.Title, "description", n.Description)
		return
	}
	slog.Info("notification", "title", n.Title, "description", n.Description)
}

// Fanout delivers each notification to every sink in order
type Fanout []contract.Notifier

func (f Fanout) Notify(n models.Notification) {
	for _, sink := range f {
		sink.Notify(n)
	}
}

type entry struct {
	id        uuid.UUID
	n         models.Notification
	createdAt time.Time
}

// Feed keeps the most recent notifications in a fixed-size ring
type Feed struct {
	mu      sync.Mutex
	entries []entry
	next    int
	full    bool
	now     func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 1
	}
	return &Feed{
		entries: make([]entry, size),
		now:     time.Now,
	}
}

func (f *Feed) Notify(n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[f.next] = entry{id: uuid.New(), n: n, createdAt: f.now()}
	f.next = (f.next + 1) % len(f.entries)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to limit notifications, newest first. A limit of zero
// or less returns everything held.
func (f *Feed) Recent(limit int) []models.NotificationEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := f.next
	if f.full {
		count = len(f.entries)
	}
	if limit > 0 && limit < count {
		count = limit
	}

	now := f.now()
	out := make([]models.NotificationEntry, 0, count)
	for i := 1; i <= count; i++ {
		e := f.entries[(f.next-i+len(f.entries))%len(f.entries)]
		out = append(out, models.NotificationEntry{
			ID:           e.id.String(),
			Notification: e.n,
			CreatedAt:    e.createdAt,
			Age:          humanize.RelTime(e.createdAt, now, "ago", "from now"),
		})
	}
	return out
}
