// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/democracy-vote/models"
)

func TestDefaults(t *testing.T) {
	c := NewDefault()
	ps := c.List()
	if len(ps) != 3 {
		t.Fatalf("expected 3 default proposals, got %d", len(ps))
	}

	tests := []struct {
		id     string
		status string
		votes  int
	}{
		{"1", models.StatusActive, 1247},
		{"2", models.StatusActive, 892},
		{"3", models.StatusPending, 0},
	}
	for i, tt := range tests {
		if ps[i].ID != tt.id || ps[i].Status != tt.status || ps[i].TotalVotes != tt.votes {
			t.Errorf("proposal %d = %+v, want id=%s status=%s votes=%d", i, ps[i], tt.id, tt.status, tt.votes)
		}
	}

	stats := c.Stats()
	if stats.ActiveProposals != 2 {
		t.Errorf("ActiveProposals = %d, want 2", stats.ActiveProposals)
	}
	if stats.TotalVotes != 2139 {
		t.Errorf("TotalVotes = %d, want 2139", stats.TotalVotes)
	}
}

func TestGet(t *testing.T) {
	c := NewDefault()

	p, err := c.Get("2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Title != "Digital Identity Verification System" {
		t.Errorf("unexpected title %q", p.Title)
	}

	if _, err := c.Get("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	ok := models.Proposal{ID: "1", Title: "t", Status: models.StatusActive}

	tests := []struct {
		name string
		ps   []models.Proposal
	}{
		{"empty id", []models.Proposal{{Title: "t", Status: models.StatusActive}}},
		{"no title", []models.Proposal{{ID: "1", Status: models.StatusActive}}},
		{"bad status", []models.Proposal{{ID: "1", Title: "t", Status: "open"}}},
		{"negative votes", []models.Proposal{{ID: "1", Title: "t", Status: models.StatusActive, TotalVotes: -1}}},
		{"duplicate", []models.Proposal{ok, ok}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.ps); !errors.Is(err, ErrInvalidProposal) {
				t.Errorf("expected ErrInvalidProposal, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposals.json")
	data := `[
		{"id": "10", "title": "Park Renovation", "description": "Fix the park", "status": "active", "ends_at": "2025-06-01T00:00:00Z", "total_votes": 12},
		{"id": "budget", "title": "Budget Review", "status": "closed", "ends_at": "2025-01-01T00:00:00Z", "total_votes": 300}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ps := c.List()
	if len(ps) != 2 || ps[0].ID != "10" || ps[1].ID != "budget" {
		t.Fatalf("unexpected proposals: %+v", ps)
	}
	if !ps[0].EndsAt.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end time %v", ps[0].EndsAt)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0o600)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestApply(t *testing.T) {
	c := NewDefault()
	end := time.Unix(1_800_000_000, 0)

	p, ok := c.Apply(models.ProposalInfo{
		ID:         3,
		TotalVotes: 9,
		IsActive:   true,
		StartTime:  time.Unix(1_700_000_000, 0),
		EndTime:    end,
	})
	if !ok || p.Status != models.StatusActive || p.TotalVotes != 9 || !p.EndsAt.Equal(end) {
		t.Errorf("unexpected applied proposal %+v", p)
	}
	if p.Title != "Renewable Energy Initiative" {
		t.Errorf("empty contract title should keep catalog title, got %q", p.Title)
	}

	added, ok := c.Apply(models.ProposalInfo{ID: 4, Title: "New", StartTime: time.Unix(1, 0)})
	if !ok || added.ID != "4" || added.Status != models.StatusClosed {
		t.Errorf("unexpected added proposal %+v", added)
	}
	if got := len(c.List()); got != 4 {
		t.Errorf("expected 4 proposals after apply, got %d", got)
	}
}

func TestApplyIgnoresUnknownZeroInfo(t *testing.T) {
	c := NewDefault()

	for id := uint64(100); id < 150; id++ {
		if _, ok := c.Apply(models.ProposalInfo{ID: id, StartTime: time.Unix(0, 0), EndTime: time.Unix(0, 0)}); ok {
			t.Fatalf("zero-valued info for %d should not be applied", id)
		}
	}
	if _, ok := c.Apply(models.ProposalInfo{ID: 200, Title: "Unstarted"}); ok {
		t.Error("info without a start time should not be applied")
	}

	if got := len(c.List()); got != 3 {
		t.Errorf("expected catalog to stay at 3 proposals, got %d", got)
	}
	if _, err := c.Get("100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Known ids still take the contract state, even when it is empty
	p, ok := c.Apply(models.ProposalInfo{ID: 3})
	if !ok || p.Title != "Renewable Energy Initiative" || p.Status != models.StatusPending {
		t.Errorf("unexpected update of known proposal: %+v ok=%v", p, ok)
	}
}

type fakeReader struct {
	mu    sync.Mutex
	calls []uint64
	fail  map[uint64]error
}

func (r *fakeReader) ProposalInfo(ctx context.Context, id uint64) (models.ProposalInfo, error) {
	r.mu.Lock()
	r.calls = append(r.calls, id)
	r.mu.Unlock()

	if err := r.fail[id]; err != nil {
		return models.ProposalInfo{}, err
	}
	return models.ProposalInfo{
		ID:         id,
		Title:      "on-chain",
		TotalVotes: uint8(id),
		StartTime:  time.Unix(1_700_000_000, 0),
	}, nil
}

func TestRefresh(t *testing.T) {
	ps := append(Defaults(), models.Proposal{ID: "local", Title: "Off-chain", Status: models.StatusPending})
	c, err := New(ps)
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("rpc down")
	reader := &fakeReader{fail: map[uint64]error{2: boom}}

	applied, err := c.Refresh(context.Background(), reader)
	if !errors.Is(err, boom) {
		t.Errorf("expected joined rpc error, got %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(reader.calls) != 3 {
		t.Errorf("expected 3 reads (non-numeric ids skipped), got %d", len(reader.calls))
	}

	p1, _ := c.Get("1")
	if p1.Title != "on-chain" || p1.Status != models.StatusClosed || p1.TotalVotes != 1 {
		t.Errorf("proposal 1 not refreshed: %+v", p1)
	}
	p2, _ := c.Get("2")
	if p2.TotalVotes != 892 {
		t.Errorf("failed read should leave proposal 2 untouched, got %+v", p2)
	}
}

func TestRefreshCancelled(t *testing.T) {
	c := NewDefault()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	applied, err := c.Refresh(ctx, &fakeReader{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
}
