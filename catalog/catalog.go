// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/democracy-vote/models"
)

var (
	ErrNotFound        = errors.New("proposal not found")
	ErrInvalidProposal = errors.New("invalid proposal")
)

// refreshLimit bounds concurrent contract reads during Refresh
const refreshLimit = 4

// InfoReader reads a proposal's on-chain state
type InfoReader interface {
	ProposalInfo(ctx context.Context, id uint64) (models.ProposalInfo, error)
}

type Stats struct {
	ActiveProposals int
	TotalVotes      int
}

// Catalog is the list of proposals shown on the dashboard, kept in
// insertion order.
type Catalog struct {
	mu        sync.RWMutex
	order     []string
	proposals map[string]models.Proposal
}

// New builds a catalog from ps. Ids must be unique and non-empty.
func New(ps []models.Proposal) (*Catalog, error) {
	c := &Catalog{proposals: make(map[string]models.Proposal, len(ps))}
	for _, p := range ps {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := c.proposals[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProposal, p.ID)
		}
		c.order = append(c.order, p.ID)
		c.proposals[p.ID] = p
	}
	return c, nil
}

func validate(p models.Proposal) error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProposal)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: proposal %s has no title", ErrInvalidProposal, p.ID)
	}
	switch p.Status {
	case models.StatusActive, models.StatusClosed, models.StatusPending:
	default:
		return fmt.Errorf("%w: proposal %s has status %q", ErrInvalidProposal, p.ID, p.Status)
	}
	if p.TotalVotes < 0 {
		return fmt.Errorf("%w: proposal %s has negative vote count", ErrInvalidProposal, p.ID)
	}
	return nil
}

// Load reads a JSON array of proposals from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read proposals file: %w", err)
	}
	var ps []models.Proposal
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parse proposals file %s: %w", path, err)
	}
	return New(ps)
}

// List returns a copy of every proposal in catalog order
func (c *Catalog) List() []models.Proposal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Proposal, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.proposals[id])
	}
	return out
}

func (c *Catalog) Get(id string) (models.Proposal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.proposals[id]
	if !ok {
		return models.Proposal{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// Apply overwrites the catalog entry for info.ID with contract state.
// Unknown ids are appended only when the contract actually holds the
// proposal; otherwise Apply returns false and the catalog is unchanged.
func (c *Catalog) Apply(info models.ProposalInfo) (models.Proposal, bool) {
	id := strconv.FormatUint(info.ID, 10)

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.proposals[id]
	if !ok {
		if !info.Exists() {
			return models.Proposal{}, false
		}
		p.ID = id
		c.order = append(c.order, id)
	}
	if info.Title != "" {
		p.Title = info.Title
	}
	if info.Description != "" {
		p.Description = info.Description
	}
	p.Status = info.Status()
	if !info.EndTime.IsZero() && info.EndTime.Unix() != 0 {
		p.EndsAt = info.EndTime
	}
	p.TotalVotes = int(info.TotalVotes)

	c.proposals[id] = p
	return p, true
}

// Refresh re-reads every proposal with a numeric id from the contract and
// applies the results. Failed reads are logged and returned joined; the
// proposals that could be read are still applied.
func (c *Catalog) Refresh(ctx context.Context, reader InfoReader) (int, error) {
	ids := c.numericIDs()

	var (
		mu       sync.Mutex
		applied  int
		failures []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshLimit)
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := reader.ProposalInfo(gctx, id)
			if err != nil {
				slog.Warn("proposal refresh failed", "proposal_id", id, "error", err)
				mu.Lock()
				failures = append(failures, fmt.Errorf("proposal %d: %w", id, err))
				mu.Unlock()
				return nil
			}
			c.Apply(info)

			mu.Lock()
			applied++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return applied, err
	}

	slog.Info("proposals refreshed", "applied", applied, "failed", len(failures))
	return applied, errors.Join(failures...)
}

func (c *Catalog) numericIDs() []uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []uint64
	for _, id := range c.order {
		if n, err := strconv.ParseUint(id, 10, 64); err == nil {
			ids = append(ids, n)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var s Stats
	for _, p := range c.proposals {
		if p.Status == models.StatusActive {
			s.ActiveProposals++
		}
		s.TotalVotes += p.TotalVotes
	}
	return s
}

// Defaults returns the proposals the dashboard shows when no file is
// configured.
func Defaults() []models.Proposal {
	return []models.Proposal{
		{
			ID:          "1",
			Title:       "Infrastructure Blockchain Integration",
			Description: "Proposal to integrate blockchain technology into city infrastructure management for enhanced transparency and efficiency.",
			Status:      models.StatusActive,
			EndsAt:      time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
			TotalVotes:  1247,
		},
		{
			ID:          "2",
			Title:       "Digital Identity Verification System",
			Description: "Implementation of secure digital identity verification using zero-knowledge proofs for citizen services.",
			Status:      models.StatusActive,
			EndsAt:      time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			TotalVotes:  892,
		},
		{
			ID:          "3",
			Title:       "Renewable Energy Initiative",
			Description: "City-wide adoption of renewable energy sources with blockchain-based energy trading platform.",
			Status:      models.StatusPending,
			EndsAt:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			TotalVotes:  0,
		},
	}
}

// NewDefault returns a catalog holding Defaults()
func NewDefault() *Catalog {
	c, err := New(Defaults())
	if err != nil {
		panic(err)
	}
	return c
}
