// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrInvalidID = errors.New("invalid session id")

// VoteRecord is the set of proposal ids a session has voted on. It is an
// optimistic cache of what this client submitted, not a reflection of chain
// state.
type VoteRecord struct {
	mu    sync.RWMutex
	voted map[string]struct{}
}

func NewVoteRecord() *VoteRecord {
	return &VoteRecord{voted: make(map[string]struct{})}
}

// RecordLocalVote adds id to the set. It reports whether id was newly added;
// recording the same id twice leaves the set unchanged.
func (r *VoteRecord) RecordLocalVote(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.voted[id]; ok {
		return false
	}
	r.voted[id] = struct{}{}
	return true
}

func (r *VoteRecord) HasVotedLocally(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.voted[id]
	return ok
}

func (r *VoteRecord) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.voted)
}

// IDs returns the recorded proposal ids in sorted order
func (r *VoteRecord) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.voted))
	for id := range r.voted {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// NewSessionID returns a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Store maps session ids to vote records. The least recently used sessions
// are evicted once the store is full.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *VoteRecord]
}

func NewStore(size int) (*Store, error) {
	if size <= 0 {
		return nil, fmt.Errorf("session store size must be positive, got %d", size)
	}
	cache, err := lru.New[string, *VoteRecord](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Open returns the record for id, creating an empty one if needed
func (s *Store) Open(id string) (*VoteRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.cache.Get(id); ok {
		return rec, nil
	}
	rec := NewVoteRecord()
	s.cache.Add(id, rec)
	return rec, nil
}

// Get returns the record for id without creating one
func (s *Store) Get(id string) (*VoteRecord, bool) {
	return s.cache.Get(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
