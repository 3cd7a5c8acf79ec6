// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRecordLocalVote(t *testing.T) {
	rec := NewVoteRecord()

	if rec.HasVotedLocally("1") {
		t.Fatal("fresh record should be empty")
	}
	if !rec.RecordLocalVote("1") {
		t.Error("first record should report a new entry")
	}
	if !rec.HasVotedLocally("1") {
		t.Error("expected vote on 1 to be recorded")
	}
	if rec.HasVotedLocally("2") {
		t.Error("unexpected vote on 2")
	}
}

func TestRecordLocalVoteIdempotent(t *testing.T) {
	rec := NewVoteRecord()
	rec.RecordLocalVote("7")
	before := rec.IDs()

	if rec.RecordLocalVote("7") {
		t.Error("second record should not report a new entry")
	}
	if rec.Size() != 1 {
		t.Errorf("Size() = %d, want 1", rec.Size())
	}
	after := rec.IDs()
	if fmt.Sprint(before) != fmt.Sprint(after) {
		t.Errorf("set changed: %v -> %v", before, after)
	}
}

func TestIDsSorted(t *testing.T) {
	rec := NewVoteRecord()
	for _, id := range []string{"3", "1", "2"} {
		rec.RecordLocalVote(id)
	}
	if got := fmt.Sprint(rec.IDs()); got != "[1 2 3]" {
		t.Errorf("IDs() = %s, want [1 2 3]", got)
	}
}

func TestConcurrentRecord(t *testing.T) {
	rec := NewVoteRecord()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.RecordLocalVote(fmt.Sprint(i % 10))
		}(i)
	}
	wg.Wait()

	if rec.Size() != 10 {
		t.Errorf("Size() = %d, want 10", rec.Size())
	}
}

func TestStoreOpen(t *testing.T) {
	store, err := NewStore(4)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	id := NewSessionID()
	if _, ok := store.Get(id); ok {
		t.Fatal("session should not exist before Open")
	}

	rec, err := store.Open(id)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec.RecordLocalVote("1")

	again, err := store.Open(id)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !again.HasVotedLocally("1") {
		t.Error("reopened session lost its vote")
	}

	other, _ := store.Open(NewSessionID())
	if other.HasVotedLocally("1") {
		t.Error("sessions should not share votes")
	}
}

func TestStoreRejectsInvalidID(t *testing.T) {
	store, _ := NewStore(4)

	tests := []string{"", "abc", "1234"}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := store.Open(id)
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("Open(%q) error = %v, want ErrInvalidID", id, err)
			}
		})
	}
}

func TestStoreEvicts(t *testing.T) {
	store, _ := NewStore(2)

	first := NewSessionID()
	store.Open(first)
	store.Open(NewSessionID())
	store.Open(NewSessionID())

	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	if _, ok := store.Get(first); ok {
		t.Error("oldest session should have been evicted")
	}
}

func TestNewStoreInvalidSize(t *testing.T) {
	if _, err := NewStore(0); err == nil {
		t.Error("expected error for zero size")
	}
}
