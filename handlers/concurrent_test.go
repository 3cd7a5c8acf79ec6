// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different
// sessions each reach the wallet once and are recorded in their own session
func TestConcurrentVotes(t *testing.T) {
	env := newTestEnv(t, true)

	numVoters := 10
	sessionIDs := make([]string, numVoters)
	for i := range sessionIDs {
		sessionIDs[i] = env.newSession(t)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			choice := []string{"yes", "no", "abstain"}[voterIdx%3]
			path := fmt.Sprintf("/proposals/%d/votes", voterIdx%2+1)
			req, h := castVote(env, sessionIDs[voterIdx], path, choice)
			w := serve("POST /proposals/{id}/votes", h, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != int32(numVoters) {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}
	if got := len(env.wallet.Writes()); got != numVoters {
		t.Errorf("Expected %d wallet calls, got %d", numVoters, got)
	}
	for i, sid := range sessionIDs {
		rec, _ := env.sessions.Get(sid)
		want := fmt.Sprint(i%2 + 1)
		if rec.Size() != 1 || !rec.HasVotedLocally(want) {
			t.Errorf("Session %d: expected only proposal %s, got %v", i, want, rec.IDs())
		}
	}
	if env.orch.IsLoading() {
		t.Error("IsLoading should be false once every vote settled")
	}
}

// TestWalletStatusWhileCallsOutstanding holds two writes open in the wallet
// and checks the loading state reported over HTTP as each one settles
func TestWalletStatusWhileCallsOutstanding(t *testing.T) {
	env := newTestEnv(t, true)

	release := map[string]chan struct{}{
		contract.MethodCastVote:         make(chan struct{}),
		contract.MethodFinalizeProposal: make(chan struct{}),
	}
	started := make(chan string, 2)
	env.wallet.WriteHook = func(ctx context.Context, req contract.WriteRequest) (common.Hash, error) {
		started <- req.FunctionName
		select {
		case <-release[req.FunctionName]:
			return common.HexToHash("0x01"), nil
		case <-ctx.Done():
			return common.Hash{}, ctx.Err()
		}
	}

	status := func() models.WalletStatusResponse {
		t.Helper()
		w := serve("GET /wallet", env.walletH.GetStatus, testutil.MakeRequest("GET", "/wallet", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.WalletStatusResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	sid := env.newSession(t)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		req, h := castVote(env, sid, "/proposals/1/votes", "yes")
		serve("POST /proposals/{id}/votes", h, req)
	}()
	go func() {
		defer wg.Done()
		req := testutil.MakeRequest("POST", "/proposals/1/finalize", nil, nil)
		serve("POST /proposals/{id}/finalize", env.proposals.FinalizeProposal, req)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatal("Timed out waiting for wallet calls")
		}
	}

	if resp := status(); !resp.IsLoading || len(resp.Outstanding) != 2 {
		t.Fatalf("Expected two outstanding calls, got %+v", resp)
	}

	// Settle finalize first, whichever order they started in
	close(release[contract.MethodFinalizeProposal])
	waitFor(t, func() bool { return len(env.orch.Outstanding()) == 1 })
	if resp := status(); !resp.IsLoading || len(resp.Outstanding) != 1 || resp.Outstanding[0].Method != contract.MethodCastVote {
		t.Errorf("Expected castVote still outstanding, got %+v", resp)
	}

	close(release[contract.MethodCastVote])
	wg.Wait()
	if resp := status(); resp.IsLoading || len(resp.Outstanding) != 0 {
		t.Errorf("Expected idle wallet, got %+v", resp)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
