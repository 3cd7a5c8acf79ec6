// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/democracy-vote/catalog"
	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/notify"
	"github.com/danielhkuo/democracy-vote/session"
	"github.com/danielhkuo/democracy-vote/testutil"
)

// testEnv wires the handlers to in-memory fakes
type testEnv struct {
	wallet   *testutil.FakeWallet
	notifier *testutil.FakeNotifier
	feed     *notify.Feed
	orch     *contract.Orchestrator
	catalog  *catalog.Catalog
	sessions *session.Store

	proposals     *ProposalHandler
	voting        *VotingHandler
	sessionsH     *SessionHandler
	walletH       *WalletHandler
	notifications *NotificationHandler
}

func newTestEnv(t *testing.T, connected bool) *testEnv {
	t.Helper()
	cfg := testutil.GetTestConfig()

	env := &testEnv{
		wallet:   testutil.NewFakeWallet(connected),
		notifier: &testutil.FakeNotifier{},
		feed:     notify.NewFeed(cfg.NotificationFeedSize),
		catalog:  catalog.NewDefault(),
	}
	fan := notify.Fanout{env.notifier, env.feed}
	env.orch = testutil.NewTestOrchestrator(t, env.wallet, fan)

	sessions, err := session.NewStore(cfg.SessionCacheSize)
	if err != nil {
		t.Fatalf("Failed to create session store: %v", err)
	}
	env.sessions = sessions

	env.proposals = NewProposalHandler(env.orch, env.catalog, env.sessions)
	env.voting = NewVotingHandler(env.orch, env.sessions)
	env.sessionsH = NewSessionHandler(env.sessions)
	env.walletH = NewWalletHandler(env.wallet, env.orch, fan, "0xdeadbeef")
	env.notifications = NewNotificationHandler(env.feed)
	return env
}

// newSession registers a session and returns its id
func (env *testEnv) newSession(t *testing.T) string {
	t.Helper()
	id := session.NewSessionID()
	if _, err := env.sessions.Open(id); err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	return id
}

// serve runs a handler through a mux so path values are populated
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}
