// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/democracy-vote/catalog"
	"github.com/danielhkuo/democracy-vote/cliparse"
	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/handlers"
	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/notify"
	"github.com/danielhkuo/democracy-vote/session"
)

// Deps are the long-lived components the handlers share
type Deps struct {
	Orchestrator *contract.Orchestrator
	Wallet       handlers.WalletController
	Notifier     contract.Notifier
	Catalog      *catalog.Catalog
	Sessions     *session.Store
	Feed         *notify.Feed
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

func NewRouter(deps Deps, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	proposalHandler := handlers.NewProposalHandler(deps.Orchestrator, deps.Catalog, deps.Sessions)
	votingHandler := handlers.NewVotingHandler(deps.Orchestrator, deps.Sessions)
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)
	walletHandler := handlers.NewWalletHandler(deps.Wallet, deps.Orchestrator, deps.Notifier, cfg.PrivateKey)
	notificationHandler := handlers.NewNotificationHandler(deps.Feed)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/me/votes", middleware.WithLogging(sessionHandler.GetMyVotes))

	// Proposals
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.CreateProposal))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(proposalHandler.GetProposal))
	mux.HandleFunc("POST /proposals/{id}/finalize", middleware.WithLogging(proposalHandler.FinalizeProposal))
	mux.HandleFunc("GET /stats", middleware.WithLogging(proposalHandler.GetStats))

	// Voting
	mux.HandleFunc("POST /proposals/{id}/votes", middleware.WithLogging(votingHandler.CastVote))

	// Wallet
	mux.HandleFunc("GET /wallet", middleware.WithLogging(walletHandler.GetStatus))
	mux.HandleFunc("POST /wallet/connect", middleware.WithLogging(walletHandler.Connect))
	mux.HandleFunc("POST /wallet/disconnect", middleware.WithLogging(walletHandler.Disconnect))

	// Notifications
	mux.HandleFunc("GET /notifications", middleware.WithLogging(notificationHandler.ListNotifications))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("democracy-vote API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
