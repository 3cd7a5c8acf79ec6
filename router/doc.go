// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting dashboard API.

# Route Registration

NewRouter returns the CORS-wrapped handler with all endpoints:

	handler := router.NewRouter(deps, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Sessions:

	POST /sessions          - Start a dashboard session
	GET  /sessions/me/votes - Proposals this session voted on

Proposals:

	GET  /proposals               - Dashboard list (?refresh=true)
	POST /proposals               - Create proposal on chain
	GET  /proposals/{id}          - Contract state
	POST /proposals/{id}/votes    - Cast vote (X-Session-ID)
	POST /proposals/{id}/finalize - Finalize proposal
	GET  /stats                   - Dashboard counters

Wallet:

	GET  /wallet            - Connection and loading state
	POST /wallet/connect    - Connect with the configured key
	POST /wallet/disconnect - Disconnect

Notifications:

	GET /notifications - Recent notifications, newest first

# Handler Initialization

The router creates handler instances from Deps, passing each only what it
uses:

	proposalHandler := handlers.NewProposalHandler(deps.Orchestrator, deps.Catalog, deps.Sessions)
	votingHandler := handlers.NewVotingHandler(deps.Orchestrator, deps.Sessions)
*/
package router
