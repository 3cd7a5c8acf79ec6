// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting dashboard API.

# Handler Types

Each handler is a struct holding only the dependencies it uses:

  - ProposalHandler: Proposal list, contract reads, create and finalize
  - VotingHandler: Ballot submission
  - SessionHandler: Session creation and the session's local votes
  - WalletHandler: Wallet status, connect and disconnect
  - NotificationHandler: Recent notification feed

Handlers are created via constructor functions:

	proposalHandler := handlers.NewProposalHandler(orch, catalog, sessions)

# Proposals

	GET  /proposals                → ListProposals (?refresh=true re-reads the contract)
	GET  /proposals/{id}           → GetProposal (getProposalInfo, cached)
	POST /proposals                → CreateProposal
	POST /proposals/{id}/finalize  → FinalizeProposal
	GET  /stats                    → GetStats

# Voting Flow

A browser first creates a session, then votes with it:

	POST /sessions             → CreateSession (returns session_id)
	POST /proposals/{id}/votes → CastVote
	GET  /sessions/me/votes    → GetMyVotes

Vote and vote-list requests require the X-Session-ID header. A vote is
recorded in the session only once the wallet accepted the transaction.

# Write Outcomes

Every contract write answers with the notification the user was shown:

	201 Created              transaction submitted
	400 Bad Request          malformed input or invalid vote choice
	412 Precondition Failed  wallet not connected
	502 Bad Gateway          wallet or node rejected the call
*/
package handlers
