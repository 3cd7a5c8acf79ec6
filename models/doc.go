// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateProposalRequest: title, description, duration_seconds, quorum_threshold
  - CastVoteRequest: choice ("yes", "no", "abstain" or "1".."3")

# Response Types

Types for JSON responses:

  - TransactionResponse: tx_hash, notification
  - CastVoteResponse: tx_hash, proposal_id, choice, has_voted, notification
  - CreateSessionResponse: session_id
  - SessionVotesResponse: session_id, proposal_ids
  - WalletStatusResponse: connected, address, is_loading, outstanding
  - ListProposalsResponse: proposal cards with has_voted
  - StatsResponse: dashboard counters
  - NotificationsResponse: recent notifications
  - ErrorResponse: error, message, notification

# Domain Types

  - VoteChoice: closed enumeration Yes=1, No=2, Abstain=3
  - Proposal: dashboard copy of a proposal
  - ProposalInfo: decoded getProposalInfo output
  - Notification: toast message (title, description, variant)

# Constants

Status values:

	StatusActive  = "active"
	StatusClosed  = "closed"
	StatusPending = "pending"

Notification variants:

	VariantDefault     = "default"
	VariantDestructive = "destructive"
*/
package models
