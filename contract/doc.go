// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package contract mediates every interaction with the voting contract.

# Orchestrator

The Orchestrator owns the three state-changing calls:

	orch, err := contract.NewOrchestrator(wallet, notifier, contract.Config{
		ContractAddress: addr,
	})

	res := orch.CreateProposal(ctx, title, description, 86400, 50)
	res := orch.CastVote(ctx, 42, models.ChoiceYes)
	res := orch.FinalizeProposal(ctx, 42)

Each call follows the same sequence:

 1. If the wallet is not connected, emit "Wallet Not Connected" and return
    without touching the wallet.
 2. CastVote only: reject anything other than Yes, No or Abstain.
 3. Obfuscate the payload (see package obfuscate; this is not encryption).
 4. Register the call as outstanding and hand it to the wallet.
 5. Emit a success or a generic failure notification.

Calls never panic and never return a bare error. The Result carries the
transaction hash on success, the notification shown to the user, and the
underlying cause on failure:

	if errors.Is(res.Err, contract.ErrNotConnected) { ... }

	var callErr *contract.CallError
	if errors.As(res.Err, &callErr) { ... } // wallet or chain failure

# Loading State

IsLoading reports whether any call is outstanding. Calls are tracked by id,
so overlapping calls settle independently. Nothing serializes calls; a
wallet that never answers keeps its call outstanding until the caller's
context ends.

# Reads

ProposalInfo decodes getProposalInfo and caches the result. A successful
vote or finalization drops the cached copy for that proposal. Reads do not
require a connected wallet.

# Collaborators

Wallet and Notifier are interfaces; package wallet provides the
go-ethereum implementation and package notify provides sinks.
*/
package contract
