// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the democracy-vote API server.

democracy-vote backs a voting dashboard: it lists proposals, and creates,
votes on and finalizes them through an on-chain voting contract, signing
with a server-held wallet key. Proposal text and vote choices are obfuscated
before they leave the process. The obfuscation is a reversible placeholder,
not encryption.

# Starting the Server

All settings have defaults, so the server starts with no configuration
(read-only, against the Sepolia public RPC):

	go run .

To sign transactions, point it at the contract and give it a key:

	CONTRACT_ADDRESS=0x... PRIVATE_KEY=... go run .

Or with flags:

	go run . -p 3318 -rpc http://127.0.0.1:8545 -contract 0x... -env .env

# Configuration

  - PORT (-p): Server port (default: 3318)
  - RPC_URL (-rpc): JSON-RPC endpoint
  - CONTRACT_ADDRESS (-contract): Voting contract
  - PRIVATE_KEY (-key): Wallet key; without one the wallet stays disconnected
  - PROPOSALS_FILE (-proposals): Dashboard proposal list

See package cliparse for the full list.

# Architecture

  - contract: Call orchestration (guard, encode, submit, notify)
  - wallet: go-ethereum signer implementing the contract's wallet
  - obfuscate: Text and choice encoding
  - session: Per-session local vote records
  - catalog: Dashboard proposal list
  - notify: Notification sinks (log, feed)
  - metrics: Prometheus collectors
  - handlers, router, middleware: HTTP surface
  - models: Request/response and domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
