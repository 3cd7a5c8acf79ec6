// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - RPCURL: Ethereum JSON-RPC endpoint (default: Sepolia public RPC)
  - ChainID: Chain id used for signing (default: asked from the node)
  - ContractAddress: Voting contract address (default: zero address, with a warning)
  - PrivateKey: Wallet key; without one the wallet starts disconnected
  - GasLimit: Fixed gas limit for writes (default: estimated)
  - ProposalsFile: JSON proposal list (default: built-in proposals)
  - AllowedOrigins: CORS origins (default: *)
  - SessionCacheSize, NotificationFeedSize, InfoCacheSize: in-memory bounds

# CLI Flags

	-env         Path to a .env file
	-p           Server port
	-rpc         JSON-RPC endpoint
	-chain-id    Chain id
	-contract    Contract address
	-key         Private key
	-gas-limit   Fixed gas limit
	-proposals   Proposals file
	-origins     CORS origins
	-sessions    Session cache size
	-feed-size   Notification feed size
	-info-cache  Proposal info cache size

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	RPC_URL                → -rpc
	CHAIN_ID               → -chain-id
	CONTRACT_ADDRESS       → -contract
	PRIVATE_KEY            → -key
	GAS_LIMIT              → -gas-limit
	PROPOSALS_FILE         → -proposals
	ALLOWED_ORIGINS        → -origins
	SESSION_CACHE_SIZE     → -sessions
	NOTIFICATION_FEED_SIZE → -feed-size
	INFO_CACHE_SIZE        → -info-cache

CLI flags take precedence over environment variables. Variables from the
.env file (-env, or ./.env when present) never override ones already set.

# Validation

ParseFlags returns an error if:

  - a numeric variable does not parse or is out of range
  - CONTRACT_ADDRESS is not a 20-byte hex address
  - the -env file cannot be read

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	// ...
*/
package cliparse
