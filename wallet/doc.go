// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wallet implements contract.Wallet on top of go-ethereum.

The wallet starts disconnected. Connect loads a private key; from then on
writes are signed with a keyed transactor for the configured chain and
broadcast through the backend (normally an *ethclient.Client):

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	w := wallet.New(client, nil, 0)
	addr, err := w.Connect(ctx, cfg.PrivateKey)

Reads go through eth_call and work without a key.
*/
package wallet
