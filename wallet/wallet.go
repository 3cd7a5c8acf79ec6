// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/danielhkuo/democracy-vote/contract"
)

var (
	ErrDisconnected = errors.New("no account connected")
	ErrInvalidKey   = errors.New("invalid private key")
)

// Backend is the subset of ethclient.Client the wallet needs
type Backend interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

var _ contract.Wallet = (*EVM)(nil)

// EVM signs contract calls with a locally held key and submits them over
// JSON-RPC
type EVM struct {
	backend  Backend
	gasLimit uint64

	mu      sync.RWMutex
	chainID *big.Int
	key     *ecdsa.PrivateKey
	address common.Address
}

// New returns a disconnected wallet. A nil chainID is resolved from the node
// on first Connect. A zero gasLimit means estimate per call.
func New(backend Backend, chainID *big.Int, gasLimit uint64) *EVM {
	return &EVM{
		backend:  backend,
		chainID:  chainID,
		gasLimit: gasLimit,
	}
}

// Connect loads a hex-encoded secp256k1 key and makes its account the
// signer for subsequent writes
func (w *EVM) Connect(ctx context.Context, hexKey string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	chainID, err := w.resolveChainID(ctx)
	if err != nil {
		return common.Address{}, err
	}

	address := crypto.PubkeyToAddress(key.PublicKey)

	w.mu.Lock()
	w.key = key
	w.address = address
	w.chainID = chainID
	w.mu.Unlock()

	slog.Info("wallet connected", "address", address.Hex(), "chain_id", chainID)
	return address, nil
}

// Disconnect forgets the key
func (w *EVM) Disconnect() {
	w.mu.Lock()
	w.key = nil
	w.address = common.Address{}
	w.mu.Unlock()

	slog.Info("wallet disconnected")
}

func (w *EVM) IsConnected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.key != nil
}

func (w *EVM) Address() common.Address {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.address
}

// WriteContract signs and broadcasts the call. It returns once the node has
// accepted the transaction; inclusion is not awaited.
func (w *EVM) WriteContract(ctx context.Context, req contract.WriteRequest) (common.Hash, error) {
	w.mu.RLock()
	key, chainID := w.key, w.chainID
	w.mu.RUnlock()

	if key == nil {
		return common.Hash{}, ErrDisconnected
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = w.gasLimit

	bound := bind.NewBoundContract(req.Address, req.ABI, w.backend, w.backend, w.backend)
	tx, err := bound.Transact(opts, req.FunctionName, req.Args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit %s: %w", req.FunctionName, err)
	}

	slog.Debug("transaction sent", "method", req.FunctionName, "tx_hash", tx.Hash().Hex(), "nonce", tx.Nonce())
	return tx.Hash(), nil
}

// ReadContract performs an eth_call against the latest block
func (w *EVM) ReadContract(ctx context.Context, req contract.ReadRequest) ([]interface{}, error) {
	bound := bind.NewBoundContract(req.Address, req.ABI, w.backend, w.backend, w.backend)

	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: w.Address()}
	if err := bound.Call(opts, &out, req.FunctionName, req.Args...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", req.FunctionName, err)
	}
	return out, nil
}

func (w *EVM) resolveChainID(ctx context.Context) (*big.Int, error) {
	w.mu.RLock()
	chainID := w.chainID
	w.mu.RUnlock()

	if chainID != nil {
		return chainID, nil
	}

	chainID, err := w.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chain id: %w", err)
	}
	return chainID, nil
}
