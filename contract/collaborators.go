// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/democracy-vote/models"
)

// WriteRequest describes a state-changing contract call
type WriteRequest struct {
	Address      common.Address
	ABI          abi.ABI
	FunctionName string
	Args         []interface{}
}

// ReadRequest describes a view call
type ReadRequest struct {
	Address      common.Address
	ABI          abi.ABI
	FunctionName string
	Args         []interface{}
}

// Wallet signs and submits contract calls on behalf of the connected account
type Wallet interface {
	// IsConnected reports whether an account is available for signing
	IsConnected() bool
	// Address returns the connected account, or the zero address
	Address() common.Address
	// WriteContract signs and submits a transaction, returning its hash
	WriteContract(ctx context.Context, req WriteRequest) (common.Hash, error)
	// ReadContract executes a view call and returns the unpacked outputs
	ReadContract(ctx context.Context, req ReadRequest) ([]interface{}, error)
}

// Notifier surfaces status messages to the user. Delivery is fire and forget.
type Notifier interface {
	Notify(n models.Notification)
}
