// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected  = errors.New("wallet not connected")
	ErrInvalidChoice = errors.New("invalid vote choice")
)

// CallError is a failure reported by the wallet or the chain while
// executing a contract call
type CallError struct {
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
