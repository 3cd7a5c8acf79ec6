// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session tracks which proposals each browser session has voted on.
//
// Records live in memory only and are lost on restart. A vote is recorded
// after the wallet accepts the transaction, so a record means "this client
// submitted a vote", not "the chain counted it".
package session
