// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify provides contract.Notifier sinks: a slog writer, a bounded
// in-memory feed the front end polls, and a fan-out combinator.
package notify
