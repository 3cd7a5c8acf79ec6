// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danielhkuo/democracy-vote/metrics"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/obfuscate"
)

const defaultInfoCacheSize = 256

// Result is the outcome of a contract write. TxHash is set only on success.
// Notification is what the user was shown; Err keeps the cause.
type Result struct {
	TxHash       *common.Hash
	Notification models.Notification
	Err          error
}

func (r Result) OK() bool {
	return r.Err == nil && r.TxHash != nil
}

type Config struct {
	ContractAddress common.Address
	InfoCacheSize   int
	Metrics         *metrics.Metrics
}

// Orchestrator guards, encodes and submits every state-changing call to the
// voting contract, and reports the outcome through the notifier
type Orchestrator struct {
	wallet   Wallet
	notifier Notifier
	address  common.Address
	abi      abi.ABI
	tracker  *Tracker
	metrics  *metrics.Metrics
	info     *lru.Cache[uint64, models.ProposalInfo]
}

func NewOrchestrator(wallet Wallet, notifier Notifier, cfg Config) (*Orchestrator, error) {
	parsed, err := VotingABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse voting ABI: %w", err)
	}

	size := cfg.InfoCacheSize
	if size <= 0 {
		size = defaultInfoCacheSize
	}
	info, err := lru.New[uint64, models.ProposalInfo](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal info cache: %w", err)
	}

	return &Orchestrator{
		wallet:   wallet,
		notifier: notifier,
		address:  cfg.ContractAddress,
		abi:      parsed,
		tracker:  NewTracker(cfg.Metrics),
		metrics:  cfg.Metrics,
		info:     info,
	}, nil
}

type operation struct {
	method       string
	disconnected models.Notification
	success      models.Notification
	failure      models.Notification
}

var (
	createProposalOp = operation{
		method:       MethodCreateProposal,
		disconnected: notConnected("Please connect your wallet to create proposals"),
		success: models.Notification{
			Title:       "Proposal Created",
			Description: "Your proposal has been encoded and submitted to the blockchain",
		},
		failure: failed("Proposal Creation Failed"),
	}
	castVoteOp = operation{
		method:       MethodCastVote,
		disconnected: notConnected("Please connect your wallet to vote"),
		success: models.Notification{
			Title:       "Vote Cast Successfully",
			Description: "Your obfuscated vote has been submitted to the blockchain",
		},
		failure: failed("Vote Failed"),
	}
	finalizeProposalOp = operation{
		method:       MethodFinalizeProposal,
		disconnected: notConnected("Please connect your wallet to finalize proposals"),
		success: models.Notification{
			Title:       "Proposal Finalized",
			Description: "The proposal has been finalized and results are now available",
		},
		failure: failed("Finalization Failed"),
	}

	invalidChoice = models.Notification{
		Title:       "Invalid Vote Choice",
		Description: "Choose yes, no or abstain",
		Variant:     models.VariantDestructive,
	}
)

func notConnected(description string) models.Notification {
	return models.Notification{
		Title:       "Wallet Not Connected",
		Description: description,
		Variant:     models.VariantDestructive,
	}
}

func failed(title string) models.Notification {
	return models.Notification{
		Title:       title,
		Description: "Please try again or check your wallet connection",
		Variant:     models.VariantDestructive,
	}
}

// CreateProposal submits a new proposal. Title and description are
// obfuscated before they leave the process.
func (o *Orchestrator) CreateProposal(ctx context.Context, title, description string, durationSeconds, quorumPercent uint64) Result {
	if !o.connected() {
		return o.reject(createProposalOp.method, createProposalOp.disconnected, ErrNotConnected, metrics.OutcomeNotConnected)
	}

	return o.submit(ctx, createProposalOp,
		obfuscate.ObfuscateText(title),
		obfuscate.ObfuscateText(description),
		new(big.Int).SetUint64(durationSeconds),
		new(big.Int).SetUint64(quorumPercent),
	)
}

// CastVote submits a ballot. Only Yes, No and Abstain are accepted.
func (o *Orchestrator) CastVote(ctx context.Context, proposalID uint64, choice models.VoteChoice) Result {
	if !o.connected() {
		return o.reject(castVoteOp.method, castVoteOp.disconnected, ErrNotConnected, metrics.OutcomeNotConnected)
	}
	if !choice.Valid() {
		err := fmt.Errorf("%w: %d", ErrInvalidChoice, uint8(choice))
		return o.reject(castVoteOp.method, invalidChoice, err, metrics.OutcomeInvalidChoice)
	}

	res := o.submit(ctx, castVoteOp,
		new(big.Int).SetUint64(proposalID),
		uint8(obfuscate.ObfuscateChoice(int(choice))),
	)
	if res.OK() {
		o.info.Remove(proposalID)
	}
	return res
}

// FinalizeProposal closes voting on a proposal
func (o *Orchestrator) FinalizeProposal(ctx context.Context, proposalID uint64) Result {
	if !o.connected() {
		return o.reject(finalizeProposalOp.method, finalizeProposalOp.disconnected, ErrNotConnected, metrics.OutcomeNotConnected)
	}

	res := o.submit(ctx, finalizeProposalOp, new(big.Int).SetUint64(proposalID))
	if res.OK() {
		o.info.Remove(proposalID)
	}
	return res
}

// IsLoading is true while at least one write is outstanding
func (o *Orchestrator) IsLoading() bool {
	return o.tracker.IsLoading()
}

func (o *Orchestrator) Outstanding() []Pending {
	return o.tracker.Outstanding()
}

func (o *Orchestrator) Wallet() Wallet {
	return o.wallet
}

func (o *Orchestrator) connected() bool {
	return o.wallet.IsConnected() && o.wallet.Address() != (common.Address{})
}

func (o *Orchestrator) reject(method string, n models.Notification, err error, outcome string) Result {
	slog.Info("contract call rejected", "method", method, "reason", err)
	o.metrics.ObserveCall(method, outcome)
	o.notify(n)
	return Result{Notification: n, Err: err}
}

func (o *Orchestrator) submit(ctx context.Context, op operation, args ...interface{}) Result {
	id := o.tracker.Begin(op.method)
	defer o.tracker.End(id)

	hash, err := o.wallet.WriteContract(ctx, WriteRequest{
		Address:      o.address,
		ABI:          o.abi,
		FunctionName: op.method,
		Args:         args,
	})
	if err != nil {
		slog.Warn("contract call failed", "method", op.method, "request_id", id, "error", err)
		o.metrics.ObserveCall(op.method, metrics.OutcomeFailed)
		o.notify(op.failure)
		return Result{Notification: op.failure, Err: &CallError{Method: op.method, Err: err}}
	}

	slog.Info("contract call submitted", "method", op.method, "request_id", id, "tx_hash", hash.Hex())
	o.metrics.ObserveCall(op.method, metrics.OutcomeSuccess)
	o.notify(op.success)
	return Result{TxHash: &hash, Notification: op.success}
}

func (o *Orchestrator) notify(n models.Notification) {
	variant := n.Variant
	if variant == "" {
		variant = models.VariantDefault
	}
	o.metrics.ObserveNotification(variant)
	if o.notifier != nil {
		o.notifier.Notify(n)
	}
}
