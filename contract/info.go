// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/obfuscate"
)

const proposalInfoOutputs = 12

// ProposalInfo reads a proposal from the contract. Results are cached until
// a vote or finalization on the same proposal succeeds.
func (o *Orchestrator) ProposalInfo(ctx context.Context, proposalID uint64) (models.ProposalInfo, error) {
	if info, ok := o.info.Get(proposalID); ok {
		return info, nil
	}

	out, err := o.wallet.ReadContract(ctx, ReadRequest{
		Address:      o.address,
		ABI:          o.abi,
		FunctionName: MethodGetProposalInfo,
		Args:         []interface{}{new(big.Int).SetUint64(proposalID)},
	})
	if err != nil {
		return models.ProposalInfo{}, &CallError{Method: MethodGetProposalInfo, Err: err}
	}

	info, err := decodeProposalInfo(proposalID, out)
	if err != nil {
		return models.ProposalInfo{}, &CallError{Method: MethodGetProposalInfo, Err: err}
	}

	o.info.Add(proposalID, info)
	return info, nil
}

// InvalidateProposalInfo drops any cached copy of the proposal
func (o *Orchestrator) InvalidateProposalInfo(proposalID uint64) {
	o.info.Remove(proposalID)
}

func decodeProposalInfo(id uint64, out []interface{}) (models.ProposalInfo, error) {
	if len(out) != proposalInfoOutputs {
		return models.ProposalInfo{}, fmt.Errorf("expected %d outputs, got %d", proposalInfoOutputs, len(out))
	}

	d := decoder{out: out}
	info := models.ProposalInfo{
		ID:              id,
		Title:           revealText(d.string(0)),
		Description:     revealText(d.string(1)),
		YesVotes:        d.uint8(2),
		NoVotes:         d.uint8(3),
		AbstainVotes:    d.uint8(4),
		TotalVotes:      d.uint8(5),
		IsActive:        d.bool(6),
		IsPassed:        d.bool(7),
		Proposer:        d.address(8).Hex(),
		StartTime:       unixTime(d.bigInt(9)),
		EndTime:         unixTime(d.bigInt(10)),
		QuorumThreshold: d.bigInt(11).Uint64(),
	}
	if d.err != nil {
		return models.ProposalInfo{}, d.err
	}
	return info, nil
}

// decoder pulls typed values out of unpacked ABI outputs, keeping the first
// type mismatch
type decoder struct {
	out []interface{}
	err error
}

func (d *decoder) mismatch(i int, want string) {
	if d.err == nil {
		d.err = fmt.Errorf("output %d: expected %s, got %T", i, want, d.out[i])
	}
}

func (d *decoder) string(i int) string {
	v, ok := d.out[i].(string)
	if !ok {
		d.mismatch(i, "string")
	}
	return v
}

func (d *decoder) uint8(i int) uint8 {
	v, ok := d.out[i].(uint8)
	if !ok {
		d.mismatch(i, "uint8")
	}
	return v
}

func (d *decoder) bool(i int) bool {
	v, ok := d.out[i].(bool)
	if !ok {
		d.mismatch(i, "bool")
	}
	return v
}

func (d *decoder) address(i int) common.Address {
	v, ok := d.out[i].(common.Address)
	if !ok {
		d.mismatch(i, "address")
	}
	return v
}

func (d *decoder) bigInt(i int) *big.Int {
	v, ok := d.out[i].(*big.Int)
	if !ok || v == nil {
		d.mismatch(i, "*big.Int")
		return new(big.Int)
	}
	return v
}

// revealText undoes the text obfuscation applied at creation. Text that was
// stored by some other client and is not base64 is returned unchanged.
func revealText(s string) string {
	plain, err := obfuscate.DeobfuscateText(s)
	if err != nil {
		return s
	}
	return plain
}

func unixTime(v *big.Int) time.Time {
	if v.Sign() == 0 || !v.IsInt64() {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}
