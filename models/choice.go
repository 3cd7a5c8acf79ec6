// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownChoice = errors.New("choice must be one of: yes, no, abstain")

// VoteChoice is the plaintext ballot choice. Values match the contract's
// uint8 encoding before obfuscation.
type VoteChoice uint8

const (
	ChoiceYes     VoteChoice = 1
	ChoiceNo      VoteChoice = 2
	ChoiceAbstain VoteChoice = 3
)

func (c VoteChoice) Valid() bool {
	return c >= ChoiceYes && c <= ChoiceAbstain
}

func (c VoteChoice) String() string {
	switch c {
	case ChoiceYes:
		return "yes"
	case ChoiceNo:
		return "no"
	case ChoiceAbstain:
		return "abstain"
	default:
		return "invalid(" + strconv.Itoa(int(c)) + ")"
	}
}

// ParseVoteChoice accepts a label (yes/no/abstain, any case) or the
// numeric form 1..3
func ParseVoteChoice(s string) (VoteChoice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "1":
		return ChoiceYes, nil
	case "no", "2":
		return ChoiceNo, nil
	case "abstain", "3":
		return ChoiceAbstain, nil
	}
	return 0, ErrUnknownChoice
}
