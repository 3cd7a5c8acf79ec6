// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract entry points
const (
	MethodCreateProposal   = "createProposal"
	MethodCastVote         = "castVote"
	MethodGetProposalInfo  = "getProposalInfo"
	MethodFinalizeProposal = "finalizeProposal"
)

// votingABI is the interface of the deployed voting contract. Only the
// four entry points used by the dashboard are declared.
const votingABI = `[
  {
    "type": "function",
    "name": "createProposal",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "_title", "type": "string", "internalType": "string"},
      {"name": "_description", "type": "string", "internalType": "string"},
      {"name": "_duration", "type": "uint256", "internalType": "uint256"},
      {"name": "_quorumThreshold", "type": "uint256", "internalType": "uint256"}
    ],
    "outputs": [{"name": "", "type": "uint256", "internalType": "uint256"}]
  },
  {
    "type": "function",
    "name": "castVote",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "proposalId", "type": "uint256", "internalType": "uint256"},
      {"name": "voteChoice", "type": "uint8", "internalType": "uint8"}
    ],
    "outputs": [{"name": "", "type": "uint256", "internalType": "uint256"}]
  },
  {
    "type": "function",
    "name": "getProposalInfo",
    "stateMutability": "view",
    "inputs": [
      {"name": "proposalId", "type": "uint256", "internalType": "uint256"}
    ],
    "outputs": [
      {"name": "title", "type": "string", "internalType": "string"},
      {"name": "description", "type": "string", "internalType": "string"},
      {"name": "yesVotes", "type": "uint8", "internalType": "uint8"},
      {"name": "noVotes", "type": "uint8", "internalType": "uint8"},
      {"name": "abstainVotes", "type": "uint8", "internalType": "uint8"},
      {"name": "totalVotes", "type": "uint8", "internalType": "uint8"},
      {"name": "isActive", "type": "bool", "internalType": "bool"},
      {"name": "isPassed", "type": "bool", "internalType": "bool"},
      {"name": "proposer", "type": "address", "internalType": "address"},
      {"name": "startTime", "type": "uint256", "internalType": "uint256"},
      {"name": "endTime", "type": "uint256", "internalType": "uint256"},
      {"name": "quorumThreshold", "type": "uint256", "internalType": "uint256"}
    ]
  },
  {
    "type": "function",
    "name": "finalizeProposal",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "proposalId", "type": "uint256", "internalType": "uint256"}
    ],
    "outputs": []
  }
]`

// VotingABI parses the voting contract ABI
func VotingABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(votingABI))
}
