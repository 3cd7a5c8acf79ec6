package models

import "time"

// Proposal status constants
const (
	StatusActive  = "active"
	StatusClosed  = "closed"
	StatusPending = "pending"
)

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Request types

type CreateProposalRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationSeconds uint64 `json:"duration_seconds"`
	QuorumThreshold uint64 `json:"quorum_threshold"` // percent
}

// Choice accepts "yes", "no", "abstain" or "1".."3"
type CastVoteRequest struct {
	Choice string `json:"choice"`
}

// Response types

type TransactionResponse struct {
	TxHash       string       `json:"tx_hash,omitempty"`
	Notification Notification `json:"notification"`
}

type CastVoteResponse struct {
	TxHash       string       `json:"tx_hash,omitempty"`
	ProposalID   string       `json:"proposal_id"`
	Choice       string       `json:"choice"`
	HasVoted     bool         `json:"has_voted"`
	Notification Notification `json:"notification"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionVotesResponse struct {
	SessionID   string   `json:"session_id"`
	ProposalIDs []string `json:"proposal_ids"`
}

type WalletStatusResponse struct {
	Connected   bool              `json:"connected"`
	Address     string            `json:"address,omitempty"`
	IsLoading   bool              `json:"is_loading"`
	Outstanding []OutstandingCall `json:"outstanding"`
}

type WalletActionResponse struct {
	Connected    bool         `json:"connected"`
	Address      string       `json:"address,omitempty"`
	Notification Notification `json:"notification"`
}

type OutstandingCall struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	StartedAt time.Time `json:"started_at"`
}

// ProposalCard is a proposal as rendered on the dashboard
type ProposalCard struct {
	Proposal
	HasVoted   bool   `json:"has_voted"`
	EndsIn     string `json:"ends_in"`
	VotesLabel string `json:"votes_label"`
}

type ListProposalsResponse struct {
	Proposals []ProposalCard `json:"proposals"`
}

type StatsResponse struct {
	ActiveProposals int    `json:"active_proposals"`
	TotalVotes      int    `json:"total_votes"`
	TotalVotesLabel string `json:"total_votes_label"`
	VotedByYou      int    `json:"voted_by_you"`
}

type NotificationEntry struct {
	ID           string       `json:"id"`
	Notification Notification `json:"notification"`
	CreatedAt    time.Time    `json:"created_at"`
	Age          string       `json:"age"`
}

type NotificationsResponse struct {
	Notifications []NotificationEntry `json:"notifications"`
}

// Domain types

// Proposal is the dashboard's view of a proposal. The contract is the
// source of truth; this copy is refreshed from ProposalInfo.
type Proposal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	EndsAt      time.Time `json:"ends_at"`
	TotalVotes  int       `json:"total_votes"`
}

// ProposalInfo is the decoded result of the contract's getProposalInfo
type ProposalInfo struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	YesVotes        uint8     `json:"yes_votes"`
	NoVotes         uint8     `json:"no_votes"`
	AbstainVotes    uint8     `json:"abstain_votes"`
	TotalVotes      uint8     `json:"total_votes"`
	IsActive        bool      `json:"is_active"`
	IsPassed        bool      `json:"is_passed"`
	Proposer        string    `json:"proposer"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	QuorumThreshold uint64    `json:"quorum_threshold"`
}

// Status derives the dashboard status from contract state.
// A proposal that never started (zero start time) is pending.
func (p ProposalInfo) Status() string {
	switch {
	case p.IsActive:
		return StatusActive
	case !p.started():
		return StatusPending
	default:
		return StatusClosed
	}
}

// Exists reports whether the contract holds a proposal under this id.
// Mapping getters answer unknown ids with a zero struct.
func (p ProposalInfo) Exists() bool {
	return p.Title != "" && p.started()
}

func (p ProposalInfo) started() bool {
	return !p.StartTime.IsZero() && p.StartTime.Unix() != 0
}

// Notification is a toast-style message for the user
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error        string        `json:"error"`
	Message      string        `json:"message,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
