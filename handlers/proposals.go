// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/democracy-vote/catalog"
	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/session"
)

const maxQuorumPercent = 100

type ProposalHandler struct {
	orch     *contract.Orchestrator
	catalog  *catalog.Catalog
	sessions *session.Store
}

func NewProposalHandler(orch *contract.Orchestrator, cat *catalog.Catalog, sessions *session.Store) *ProposalHandler {
	return &ProposalHandler{orch: orch, catalog: cat, sessions: sessions}
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		// Partial refreshes still list whatever is known
		if _, err := h.catalog.Refresh(r.Context(), h.orch); err != nil {
			slog.Warn("proposal refresh incomplete", "error", err)
		}
	}

	rec := h.lookupSession(r)
	proposals := h.catalog.List()

	cards := make([]models.ProposalCard, 0, len(proposals))
	for _, p := range proposals {
		cards = append(cards, models.ProposalCard{
			Proposal:   p,
			HasVoted:   rec != nil && rec.HasVotedLocally(p.ID),
			EndsIn:     humanize.Time(p.EndsAt),
			VotesLabel: humanize.Comma(int64(p.TotalVotes)) + " votes",
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListProposalsResponse{Proposals: cards})
}

// GetProposal handles GET /proposals/{id}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.orch.ProposalInfo(r.Context(), id)
	if err != nil {
		slog.Warn("failed to read proposal", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if _, ok := h.catalog.Apply(info); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "proposal not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// CreateProposal handles POST /proposals
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.DurationSeconds == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "duration_seconds must be positive")
		return
	}
	if req.QuorumThreshold > maxQuorumPercent {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quorum_threshold is a percentage (0-100)")
		return
	}

	res := h.orch.CreateProposal(r.Context(), req.Title, req.Description, req.DurationSeconds, req.QuorumThreshold)
	if !res.OK() {
		writeFailure(w, res)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.TransactionResponse{
		TxHash:       res.TxHash.Hex(),
		Notification: res.Notification,
	})
}

// FinalizeProposal handles POST /proposals/{id}/finalize
func (h *ProposalHandler) FinalizeProposal(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.orch.FinalizeProposal(r.Context(), id)
	if !res.OK() {
		writeFailure(w, res)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.TransactionResponse{
		TxHash:       res.TxHash.Hex(),
		Notification: res.Notification,
	})
}

// GetStats handles GET /stats
func (h *ProposalHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.catalog.Stats()

	resp := models.StatsResponse{
		ActiveProposals: stats.ActiveProposals,
		TotalVotes:      stats.TotalVotes,
		TotalVotesLabel: humanize.Comma(int64(stats.TotalVotes)),
	}
	if rec := h.lookupSession(r); rec != nil {
		resp.VotedByYou = rec.Size()
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// lookupSession returns the caller's vote record, or nil for anonymous or
// unknown sessions
func (h *ProposalHandler) lookupSession(r *http.Request) *session.VoteRecord {
	id := r.Header.Get(middleware.SessionHeader)
	if id == "" {
		return nil
	}
	rec, ok := h.sessions.Get(id)
	if !ok {
		return nil
	}
	return rec
}
