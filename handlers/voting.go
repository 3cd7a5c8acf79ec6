// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/session"
)

type VotingHandler struct {
	orch     *contract.Orchestrator
	sessions *session.Store
}

func NewVotingHandler(orch *contract.Orchestrator, sessions *session.Store) *VotingHandler {
	return &VotingHandler{orch: orch, sessions: sessions}
}

// CastVote handles POST /proposals/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(middleware.SessionHeader)
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Session-ID header is required")
		return
	}
	rec, err := h.sessions.Open(sessionID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := proposalID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	choice, err := parseChoice(req.Choice)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.orch.CastVote(r.Context(), id, choice)
	if !res.OK() {
		writeFailure(w, res)
		return
	}

	key := strconv.FormatUint(id, 10)
	if !rec.RecordLocalVote(key) {
		slog.Info("vote resubmitted from session", "proposal_id", key)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		TxHash:       res.TxHash.Hex(),
		ProposalID:   key,
		Choice:       choice.String(),
		HasVoted:     rec.HasVotedLocally(key),
		Notification: res.Notification,
	})
}

// parseChoice accepts the labelled and numeric forms. Out-of-range numbers
// are passed through so the orchestrator rejects them with a notification.
func parseChoice(s string) (models.VoteChoice, error) {
	choice, err := models.ParseVoteChoice(s)
	if err == nil {
		return choice, nil
	}
	if n, numErr := strconv.ParseUint(s, 10, 8); numErr == nil {
		return models.VoteChoice(n), nil
	}
	return 0, err
}
