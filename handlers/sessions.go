// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/session"
)

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := session.NewSessionID()
	if _, err := h.sessions.Open(id); err != nil {
		slog.Error("failed to open session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	w.Header().Set(middleware.SessionHeader, id)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{SessionID: id})
}

// GetMyVotes handles GET /sessions/me/votes
func (h *SessionHandler) GetMyVotes(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(middleware.SessionHeader)
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Session-ID header is required")
		return
	}

	rec, ok := h.sessions.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionVotesResponse{
		SessionID:   id,
		ProposalIDs: rec.IDs(),
	})
}
