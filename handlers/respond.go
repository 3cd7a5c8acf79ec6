// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/middleware"
)

var errInvalidProposalID = errors.New("proposal id must be a non-negative integer")

// proposalID reads the numeric {id} path value
func proposalID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errInvalidProposalID
	}
	return id, nil
}

// resultStatus maps a contract write outcome to an HTTP status
func resultStatus(res contract.Result) int {
	switch {
	case res.OK():
		return http.StatusCreated
	case errors.Is(res.Err, contract.ErrNotConnected):
		return http.StatusPreconditionFailed
	case errors.Is(res.Err, contract.ErrInvalidChoice):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// writeFailure sends a failed write back with the notification the user saw
func writeFailure(w http.ResponseWriter, res contract.Result) {
	middleware.NotifiedErrorResponse(w, resultStatus(res), res.Err.Error(), res.Notification)
}
