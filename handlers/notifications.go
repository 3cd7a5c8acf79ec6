// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/notify"
)

const defaultNotificationLimit = 20

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// ListNotifications handles GET /notifications?limit=N
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := defaultNotificationLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	middleware.JSONResponse(w, http.StatusOK, models.NotificationsResponse{
		Notifications: h.feed.Recent(limit),
	})
}
