// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/middleware"
	"github.com/danielhkuo/democracy-vote/models"
)

// WalletController is the connect/disconnect side of the wallet
type WalletController interface {
	Connect(ctx context.Context, hexKey string) (common.Address, error)
	Disconnect()
	IsConnected() bool
	Address() common.Address
}

var (
	walletDisconnected = models.Notification{
		Title:       "Wallet Disconnected",
		Description: "You have been logged out safely",
	}
	walletNoKey = models.Notification{
		Title:       "Wallet Connection",
		Description: "No wallet key is configured on the server",
		Variant:     models.VariantDestructive,
	}
	walletConnectFailed = models.Notification{
		Title:       "Wallet Connection Failed",
		Description: "Please check the wallet key and RPC endpoint",
		Variant:     models.VariantDestructive,
	}
)

type WalletHandler struct {
	wallet   WalletController
	orch     *contract.Orchestrator
	notifier contract.Notifier
	key      string
}

// NewWalletHandler builds a handler that connects with key, the operator's
// configured private key
func NewWalletHandler(wallet WalletController, orch *contract.Orchestrator, notifier contract.Notifier, key string) *WalletHandler {
	return &WalletHandler{wallet: wallet, orch: orch, notifier: notifier, key: key}
}

// GetStatus handles GET /wallet
func (h *WalletHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	resp := models.WalletStatusResponse{
		Connected:   h.wallet.IsConnected(),
		IsLoading:   h.orch.IsLoading(),
		Outstanding: []models.OutstandingCall{},
	}
	if resp.Connected {
		resp.Address = h.wallet.Address().Hex()
	}
	for _, p := range h.orch.Outstanding() {
		resp.Outstanding = append(resp.Outstanding, models.OutstandingCall{
			ID:        p.ID.String(),
			Method:    p.Method,
			StartedAt: p.StartedAt,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Connect handles POST /wallet/connect
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if h.key == "" {
		h.notifier.Notify(walletNoKey)
		middleware.NotifiedErrorResponse(w, http.StatusPreconditionFailed, "no wallet key configured", walletNoKey)
		return
	}

	addr, err := h.wallet.Connect(r.Context(), h.key)
	if err != nil {
		slog.Warn("wallet connect failed", "error", err)
		h.notifier.Notify(walletConnectFailed)
		middleware.NotifiedErrorResponse(w, http.StatusBadGateway, err.Error(), walletConnectFailed)
		return
	}

	n := models.Notification{
		Title:       "Wallet Connected",
		Description: "Connected as " + addr.Hex(),
	}
	slog.Info("wallet connected", "address", addr.Hex())
	h.notifier.Notify(n)

	middleware.JSONResponse(w, http.StatusOK, models.WalletActionResponse{
		Connected:    true,
		Address:      addr.Hex(),
		Notification: n,
	})
}

// Disconnect handles POST /wallet/disconnect
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.wallet.Disconnect()
	slog.Info("wallet disconnected")
	h.notifier.Notify(walletDisconnected)

	middleware.JSONResponse(w, http.StatusOK, models.WalletActionResponse{
		Connected:    false,
		Notification: walletDisconnected,
	})
}
