package main

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/democracy-vote/catalog"
	"github.com/danielhkuo/democracy-vote/cliparse"
	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/metrics"
	"github.com/danielhkuo/democracy-vote/notify"
	"github.com/danielhkuo/democracy-vote/router"
	"github.com/danielhkuo/democracy-vote/session"
	"github.com/danielhkuo/democracy-vote/wallet"
)

func main() {
	var err error
	ctx := context.Background()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the chain
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		slog.Error("rpc connection failed", "rpc_url", cfg.RPCURL, "error", err)
		os.Exit(1)
	}
	defer client.Close()

	var chainID *big.Int
	if cfg.ChainID != 0 {
		chainID = big.NewInt(cfg.ChainID)
	}
	evm := wallet.New(client, chainID, cfg.GasLimit)

	// A bad key leaves the wallet disconnected; writes are refused until
	// POST /wallet/connect succeeds
	if cfg.PrivateKey != "" {
		addr, err := evm.Connect(ctx, cfg.PrivateKey)
		if err != nil {
			slog.Warn("wallet connect failed", "error", err)
		} else {
			slog.Info("wallet connected", "address", addr.Hex())
		}
	}

	m, err := metrics.New("democracy_vote", prometheus.DefaultRegisterer)
	if err != nil {
		slog.Error("metrics registration failed", "error", err)
		os.Exit(1)
	}

	feed := notify.NewFeed(cfg.NotificationFeedSize)
	notifier := notify.Fanout{notify.Logger{}, feed}

	orch, err := contract.NewOrchestrator(evm, notifier, contract.Config{
		ContractAddress: common.HexToAddress(cfg.ContractAddress),
		InfoCacheSize:   cfg.InfoCacheSize,
		Metrics:         m,
	})
	if err != nil {
		slog.Error("orchestrator setup failed", "error", err)
		os.Exit(1)
	}

	sessions, err := session.NewStore(cfg.SessionCacheSize)
	if err != nil {
		slog.Error("session store setup failed", "error", err)
		os.Exit(1)
	}

	proposals := catalog.NewDefault()
	if cfg.ProposalsFile != "" {
		proposals, err = catalog.Load(cfg.ProposalsFile)
		if err != nil {
			slog.Error("proposal catalog load failed", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Proposal catalog ready", "proposals", len(proposals.List()))

	// Create router
	handler := router.NewRouter(router.Deps{
		Orchestrator: orch,
		Wallet:       evm,
		Notifier:     notifier,
		Catalog:      proposals,
		Sessions:     sessions,
		Feed:         feed,
	}, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "contract", cfg.ContractAddress)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
