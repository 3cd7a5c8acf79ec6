// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/democracy-vote/cliparse"
	"github.com/danielhkuo/democracy-vote/contract"
	"github.com/danielhkuo/democracy-vote/models"
	"github.com/danielhkuo/democracy-vote/obfuscate"
)

// ErrNoProposal is returned by FakeWallet reads for unknown proposals
var ErrNoProposal = errors.New("execution reverted: proposal does not exist")

// TestAddress is the account reported by a connected FakeWallet
var TestAddress = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")

// TestContractAddress is the voting contract used in tests
var TestContractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// FakeWallet is a recording contract.Wallet
type FakeWallet struct {
	mu        sync.Mutex
	connected bool
	writes    []contract.WriteRequest
	reads     []contract.ReadRequest

	// WriteErr is returned by every write when WriteHook is nil
	WriteErr error
	// WriteHook replaces the default write behaviour when set
	WriteHook func(ctx context.Context, req contract.WriteRequest) (common.Hash, error)

	ReadErr     error
	ReadOutputs map[uint64][]interface{}

	// ConnectErr is returned by Connect when set
	ConnectErr error
	connectKey string
}

func NewFakeWallet(connected bool) *FakeWallet {
	return &FakeWallet{
		connected:   connected,
		ReadOutputs: make(map[uint64][]interface{}),
	}
}

func (w *FakeWallet) SetConnected(connected bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.connected = connected
}

// Connect marks the wallet connected as TestAddress
func (w *FakeWallet) Connect(ctx context.Context, hexKey string) (common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ConnectErr != nil {
		return common.Address{}, w.ConnectErr
	}
	w.connected = true
	w.connectKey = hexKey
	return TestAddress, nil
}

func (w *FakeWallet) Disconnect() {
	w.SetConnected(false)
}

// ConnectKey returns the key passed to the last successful Connect
func (w *FakeWallet) ConnectKey() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connectKey
}

func (w *FakeWallet) IsConnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connected
}

func (w *FakeWallet) Address() common.Address {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.connected {
		return common.Address{}
	}
	return TestAddress
}

func (w *FakeWallet) WriteContract(ctx context.Context, req contract.WriteRequest) (common.Hash, error) {
	w.mu.Lock()
	w.writes = append(w.writes, req)
	n := len(w.writes)
	hook := w.WriteHook
	writeErr := w.WriteErr
	w.mu.Unlock()

	if hook != nil {
		return hook(ctx, req)
	}
	if writeErr != nil {
		return common.Hash{}, writeErr
	}
	return common.BigToHash(big.NewInt(int64(n))), nil
}

func (w *FakeWallet) ReadContract(ctx context.Context, req contract.ReadRequest) ([]interface{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reads = append(w.reads, req)

	if w.ReadErr != nil {
		return nil, w.ReadErr
	}
	id := req.Args[0].(*big.Int).Uint64()
	out, ok := w.ReadOutputs[id]
	if !ok {
		return nil, ErrNoProposal
	}
	return out, nil
}

// Writes returns a copy of every recorded write
func (w *FakeWallet) Writes() []contract.WriteRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]contract.WriteRequest(nil), w.writes...)
}

// Reads returns a copy of every recorded read
func (w *FakeWallet) Reads() []contract.ReadRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]contract.ReadRequest(nil), w.reads...)
}

// FakeNotifier records notifications
type FakeNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (n *FakeNotifier) Notify(msg models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *FakeNotifier) Sent() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Notification(nil), n.sent...)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                 3318,
		RPCURL:               "http://127.0.0.1:8545",
		ContractAddress:      TestContractAddress.Hex(),
		SessionCacheSize:     64,
		NotificationFeedSize: 16,
		InfoCacheSize:        16,
	}
}

// NewTestOrchestrator builds an orchestrator around the given fakes
func NewTestOrchestrator(t *testing.T, wallet contract.Wallet, notifier contract.Notifier) *contract.Orchestrator {
	t.Helper()

	orch, err := contract.NewOrchestrator(wallet, notifier, contract.Config{
		ContractAddress: TestContractAddress,
		InfoCacheSize:   16,
	})
	if err != nil {
		t.Fatalf("Failed to create orchestrator: %v", err)
	}
	return orch
}

// ProposalInfoOutputs builds unpacked getProposalInfo outputs as the ABI
// decoder would return them. Title and description are stored obfuscated.
func ProposalInfoOutputs(title, description string, yes, no, abstain uint8, active bool, start, end int64) []interface{} {
	return []interface{}{
		obfuscate.ObfuscateText(title),
		obfuscate.ObfuscateText(description),
		yes,
		no,
		abstain,
		yes + no + abstain,
		active,
		false,
		TestAddress,
		big.NewInt(start),
		big.NewInt(end),
		big.NewInt(50),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
