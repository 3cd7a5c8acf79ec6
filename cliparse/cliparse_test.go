// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var envKeys = []string{
	"PORT", "RPC_URL", "CHAIN_ID", "CONTRACT_ADDRESS", "PRIVATE_KEY", "GAS_LIMIT",
	"PROPOSALS_FILE", "ALLOWED_ORIGINS", "SESSION_CACHE_SIZE",
	"NOTIFICATION_FEED_SIZE", "INFO_CACHE_SIZE",
}

// clearEnv blanks every variable ParseFlags reads and moves into an empty
// directory so no stray .env is picked up
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.RPCURL != DefaultRPCURL {
		t.Errorf("expected rpc %s, got %s", DefaultRPCURL, cfg.RPCURL)
	}
	if cfg.ContractAddress != "0x0000000000000000000000000000000000000000" {
		t.Errorf("expected zero contract address, got %s", cfg.ContractAddress)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("expected wildcard origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.SessionCacheSize != DefaultSessionCacheSize || cfg.NotificationFeedSize != DefaultNotificationFeedSize || cfg.InfoCacheSize != DefaultInfoCacheSize {
		t.Errorf("unexpected cache sizes: %+v", cfg)
	}
	if cfg.PrivateKey != "" {
		t.Error("private key should be empty by default")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("CHAIN_ID", "31337")
	t.Setenv("CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://vote.example.org")
	t.Setenv("SESSION_CACHE_SIZE", "10")
	t.Setenv("PRIVATE_KEY", "abc")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.ChainID != 31337 {
		t.Errorf("expected chain id 31337, got %d", cfg.ChainID)
	}
	if cfg.SessionCacheSize != 10 {
		t.Errorf("expected session cache 10, got %d", cfg.SessionCacheSize)
	}
	want := []string{"http://localhost:5173", "https://vote.example.org"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
	if cfg.PrivateKey != "abc" {
		t.Errorf("expected key from env, got %q", cfg.PrivateKey)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RPC_URL", "http://env:8545")

	cfg, err := ParseFlags([]string{"-p", "8080", "-rpc", "http://cli:8545", "-gas-limit", "300000"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.RPCURL != "http://cli:8545" {
		t.Errorf("CLI should override env: got %s", cfg.RPCURL)
	}
	if cfg.GasLimit != 300000 {
		t.Errorf("expected gas limit 300000, got %d", cfg.GasLimit)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	os.Unsetenv("CONTRACT_ADDRESS")

	path := filepath.Join(t.TempDir(), "vote.env")
	content := "PORT=7000\nCONTRACT_ADDRESS=0x8ba1f109551bD432803012645Ac136ddd64DBA72\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("CONTRACT_ADDRESS")
	})

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port from env file, got %d", cfg.Port)
	}
	if cfg.ContractAddress != "0x8ba1f109551bD432803012645Ac136ddd64DBA72" {
		t.Errorf("unexpected contract address %s", cfg.ContractAddress)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"bad chain id", map[string]string{"CHAIN_ID": "sepolia"}, nil},
		{"bad contract", map[string]string{"CONTRACT_ADDRESS": "0x1234"}, nil},
		{"bad gas limit", map[string]string{"GAS_LIMIT": "-5"}, nil},
		{"bad cache size", map[string]string{"INFO_CACHE_SIZE": "0"}, nil},
		{"missing env file", nil, []string{"-env", "/nonexistent/.env"}},
		{"unknown flag", nil, []string{"-db", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
