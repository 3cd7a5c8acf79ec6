package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

const (
	DefaultPort                 = 3318
	DefaultRPCURL               = "https://1rpc.io/sepolia"
	DefaultSessionCacheSize     = 1024
	DefaultNotificationFeedSize = 100
	DefaultInfoCacheSize        = 256
)

type Config struct {
	Port            int
	RPCURL          string
	ChainID         int64 // 0 asks the node
	ContractAddress string
	PrivateKey      string
	GasLimit        uint64 // 0 estimates per transaction
	ProposalsFile   string
	AllowedOrigins  []string

	SessionCacheSize     int
	NotificationFeedSize int
	InfoCacheSize        int
}

// ParseFlags validates flags, falling back to the environment (and an
// optional .env file) for anything not given on the command line
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, origins string

	fs := flag.NewFlagSet("democracy-vote", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", "", "Path to a .env file")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.RPCURL, "rpc", "", "Ethereum JSON-RPC endpoint")
	fs.Int64Var(&cfg.ChainID, "chain-id", 0, "Chain id (0 asks the node)")
	fs.StringVar(&cfg.ContractAddress, "contract", "", "Voting contract address")
	fs.Uint64Var(&cfg.GasLimit, "gas-limit", 0, "Fixed gas limit (0 estimates)")
	fs.StringVar(&cfg.ProposalsFile, "proposals", "", "JSON file with dashboard proposals")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origins")

	fs.IntVar(&cfg.SessionCacheSize, "sessions", 0, "Max sessions kept in memory")
	fs.IntVar(&cfg.NotificationFeedSize, "feed-size", 0, "Notifications kept for the feed")
	fs.IntVar(&cfg.InfoCacheSize, "info-cache", 0, "Proposal info cache size")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PrivateKey, "key", "", "Wallet private key, hex (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var err error
	if cfg.Port, err = intFromEnv(cfg.Port, "PORT", DefaultPort); err != nil {
		return Config{}, err
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.RPCURL == "" {
		cfg.RPCURL = os.Getenv("RPC_URL")
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultRPCURL
	}

	if cfg.ChainID == 0 {
		if s := os.Getenv("CHAIN_ID"); s != "" {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil || id < 0 {
				return Config{}, errors.New("invalid CHAIN_ID env variable")
			}
			cfg.ChainID = id
		}
	}

	if cfg.ContractAddress == "" {
		cfg.ContractAddress = os.Getenv("CONTRACT_ADDRESS")
	}
	if cfg.ContractAddress == "" {
		cfg.ContractAddress = common.Address{}.Hex()
		slog.Warn("no contract address configured, using the zero address")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return Config{}, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}

	if cfg.GasLimit == 0 {
		if s := os.Getenv("GAS_LIMIT"); s != "" {
			limit, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid GAS_LIMIT env variable")
			}
			cfg.GasLimit = limit
		}
	}

	if cfg.ProposalsFile == "" {
		cfg.ProposalsFile = os.Getenv("PROPOSALS_FILE")
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(origins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if cfg.SessionCacheSize, err = intFromEnv(cfg.SessionCacheSize, "SESSION_CACHE_SIZE", DefaultSessionCacheSize); err != nil {
		return Config{}, err
	}
	if cfg.NotificationFeedSize, err = intFromEnv(cfg.NotificationFeedSize, "NOTIFICATION_FEED_SIZE", DefaultNotificationFeedSize); err != nil {
		return Config{}, err
	}
	if cfg.InfoCacheSize, err = intFromEnv(cfg.InfoCacheSize, "INFO_CACHE_SIZE", DefaultInfoCacheSize); err != nil {
		return Config{}, err
	}

	// Secrets - optional, the wallet stays disconnected without one
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("PRIVATE_KEY")
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment. Variables already set win.
// With no path, a .env in the working directory is loaded if present.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func intFromEnv(current int, key string, def int) (int, error) {
	if current != 0 {
		if current < 0 {
			return 0, fmt.Errorf("%s must be positive", key)
		}
		return current, nil
	}
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
