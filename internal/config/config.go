package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Valid deployment stages
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// Config holds the runtime configuration for the API, sourced from the
// environment. Use Load to construct it and Validate before wiring services.
type Config struct {
	Stage string
	Port  int

	EtherscanAPIKey  string
	EtherscanBaseURL string
	BybitBaseURL     string

	// NativePair prices the chain's fee currency in fiat (e.g. ETH/USDT).
	NativePair string
	// TargetPair is the asset whose purchasing power is compared against fees.
	TargetPair string

	MaxConcurrentValuations int
	UpstreamTimeout         time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except the explorer API key.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:            getEnv("STAGE", StageLocal),
		EtherscanAPIKey:  os.Getenv("ETHERSCAN_API_KEY"),
		EtherscanBaseURL: getEnv("ETHERSCAN_BASE_URL", "https://api.etherscan.io"),
		BybitBaseURL:     getEnv("BYBIT_BASE_URL", "https://api.bybit.com"),
		NativePair:       getEnv("NATIVE_PAIR", "ETH/USDT"),
		TargetPair:       getEnv("TARGET_PAIR", "BONK/USDT"),
	}

	port, err := getEnvInt("PORT", 8000)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	maxConcurrent, err := getEnvInt("MAX_CONCURRENT_VALUATIONS", 8)
	if err != nil {
		return nil, err
	}
	cfg.MaxConcurrentValuations = maxConcurrent

	timeoutSeconds, err := getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.UpstreamTimeout = time.Duration(timeoutSeconds) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev && c.Stage != StageLocal {
		return fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s", c.Stage, StageProd, StageDev, StageLocal)
	}
	if c.EtherscanAPIKey == "" {
		return fmt.Errorf("ETHERSCAN_API_KEY must be set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.MaxConcurrentValuations <= 0 {
		return fmt.Errorf("max concurrent valuations must be greater than 0")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be greater than 0")
	}
	if err := validatePair(c.NativePair); err != nil {
		return fmt.Errorf("NATIVE_PAIR: %w", err)
	}
	if err := validatePair(c.TargetPair); err != nil {
		return fmt.Errorf("TARGET_PAIR: %w", err)
	}
	return nil
}

func validatePair(pair string) error {
	for i := 1; i < len(pair)-1; i++ {
		if pair[i] == '/' {
			return nil
		}
	}
	return fmt.Errorf("invalid asset pair %q: expected BASE/QUOTE", pair)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}
