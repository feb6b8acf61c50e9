package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feescope/feescope-api/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "test-key")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, config.StageLocal, cfg.Stage)
		assert.Equal(t, 8000, cfg.Port)
		assert.Equal(t, "https://api.etherscan.io", cfg.EtherscanBaseURL)
		assert.Equal(t, "https://api.bybit.com", cfg.BybitBaseURL)
		assert.Equal(t, "ETH/USDT", cfg.NativePair)
		assert.Equal(t, "BONK/USDT", cfg.TargetPair)
		assert.Equal(t, 8, cfg.MaxConcurrentValuations)
		assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "test-key")
		t.Setenv("STAGE", "prod")
		t.Setenv("PORT", "9090")
		t.Setenv("TARGET_PAIR", "DOGE/USDT")
		t.Setenv("MAX_CONCURRENT_VALUATIONS", "2")
		t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, config.StageProd, cfg.Stage)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "DOGE/USDT", cfg.TargetPair)
		assert.Equal(t, 2, cfg.MaxConcurrentValuations)
		assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	})

	t.Run("requires the explorer API key", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ETHERSCAN_API_KEY")
	})

	t.Run("rejects non-numeric ints", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "test-key")
		t.Setenv("PORT", "eighty")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Stage:                   config.StageDev,
			Port:                    8000,
			EtherscanAPIKey:         "key",
			NativePair:              "ETH/USDT",
			TargetPair:              "BONK/USDT",
			MaxConcurrentValuations: 8,
			UpstreamTimeout:         30 * time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *config.Config) {}},
		{
			name:    "unknown stage",
			mutate:  func(c *config.Config) { c.Stage = "staging" },
			wantErr: "invalid STAGE",
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "pair without a quote asset",
			mutate:  func(c *config.Config) { c.TargetPair = "BONKUSDT" },
			wantErr: "TARGET_PAIR",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *config.Config) { c.MaxConcurrentValuations = 0 },
			wantErr: "concurrent valuations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
