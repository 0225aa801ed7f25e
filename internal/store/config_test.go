package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TRADER_MODE", "")
	t.Setenv("TRADER_API_ADDR", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Equal(t, DefaultFuturesStream, cfg.Endpoints.FuturesStream)
	assert.Equal(t, DefaultFuturesREST, cfg.Endpoints.FuturesREST)
	assert.Equal(t, DefaultSpotREST, cfg.Endpoints.SpotREST)
	assert.Equal(t, DefaultOpenAI, cfg.Endpoints.OpenAI)
	assert.Empty(t, cfg.API.ListenAddr)
	assert.False(t, cfg.Extensions.SerializeChains)
	assert.False(t, cfg.Extensions.Reconnect)
	assert.Equal(t, 5*time.Second, cfg.ReconnectDelay())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("TRADER_MODE", "")
	t.Setenv("TRADER_API_ADDR", "")

	p := writeConfig(t, `
mode: DRY_RUN
endpoints:
  futures_rest: https://testnet.binancefuture.com
api:
  listen_addr: ":8080"
extensions:
  serialize_chains: true
  reconnect: true
  reconnect_delay_seconds: 2
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, ModeDryRun, cfg.Mode)
	assert.Equal(t, "https://testnet.binancefuture.com", cfg.Endpoints.FuturesREST)
	assert.Equal(t, DefaultSpotREST, cfg.Endpoints.SpotREST)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.True(t, cfg.Extensions.SerializeChains)
	assert.True(t, cfg.Extensions.Reconnect)
	assert.Equal(t, 2*time.Second, cfg.ReconnectDelay())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TRADER_MODE", "DRY_RUN")
	t.Setenv("TRADER_API_ADDR", "127.0.0.1:9000")
	t.Setenv("BINANCE_API_KEY", "bk")
	t.Setenv("BINANCE_API_SECRET", "bs")
	t.Setenv("OPENAI_API_KEY", "ok")

	cfg, err := LoadConfig(writeConfig(t, "mode: LIVE\n"))
	require.NoError(t, err)

	assert.Equal(t, ModeDryRun, cfg.Mode)
	assert.Equal(t, "127.0.0.1:9000", cfg.API.ListenAddr)
	assert.Equal(t, Credentials{BinanceAPIKey: "bk", BinanceAPISecret: "bs", OpenAIAPIKey: "ok"}, cfg.Credentials)
}

func TestLoadConfigInvalidMode(t *testing.T) {
	t.Setenv("TRADER_MODE", "")

	_, err := LoadConfig(writeConfig(t, "mode: PAPER\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode 'PAPER'")
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "mode: [\n"))
	assert.Error(t, err)
}
