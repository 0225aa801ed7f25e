package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, cfg LogConfig) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(cfg, &buf))
	t.Cleanup(func() { detailedLogging = false })
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestDebugSuppressedUnlessDetailed(t *testing.T) {
	buf := capture(t, LogConfig{Level: "DEBUG", Format: "json"})
	Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	buf = capture(t, LogConfig{Level: "DEBUG", Format: "json", DetailedLogging: true})
	Debug(context.Background(), "shown", "k", "v")
	recs := lines(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "shown", recs[0]["msg"])
	assert.Equal(t, "v", recs[0]["k"])

	src, ok := recs[0]["source"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, src["file"], "logger_test.go")
}

func TestErrorWithErrCarriesError(t *testing.T) {
	buf := capture(t, LogConfig{Level: "INFO", Format: "json"})
	ErrorWithErr(context.Background(), "Order failed", errors.New("code=-2019 margin is insufficient"), "symbol", "BTCUSDT")

	recs := lines(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "ERROR", recs[0]["level"])
	assert.Equal(t, "code=-2019 margin is insufficient", recs[0]["error"])
	assert.Equal(t, "BTCUSDT", recs[0]["symbol"])
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LogConfig{Level: "WARN", Format: "json"})
	Info(context.Background(), "dropped")
	Warn(context.Background(), "kept")

	recs := lines(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0]["msg"])
}

func TestTradeAndDecisionRecords(t *testing.T) {
	buf := capture(t, LogConfig{Level: "INFO", Format: "json"})
	Decision(context.Background(), "BTCUSDT", "SELL")
	Trade(context.Background(), "FUTURES", "BTCUSDT", "SELL", "1", `{"orderId":7}`)

	recs := lines(t, buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "DECISION", recs[0]["type"])
	assert.Equal(t, "SELL", recs[0]["signal"])
	assert.Equal(t, "Trade executed", recs[1]["msg"])
	assert.Equal(t, `{"orderId":7}`, recs[1]["response"])
	assert.Equal(t, "FUTURES", recs[1]["market"])
}

func TestTextFormat(t *testing.T) {
	buf := capture(t, LogConfig{Level: "INFO", Format: "text"})
	Info(context.Background(), "hello", "symbol", "btcusdt")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "symbol=btcusdt")
}
