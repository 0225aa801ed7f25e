package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"llm-futures-bot/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenTrades() json.RawMessage {
	parts := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		parts = append(parts, fmt.Sprintf(`{"id":%d,"price":"50000.%02d","qty":"0.01"}`, i, i))
	}
	return json.RawMessage("[" + strings.Join(parts, ",") + "]")
}

func TestExecuteTradeBuyAndSell(t *testing.T) {
	ex := &fakeExchange{}
	p := NewPipeline(ex, &fakeDecider{})

	_, err := p.ExecuteTrade(context.Background(), "BTCUSDT", "buy")
	require.NoError(t, err)
	_, err = p.ExecuteTrade(context.Background(), "BTCUSDT", "sell")
	require.NoError(t, err)

	assert.Equal(t, []call{
		{op: "spot", symbol: "BTCUSDT", side: types.SignalBuy, typ: "MARKET", qty: "1"},
		{op: "spot", symbol: "BTCUSDT", side: types.SignalSell, typ: "MARKET", qty: "1"},
	}, ex.Calls())
}

func TestExecuteTradeInvalidDecision(t *testing.T) {
	ex := &fakeExchange{}
	p := NewPipeline(ex, &fakeDecider{})

	for _, decision := range []string{"hold", "BUY", "", "Buy now"} {
		_, err := p.ExecuteTrade(context.Background(), "BTCUSDT", decision)
		assert.ErrorIs(t, err, types.ErrInvalidDecision, decision)
	}
	assert.Empty(t, ex.Calls())
}

func TestRunOnceBuyScenario(t *testing.T) {
	ex := &fakeExchange{trades: tenTrades()}
	d := &fakeDecider{signal: types.SignalBuy}
	p := NewPipeline(ex, d)

	summary, err := p.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, `Executed buy order: {"orderId":202,"status":"FILLED"}`, summary)
	assert.Equal(t, []call{
		{op: "trades", symbol: "BTCUSDT", limit: 10},
		{op: "spot", symbol: "BTCUSDT", side: types.SignalBuy, typ: "MARKET", qty: "1"},
	}, ex.Calls())

	seen := d.Seen()
	require.Len(t, seen, 1)
	assert.JSONEq(t, string(tenTrades()), string(seen[0].Data))
}

func TestRunOnceSell(t *testing.T) {
	ex := &fakeExchange{trades: tenTrades()}
	p := NewPipeline(ex, &fakeDecider{signal: types.SignalSell})

	summary, err := p.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(summary, "Executed sell order: "))
}

func TestRunOncePropagatesFailures(t *testing.T) {
	ex := &fakeExchange{tradesErr: errors.New("timeout")}
	_, err := NewPipeline(ex, &fakeDecider{signal: types.SignalBuy}).RunOnce(context.Background())
	assert.ErrorIs(t, err, types.ErrMarketDataFetch)
	assert.Len(t, ex.Calls(), 1)

	ex = &fakeExchange{trades: tenTrades()}
	_, err = NewPipeline(ex, &fakeDecider{err: types.ErrInvalidDecision}).RunOnce(context.Background())
	assert.ErrorIs(t, err, types.ErrInvalidDecision)
	assert.Len(t, ex.Calls(), 1)

	ex = &fakeExchange{trades: tenTrades(), orderErr: errors.New("insufficient balance")}
	_, err = NewPipeline(ex, &fakeDecider{signal: types.SignalSell}).RunOnce(context.Background())
	assert.ErrorIs(t, err, types.ErrOrderRejected)
}
