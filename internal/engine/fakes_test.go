package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/types"
)

type call struct {
	op       string
	symbol   string
	side     types.Signal
	typ      string
	qty      string
	leverage int
	limit    int
}

// fakeExchange records every call in order.
type fakeExchange struct {
	mu          sync.Mutex
	calls       []call
	leverageErr error
	orderErr    error
	tradesErr   error
	trades      json.RawMessage
}

func (f *fakeExchange) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeExchange) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeExchange) SetLeverage(ctx context.Context, symbol string, leverage int) (types.LeverageResp, error) {
	f.record(call{op: "leverage", symbol: symbol, leverage: leverage})
	if f.leverageErr != nil {
		return types.LeverageResp{}, fmt.Errorf("set leverage: %w: %w", types.ErrLeverageSet, f.leverageErr)
	}
	return types.LeverageResp{Raw: json.RawMessage(`{"leverage":10}`)}, nil
}

func (f *fakeExchange) FuturesOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	f.record(call{op: "futures", symbol: req.Symbol, side: req.Side, typ: req.Type, qty: req.Quantity.String(), leverage: req.Leverage})
	if f.orderErr != nil {
		return types.OrderResp{}, fmt.Errorf("futures order: %w: %w", types.ErrOrderRejected, f.orderErr)
	}
	return types.OrderResp{Raw: json.RawMessage(`{"orderId":101,"status":"NEW"}`)}, nil
}

func (f *fakeExchange) SpotOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	f.record(call{op: "spot", symbol: req.Symbol, side: req.Side, typ: req.Type, qty: req.Quantity.String(), leverage: req.Leverage})
	if f.orderErr != nil {
		return types.OrderResp{}, fmt.Errorf("spot order: %w: %w", types.ErrOrderRejected, f.orderErr)
	}
	return types.OrderResp{Raw: json.RawMessage(`{"orderId":202,"status":"FILLED"}`)}, nil
}

func (f *fakeExchange) RecentTrades(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	f.record(call{op: "trades", symbol: symbol, limit: limit})
	if f.tradesErr != nil {
		return nil, fmt.Errorf("recent trades: %w: %w", types.ErrMarketDataFetch, f.tradesErr)
	}
	return f.trades, nil
}

// fakeDecider answers with a fixed signal and records snapshots.
type fakeDecider struct {
	mu     sync.Mutex
	signal types.Signal
	err    error
	seen   []types.MarketSnapshot
	delay  time.Duration

	inflight    atomic.Int32
	maxInflight atomic.Int32
}

func (f *fakeDecider) Decide(ctx context.Context, snapshot types.MarketSnapshot) (types.Signal, error) {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		m := f.maxInflight.Load()
		if n <= m || f.maxInflight.CompareAndSwap(m, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.seen = append(f.seen, snapshot)
	f.mu.Unlock()
	return f.signal, f.err
}

func (f *fakeDecider) Seen() []types.MarketSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.MarketSnapshot(nil), f.seen...)
}

// fakeStream replays frames then returns err.
type fakeStream struct {
	frames []string
	err    error
	symbol string
}

var _ interfaces.MarketStream = (*fakeStream)(nil)

func (f *fakeStream) Subscribe(ctx context.Context, symbol string, handle interfaces.FrameHandler) error {
	f.symbol = symbol
	for _, fr := range f.frames {
		handle(ctx, []byte(fr))
	}
	return f.err
}
