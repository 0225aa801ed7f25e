package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/types"
)

// Engine runs the streaming chain: decode, decide, set leverage, order.
type Engine struct {
	decider  interfaces.Decider
	executor *orderExecutor
	guard    *chainGuard
}

var _ interfaces.Engine = (*Engine)(nil)

// HandleMessage runs one chain for a raw stream frame. symbol is the
// lowercase stream symbol; orders go out for its uppercase form.
func (e *Engine) HandleMessage(ctx context.Context, symbol string, frame []byte) error {
	venueSymbol := strings.ToUpper(symbol)

	snapshot, err := decodeSnapshot(venueSymbol, frame)
	if err != nil {
		return err
	}

	unlock := e.guard.lock(venueSymbol)
	defer unlock()

	signal, err := e.decider.Decide(ctx, snapshot)
	if err != nil {
		return err
	}

	return e.ExecuteFuturesTrade(ctx, venueSymbol, signal, types.FuturesLeverage)
}

func (e *Engine) ExecuteFuturesTrade(ctx context.Context, symbol string, side types.Signal, leverage int) error {
	return e.executor.executeFuturesTrade(ctx, symbol, side, leverage)
}

// decodeSnapshot accepts any JSON value and stores it compacted, the way the
// exchange's object would be re-serialized.
func decodeSnapshot(symbol string, frame []byte) (types.MarketSnapshot, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, frame); err != nil {
		return types.MarketSnapshot{}, fmt.Errorf("%w: %w", types.ErrMalformedMarketData, err)
	}
	return types.MarketSnapshot{Symbol: symbol, Data: buf.Bytes()}, nil
}
