package exchangeobs

import (
	"context"
	"encoding/json"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/metrics"
	"llm-futures-bot/internal/trace"
	"llm-futures-bot/internal/types"
)

// observableExchange wraps an Exchange with observability (logging, tracing, counters)
type observableExchange struct {
	exchange interfaces.Exchange
	metrics  *metrics.Metrics
}

// Compile-time interface check
var _ interfaces.Exchange = (*observableExchange)(nil)

// Wrap wraps an exchange with observability middleware
func Wrap(exchange interfaces.Exchange, m *metrics.Metrics) interfaces.Exchange {
	return &observableExchange{
		exchange: exchange,
		metrics:  m,
	}
}

func (oe *observableExchange) SetLeverage(ctx context.Context, symbol string, leverage int) (types.LeverageResp, error) {
	ctx, span := trace.StartSpan(ctx, "exchange.SetLeverage")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Setting leverage", "symbol", symbol, "leverage", leverage)

	res, err := oe.exchange.SetLeverage(ctx, symbol, leverage)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to set leverage", err, "symbol", symbol, "leverage", leverage)
		return types.LeverageResp{}, err
	}

	logger.DebugSkip(ctx, 1, "Leverage set", "symbol", symbol, "response", string(res.Raw))
	return res, nil
}

func (oe *observableExchange) FuturesOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	ctx, span := trace.StartSpan(ctx, "exchange.FuturesOrder")
	defer span.End()
	return oe.placeOrder(ctx, req, oe.exchange.FuturesOrder)
}

func (oe *observableExchange) SpotOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	ctx, span := trace.StartSpan(ctx, "exchange.SpotOrder")
	defer span.End()
	return oe.placeOrder(ctx, req, oe.exchange.SpotOrder)
}

func (oe *observableExchange) placeOrder(ctx context.Context, req types.OrderReq, submit func(context.Context, types.OrderReq) (types.OrderResp, error)) (types.OrderResp, error) {
	logger.InfoSkip(ctx, 2, "Placing order",
		"market", req.Market,
		"symbol", req.Symbol,
		"side", req.Side,
		"type", req.Type,
		"qty", req.Quantity.String(),
	)

	resp, err := submit(ctx, req)
	if err != nil {
		oe.metrics.Order(string(req.Market), "rejected")
		logger.ErrorWithErrSkip(ctx, 2, "Failed to place order", err,
			"market", req.Market,
			"symbol", req.Symbol,
			"side", req.Side,
		)
		return types.OrderResp{}, err
	}

	oe.metrics.Order(string(req.Market), "ok")
	return resp, nil
}

func (oe *observableExchange) RecentTrades(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	ctx, span := trace.StartSpan(ctx, "exchange.RecentTrades")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching recent trades", "symbol", symbol, "limit", limit)

	trades, err := oe.exchange.RecentTrades(ctx, symbol, limit)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch recent trades", err, "symbol", symbol, "limit", limit)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Recent trades fetched", "symbol", symbol, "bytes", len(trades))
	return trades, nil
}
