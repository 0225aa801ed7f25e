package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/types"
)

// dryRun simulates every write call and passes reads through.
type dryRun struct {
	next interfaces.Exchange
}

var _ interfaces.Exchange = (*dryRun)(nil)

func (d *dryRun) SetLeverage(ctx context.Context, symbol string, leverage int) (types.LeverageResp, error) {
	logger.Warn(ctx, "DRY_RUN: leverage change simulated", "symbol", symbol, "leverage", leverage)
	raw, _ := json.Marshal(map[string]any{"symbol": symbol, "leverage": leverage, "status": "SIMULATED"})
	return types.LeverageResp{Raw: raw}, nil
}

func (d *dryRun) FuturesOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	return simulate(ctx, req), nil
}

func (d *dryRun) SpotOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	return simulate(ctx, req), nil
}

func (d *dryRun) RecentTrades(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	return d.next.RecentTrades(ctx, symbol, limit)
}

func simulate(ctx context.Context, req types.OrderReq) types.OrderResp {
	logger.Warn(ctx, "DRY_RUN: order simulated", "market", req.Market, "symbol", req.Symbol, "side", req.Side)
	raw, _ := json.Marshal(map[string]any{
		"orderId": fmt.Sprintf("SIM-%d", time.Now().UnixNano()),
		"symbol":  req.Symbol,
		"side":    req.Side,
		"type":    req.Type,
		"origQty": req.Quantity.String(),
		"status":  "SIMULATED",
		"message": "dry-run",
	})
	return types.OrderResp{Raw: raw}
}
