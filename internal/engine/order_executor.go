package engine

import (
	"context"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/types"
)

// orderExecutor builds fixed-size market orders and submits them.
type orderExecutor struct {
	exchange interfaces.Exchange
}

func newOrderExecutor(exchange interfaces.Exchange) *orderExecutor {
	return &orderExecutor{exchange: exchange}
}

// executeFuturesTrade sets leverage for symbol, then submits a MARKET order of
// quantity 1. A leverage failure means no order is sent.
func (oe *orderExecutor) executeFuturesTrade(ctx context.Context, symbol string, side types.Signal, leverage int) error {
	if _, err := oe.exchange.SetLeverage(ctx, symbol, leverage); err != nil {
		return err
	}

	req := types.OrderReq{
		Market:   types.MarketFutures,
		Symbol:   symbol,
		Side:     side,
		Type:     types.OrderTypeMarket,
		Quantity: types.OrderQuantity,
		Leverage: leverage,
	}

	resp, err := oe.exchange.FuturesOrder(ctx, req)
	if err != nil {
		return err
	}

	logger.Trade(ctx, string(req.Market), symbol, string(side), req.Quantity.String(), resp.String(), "leverage", leverage)
	return nil
}

// placeSpotOrder submits an unleveraged MARKET order of quantity 1.
func (oe *orderExecutor) placeSpotOrder(ctx context.Context, symbol string, side types.Signal) (types.OrderResp, error) {
	req := types.OrderReq{
		Market:   types.MarketSpot,
		Symbol:   symbol,
		Side:     side,
		Type:     types.OrderTypeMarket,
		Quantity: types.OrderQuantity,
	}

	resp, err := oe.exchange.SpotOrder(ctx, req)
	if err != nil {
		return types.OrderResp{}, err
	}

	logger.Trade(ctx, string(req.Market), symbol, string(side), req.Quantity.String(), resp.String())
	return resp, nil
}
