package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/types"
)

// Pipeline is the spot path: recent trades -> oracle -> spot order. It never
// touches leverage.
type Pipeline struct {
	exchange interfaces.Exchange
	decider  interfaces.Decider
	executor *orderExecutor
}

var _ interfaces.OneShot = (*Pipeline)(nil)

func (p *Pipeline) GetMarketData(ctx context.Context, symbol string) (json.RawMessage, error) {
	return p.exchange.RecentTrades(ctx, symbol, types.RecentTradesLimit)
}

// ExecuteTrade places a spot order for a lowercase "buy" or "sell" decision.
// Any other decision fails and sends nothing.
func (p *Pipeline) ExecuteTrade(ctx context.Context, symbol, decision string) (types.OrderResp, error) {
	switch decision {
	case "buy":
		return p.executor.placeSpotOrder(ctx, symbol, types.SignalBuy)
	case "sell":
		return p.executor.placeSpotOrder(ctx, symbol, types.SignalSell)
	default:
		return types.OrderResp{}, fmt.Errorf("%w: %q", types.ErrInvalidDecision, decision)
	}
}

// RunOnce trades SpotSymbol once and returns "Executed <decision> order: <ack>".
func (p *Pipeline) RunOnce(ctx context.Context) (string, error) {
	symbol := types.SpotSymbol

	trades, err := p.GetMarketData(ctx, symbol)
	if err != nil {
		return "", err
	}

	signal, err := p.decider.Decide(ctx, types.MarketSnapshot{Symbol: symbol, Data: trades})
	if err != nil {
		return "", err
	}

	decision := strings.ToLower(string(signal))
	resp, err := p.ExecuteTrade(ctx, symbol, decision)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Executed %s order: %s", decision, resp.String()), nil
}
