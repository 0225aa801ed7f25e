package binance

import (
	"context"
	"encoding/json"
	"fmt"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/types"

	gobinance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/futures"
)

type Params struct {
	APIKey      string
	APISecret   string
	FuturesREST string
	SpotREST    string
}

// Client talks to the Binance spot and USD-M futures REST APIs.
type Client struct {
	spot    *gobinance.Client
	futures *futures.Client
}

var _ interfaces.Exchange = (*Client)(nil)

func NewClient(p Params) *Client {
	spot := gobinance.NewClient(p.APIKey, p.APISecret)
	if p.SpotREST != "" {
		spot.BaseURL = p.SpotREST
	}
	fut := futures.NewClient(p.APIKey, p.APISecret)
	if p.FuturesREST != "" {
		fut.BaseURL = p.FuturesREST
	}
	return &Client{spot: spot, futures: fut}
}

func (c *Client) SetLeverage(ctx context.Context, symbol string, leverage int) (types.LeverageResp, error) {
	res, err := c.futures.NewChangeLeverageService().
		Symbol(symbol).
		Leverage(leverage).
		Do(ctx)
	if err != nil {
		return types.LeverageResp{}, fmt.Errorf("set leverage %s x%d: %w: %w", symbol, leverage, types.ErrLeverageSet, err)
	}
	return types.LeverageResp{Raw: marshalRaw(res)}, nil
}

func (c *Client) FuturesOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	res, err := c.futures.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(futures.SideType(req.Side)).
		Type(futures.OrderType(req.Type)).
		Quantity(req.Quantity.String()).
		Do(ctx)
	if err != nil {
		return types.OrderResp{}, fmt.Errorf("futures order %s %s: %w: %w", req.Side, req.Symbol, types.ErrOrderRejected, err)
	}
	return types.OrderResp{Raw: marshalRaw(res)}, nil
}

func (c *Client) SpotOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	res, err := c.spot.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(gobinance.SideType(req.Side)).
		Type(gobinance.OrderType(req.Type)).
		Quantity(req.Quantity.String()).
		Do(ctx)
	if err != nil {
		return types.OrderResp{}, fmt.Errorf("spot order %s %s: %w: %w", req.Side, req.Symbol, types.ErrOrderRejected, err)
	}
	return types.OrderResp{Raw: marshalRaw(res)}, nil
}

func (c *Client) RecentTrades(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	trades, err := c.spot.NewRecentTradesService().
		Symbol(symbol).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent trades %s: %w: %w", symbol, types.ErrMarketDataFetch, err)
	}
	return marshalRaw(trades), nil
}

// marshalRaw re-encodes an SDK response so callers only ever see opaque JSON.
func marshalRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`null`)
	}
	return b
}
