package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Signal is a trading decision produced by the oracle. Only BUY and SELL exist;
// anything else the model says is ErrInvalidDecision.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
)

// Market identifies which venue API an order goes to.
type Market string

const (
	MarketFutures Market = "FUTURES"
	MarketSpot    Market = "SPOT"
)

const OrderTypeMarket = "MARKET"

const (
	// StreamSymbol is the lowercase pair the process subscribes to at startup.
	StreamSymbol = "btcusdt"
	// SpotSymbol is the pair the one-shot pipeline trades.
	SpotSymbol = "BTCUSDT"
	// FuturesLeverage is applied before every streaming-path order.
	FuturesLeverage = 10
	// RecentTradesLimit is how many executed trades the one-shot pipeline reads.
	RecentTradesLimit = 10
)

// OrderQuantity is the fixed size of every order, sent as "1".
var OrderQuantity = decimal.NewFromInt(1)

// MarketSnapshot is one decoded stream frame or trade-history payload. Its
// schema belongs to the exchange; it is only ever re-serialized into a prompt.
type MarketSnapshot struct {
	Symbol string
	Data   json.RawMessage
}

// OrderReq is built fresh for every trade. Leverage is zero on the spot path.
type OrderReq struct {
	Market   Market
	Symbol   string
	Side     Signal
	Type     string
	Quantity decimal.Decimal
	Leverage int
}

// OrderResp is the raw venue acknowledgment. It is logged, never inspected.
type OrderResp struct {
	Raw json.RawMessage
}

func (r OrderResp) String() string {
	if len(r.Raw) == 0 {
		return "null"
	}
	return string(r.Raw)
}

// LeverageResp is the raw acknowledgment of a leverage change.
type LeverageResp struct {
	Raw json.RawMessage
}
