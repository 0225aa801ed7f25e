package interfaces

import (
	"context"
	"encoding/json"

	"llm-futures-bot/internal/types"
)

// Exchange is the subset of the venue REST API the bot uses.
type Exchange interface {
	// SetLeverage configures account leverage for a futures symbol
	SetLeverage(ctx context.Context, symbol string, leverage int) (types.LeverageResp, error)

	// FuturesOrder submits a futures order
	FuturesOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error)

	// SpotOrder submits a spot order
	SpotOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error)

	// RecentTrades returns the last limit executed trades as raw JSON
	RecentTrades(ctx context.Context, symbol string, limit int) (json.RawMessage, error)
}
