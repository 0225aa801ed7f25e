package interfaces

import (
	"context"

	"llm-futures-bot/internal/types"
)

type Decider interface {
	Decide(ctx context.Context, snapshot types.MarketSnapshot) (types.Signal, error)
}
