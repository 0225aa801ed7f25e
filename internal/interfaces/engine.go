package interfaces

import (
	"context"

	"llm-futures-bot/internal/types"
)

// Engine is the streaming path: one chain per inbound frame.
type Engine interface {
	HandleMessage(ctx context.Context, symbol string, frame []byte) error
	ExecuteFuturesTrade(ctx context.Context, symbol string, side types.Signal, leverage int) error
}

// OneShot is the spot path driven by recent trade history.
type OneShot interface {
	RunOnce(ctx context.Context) (string, error)
}
