package interfaces

import "context"

// FrameHandler receives every text frame read from a market stream.
type FrameHandler func(ctx context.Context, frame []byte)

type MarketStream interface {
	// Subscribe blocks reading frames for symbol until ctx is done or the
	// connection drops.
	Subscribe(ctx context.Context, symbol string, handle FrameHandler) error
}
