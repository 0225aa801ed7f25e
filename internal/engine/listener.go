package engine

import (
	"context"
	"fmt"
	"sync"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/types"

	"github.com/google/uuid"
)

type chainIDKey struct{}

// WithChainID tags ctx with the id of one stream message's chain.
func WithChainID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, chainIDKey{}, id)
}

func ChainID(ctx context.Context) string {
	id, _ := ctx.Value(chainIDKey{}).(string)
	return id
}

// Listen subscribes to symbol and starts one chain per frame in its own
// goroutine. Chain failures are logged at WARN and never end the subscription.
// Listen returns when the stream does, after in-flight chains finish.
func Listen(ctx context.Context, stream interfaces.MarketStream, eng interfaces.Engine, symbol string) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	return stream.Subscribe(ctx, symbol, func(ctx context.Context, frame []byte) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatch(WithChainID(ctx, uuid.NewString()), eng, symbol, frame)
		}()
	})
}

func dispatch(ctx context.Context, eng interfaces.Engine, symbol string, frame []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorWithErr(ctx, "Chain panicked", fmt.Errorf("panic: %v", r), "symbol", symbol, "chain_id", ChainID(ctx))
		}
	}()

	if err := eng.HandleMessage(ctx, symbol, frame); err != nil {
		logger.Warn(ctx, "Chain ended with error", "symbol", symbol, "chain_id", ChainID(ctx), "kind", types.ErrorKind(err), "error", err)
	}
}
