package llmobs

import (
	"context"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/metrics"
	"llm-futures-bot/internal/trace"
	"llm-futures-bot/internal/types"
)

// observableDecider wraps a Decider with observability (logging, tracing, counters)
type observableDecider struct {
	decider interfaces.Decider
	metrics *metrics.Metrics
}

// Compile-time interface check
var _ interfaces.Decider = (*observableDecider)(nil)

// Wrap wraps a decider with observability middleware
func Wrap(decider interfaces.Decider, m *metrics.Metrics) interfaces.Decider {
	return &observableDecider{
		decider: decider,
		metrics: m,
	}
}

// Decide asks the oracle with observability
func (od *observableDecider) Decide(ctx context.Context, snapshot types.MarketSnapshot) (types.Signal, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Decide")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting trading decision",
		"symbol", snapshot.Symbol,
		"bytes", len(snapshot.Data),
	)

	signal, err := od.decider.Decide(ctx, snapshot)
	if err != nil {
		kind := types.ErrorKind(err)
		od.metrics.DecisionError(kind)
		logger.ErrorWithErrSkip(ctx, 1, "Failed to get trading decision", err,
			"symbol", snapshot.Symbol,
			"kind", kind,
		)
		return "", err
	}

	od.metrics.Decision(string(signal))
	logger.Decision(ctx, snapshot.Symbol, string(signal))
	return signal, nil
}
