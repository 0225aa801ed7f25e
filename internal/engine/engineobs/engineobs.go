package engineobs

import (
	"context"
	"time"

	"llm-futures-bot/internal/engine"
	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/metrics"
	"llm-futures-bot/internal/trace"
	"llm-futures-bot/internal/types"
)

type observableEngine struct {
	engine  interfaces.Engine
	metrics *metrics.Metrics
}

var _ interfaces.Engine = (*observableEngine)(nil)

func Wrap(eng interfaces.Engine, m *metrics.Metrics) interfaces.Engine {
	return &observableEngine{
		engine:  eng,
		metrics: m,
	}
}

func (oe *observableEngine) HandleMessage(ctx context.Context, symbol string, frame []byte) error {
	ctx, span := trace.StartSpan(ctx, "engine.HandleMessage")
	defer span.End()

	start := time.Now()
	oe.metrics.StreamMessage()

	logger.DebugSkip(ctx, 1, "Stream message received",
		"symbol", symbol,
		"chain_id", engine.ChainID(ctx),
		"bytes", len(frame),
	)

	if err := oe.engine.HandleMessage(ctx, symbol, frame); err != nil {
		kind := types.ErrorKind(err)
		oe.metrics.StreamError(kind)
		logger.ErrorWithErrSkip(ctx, 1, "Stream message chain failed", err,
			"symbol", symbol,
			"chain_id", engine.ChainID(ctx),
			"kind", kind,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}

	logger.InfoSkip(ctx, 1, "Stream message chain completed",
		"symbol", symbol,
		"chain_id", engine.ChainID(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (oe *observableEngine) ExecuteFuturesTrade(ctx context.Context, symbol string, side types.Signal, leverage int) error {
	ctx, span := trace.StartSpan(ctx, "engine.ExecuteFuturesTrade")
	defer span.End()

	err := oe.engine.ExecuteFuturesTrade(ctx, symbol, side, leverage)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Futures trade failed", err, "symbol", symbol, "side", side, "leverage", leverage)
	}
	return err
}

type observableOneShot struct {
	oneShot interfaces.OneShot
}

var _ interfaces.OneShot = (*observableOneShot)(nil)

func WrapOneShot(p interfaces.OneShot) interfaces.OneShot {
	return &observableOneShot{oneShot: p}
}

func (oo *observableOneShot) RunOnce(ctx context.Context) (string, error) {
	ctx, span := trace.StartSpan(ctx, "engine.RunOnce")
	defer span.End()

	start := time.Now()
	logger.InfoSkip(ctx, 1, "Starting one-shot decision", "symbol", types.SpotSymbol)

	summary, err := oo.oneShot.RunOnce(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "One-shot decision failed", err,
			"symbol", types.SpotSymbol,
			"kind", types.ErrorKind(err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "One-shot decision completed",
		"symbol", types.SpotSymbol,
		"summary", summary,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}
