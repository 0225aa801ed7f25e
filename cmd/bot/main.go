package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"llm-futures-bot/internal/engine"
	"llm-futures-bot/internal/exchange/binance"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/metrics"
	"llm-futures-bot/internal/trace"
	"llm-futures-bot/internal/types"
)

var errStreamEnded = errors.New("stream ended")

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Bot stopped with error", err)
		shutdownTracer()
		os.Exit(1)
	}
	shutdownTracer()
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	m := metrics.New()
	ex := initializeExchange(ctx, cfg, m)
	decider := initializeDecider(ctx, cfg, m)
	eng := initializeEngine(cfg, ex, decider, m)

	srv := initializeAPI(cfg, initializeOneShot(ex, decider), m)
	if srv != nil {
		go func() {
			if err := srv.Start(cfg.API.ListenAddr); err != nil {
				logger.ErrorWithErr(ctx, "API server failed", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "API server shutdown failed", "error", err)
			}
		}()
	}

	logger.Info(ctx, "Bot started",
		"mode", cfg.Mode,
		"stream_symbol", types.StreamSymbol,
		"spot_symbol", types.SpotSymbol,
		"leverage", types.FuturesLeverage,
	)

	streamErr := engine.Listen(ctx, binance.NewMarkPriceStream(cfg), eng, types.StreamSymbol)
	return afterStream(ctx, streamErr, srv != nil)
}

// afterStream handles the end of the subscription. A stream that stops before
// ctx is done fails the process, unless the API server is up, in which case the
// process keeps serving until ctx is done.
func afterStream(ctx context.Context, streamErr error, serving bool) error {
	if ctx.Err() == nil {
		if streamErr == nil {
			streamErr = errStreamEnded
		}
		if !serving {
			return fmt.Errorf("mark price stream: %w", streamErr)
		}

		logger.Warn(ctx, "Mark price stream ended, API server still serving", "error", streamErr)
		<-ctx.Done()
	}

	logger.Info(context.Background(), "Shutting down...")
	return nil
}

func shutdownTracer() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown tracer: %v\n", err)
	}
}
