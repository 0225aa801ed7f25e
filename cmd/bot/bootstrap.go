package main

import (
	"context"
	"fmt"
	"os"

	"llm-futures-bot/internal/api"
	"llm-futures-bot/internal/engine"
	"llm-futures-bot/internal/engine/engineobs"
	"llm-futures-bot/internal/exchange/binance"
	"llm-futures-bot/internal/exchange/exchangeobs"
	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/llm/llmobs"
	"llm-futures-bot/internal/llm/openai"
	"llm-futures-bot/internal/logger"
	"llm-futures-bot/internal/metrics"
	"llm-futures-bot/internal/store"
	"llm-futures-bot/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem loads .env, then sets up logging and tracing
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

func configPath() string {
	if p := os.Getenv("TRADER_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig(configPath())
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeExchange builds the Binance exchange with observability
func initializeExchange(ctx context.Context, cfg *store.Config, m *metrics.Metrics) interfaces.Exchange {
	if cfg.Mode == store.ModeDryRun {
		logger.Warn(ctx, "Running in DRY_RUN mode - orders will be simulated")
	}
	if cfg.Credentials.BinanceAPIKey == "" {
		logger.Warn(ctx, "BINANCE_API_KEY is not set - signed requests will be rejected")
	}

	return exchangeobs.Wrap(binance.NewExchange(cfg), m)
}

func initializeDecider(ctx context.Context, cfg *store.Config, m *metrics.Metrics) interfaces.Decider {
	if cfg.Credentials.OpenAIAPIKey == "" {
		logger.Warn(ctx, "OPENAI_API_KEY is not set - every decision will fail")
	}

	return llmobs.Wrap(openai.NewOpenAIDecider(cfg.Credentials.OpenAIAPIKey, cfg.Endpoints.OpenAI), m)
}

func initializeEngine(cfg *store.Config, ex interfaces.Exchange, d interfaces.Decider, m *metrics.Metrics) interfaces.Engine {
	return engineobs.Wrap(engine.New(cfg, ex, d), m)
}

func initializeOneShot(ex interfaces.Exchange, d interfaces.Decider) interfaces.OneShot {
	return engineobs.WrapOneShot(engine.NewPipeline(ex, d))
}

// initializeAPI returns nil when no listen address is configured
func initializeAPI(cfg *store.Config, oneShot interfaces.OneShot, m *metrics.Metrics) *api.Server {
	if cfg.API.ListenAddr == "" {
		return nil
	}
	return api.NewServer(oneShot, m)
}
