package binance

import (
	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/store"
)

// NewExchange builds the REST exchange for cfg, simulating writes in DRY_RUN.
func NewExchange(cfg *store.Config) interfaces.Exchange {
	c := NewClient(Params{
		APIKey:      cfg.Credentials.BinanceAPIKey,
		APISecret:   cfg.Credentials.BinanceAPISecret,
		FuturesREST: cfg.Endpoints.FuturesREST,
		SpotREST:    cfg.Endpoints.SpotREST,
	})
	if cfg.Mode == store.ModeDryRun {
		return &dryRun{next: c}
	}
	return c
}

func NewMarkPriceStream(cfg *store.Config) interfaces.MarketStream {
	return NewStream(StreamParams{
		BaseURL:        cfg.Endpoints.FuturesStream,
		Reconnect:      cfg.Extensions.Reconnect,
		ReconnectDelay: cfg.ReconnectDelay(),
	})
}
