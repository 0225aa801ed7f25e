package engine

import (
	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/store"
)

func New(cfg *store.Config, ex interfaces.Exchange, d interfaces.Decider) *Engine {
	e := &Engine{decider: d, executor: newOrderExecutor(ex)}
	if cfg != nil && cfg.Extensions.SerializeChains {
		e.guard = newChainGuard()
	}
	return e
}

func NewPipeline(ex interfaces.Exchange, d interfaces.Decider) *Pipeline {
	return &Pipeline{exchange: ex, decider: d, executor: newOrderExecutor(ex)}
}
