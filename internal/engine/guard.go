package engine

import "sync"

// chainGuard serializes decide->execute per symbol. A nil guard does nothing,
// which is the default: overlapping chains are allowed.
type chainGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newChainGuard() *chainGuard {
	return &chainGuard{locks: make(map[string]*sync.Mutex)}
}

func (g *chainGuard) lock(symbol string) func() {
	if g == nil {
		return func() {}
	}

	g.mu.Lock()
	l, ok := g.locks[symbol]
	if !ok {
		l = &sync.Mutex{}
		g.locks[symbol] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}
