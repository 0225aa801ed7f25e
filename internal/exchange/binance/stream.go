package binance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/logger"

	"github.com/gorilla/websocket"
)

type StreamParams struct {
	// BaseURL is the futures stream host, e.g. wss://fstream.binance.com
	BaseURL string
	// Reconnect redials after a dropped connection. Off in the baseline.
	Reconnect      bool
	ReconnectDelay time.Duration
}

// Stream subscribes to the USD-M futures mark price stream.
type Stream struct {
	p      StreamParams
	dialer *websocket.Dialer
}

var _ interfaces.MarketStream = (*Stream)(nil)

func NewStream(p StreamParams) *Stream {
	return &Stream{p: p, dialer: websocket.DefaultDialer}
}

// MarkPriceURL is the raw stream endpoint for a lowercase symbol.
func MarkPriceURL(baseURL, symbol string) string {
	return fmt.Sprintf("%s/ws/%s@markPrice", strings.TrimRight(baseURL, "/"), strings.ToLower(symbol))
}

// Subscribe reads text frames until ctx is done. Without Reconnect a dropped
// connection ends the subscription with an error.
func (s *Stream) Subscribe(ctx context.Context, symbol string, handle interfaces.FrameHandler) error {
	for {
		err := s.serve(ctx, symbol, handle)
		if ctx.Err() != nil {
			return nil
		}
		if !s.p.Reconnect {
			return err
		}

		logger.Warn(ctx, "Mark price stream dropped, reconnecting", "symbol", symbol, "error", err, "delay", s.p.ReconnectDelay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.p.ReconnectDelay):
		}
	}
}

func (s *Stream) serve(ctx context.Context, symbol string, handle interfaces.FrameHandler) error {
	url := MarkPriceURL(s.p.BaseURL, symbol)

	conn, _, err := s.dialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	logger.Info(ctx, "Mark price stream connected", "url", url)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	for {
		kind, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) || errors.Is(err, websocket.ErrCloseSent) {
				return fmt.Errorf("stream closed: %w", err)
			}
			return fmt.Errorf("read: %w", err)
		}
		if kind != websocket.TextMessage {
			logger.Debug(ctx, "Ignoring non-text frame", "symbol", symbol, "kind", kind)
			continue
		}
		handle(ctx, frame)
	}
}
