package openai

import (
	"context"
	"fmt"
	"strings"

	"llm-futures-bot/internal/interfaces"
	"llm-futures-bot/internal/trace"
	"llm-futures-bot/internal/types"

	goopenai "github.com/sashabaranov/go-openai"
)

const (
	Model        = goopenai.GPT4
	MaxTokens    = 60
	Temperature  = 0.7
	SystemPrompt = "You are a financial advisor. Provide concise trading advice: buy or sell."
)

// ChatClient is the one completion call the decider needs. *goopenai.Client
// satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

type OpenAIDecider struct {
	client ChatClient
}

var _ interfaces.Decider = (*OpenAIDecider)(nil)

// NewOpenAIDecider builds a decider against baseURL (e.g. https://api.openai.com/v1).
func NewOpenAIDecider(apiKey, baseURL string) *OpenAIDecider {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewDeciderWithClient(goopenai.NewClientWithConfig(cfg))
}

func NewDeciderWithClient(client ChatClient) *OpenAIDecider {
	return &OpenAIDecider{client: client}
}

// Prompt embeds the serialized snapshot in the fixed question template.
func Prompt(snapshot types.MarketSnapshot) string {
	data := string(snapshot.Data)
	if data == "" {
		data = "null"
	}
	return fmt.Sprintf("Given the recent market data: %s, should I buy or sell?", data)
}

// Request is the completion request sent for snapshot.
func Request(snapshot types.MarketSnapshot) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: Prompt(snapshot)},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}

func (d *OpenAIDecider) Decide(ctx context.Context, snapshot types.MarketSnapshot) (types.Signal, error) {
	ctx, span := trace.StartSpan(ctx, "openai.chat_completion")
	defer span.End()

	resp, err := d.client.CreateChatCompletion(ctx, Request(snapshot))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", types.ErrMalformedResponse)
	}

	return ParseSignal(resp.Choices[0].Message.Content)
}

// ParseSignal maps completion text to a signal. Only "buy" and "sell", after
// trimming and lowercasing, are accepted.
func ParseSignal(text string) (types.Signal, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "buy":
		return types.SignalBuy, nil
	case "sell":
		return types.SignalSell, nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrInvalidDecision, text)
	}
}
