package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
)

// Client is a thin wrapper over the OpenAI chat-completions API. The
// prompt templating and response parsing live in internal/ai; this
// layer only shuttles messages.
type Client struct {
	api   openai.Client
	model shared.ChatModel
}

// Option configures optional client behavior.
type Option func(*Client)

// WithModel overrides the default chat model.
func WithModel(model string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(model)
		if trimmed != "" {
			c.model = shared.ChatModel(trimmed)
		}
	}
}

// NewClient builds the chat client for the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(apiKey)
	if trimmed == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	client := &Client{
		api:   openai.NewClient(option.WithAPIKey(trimmed)),
		model: shared.ChatModelGPT4o,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// CompleteJSON runs a completion in JSON-object mode and returns the
// raw content for the caller to unmarshal.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "openai client not configured")
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: c.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "chat completion request")
	}
	if len(completion.Choices) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// CompleteText runs a plain-text completion capped at maxTokens.
func (c *Client) CompleteText(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "openai client not configured")
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: c.model,
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(maxTokens)
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "chat completion request")
	}
	if len(completion.Choices) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
