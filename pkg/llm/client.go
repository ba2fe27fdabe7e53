// Package llm is the gateway to the OpenAI-compatible model provider.
//
// It owns model selection (default + one-shot fallback), the provider failure
// taxonomy, streaming, and embeddings. Retries are disabled at the SDK layer;
// the only retry this process ever makes is the single fallback-model attempt.
package llm

import (
	"context"
	"log/slog"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/metrics"
	"github.com/bookflow/agentplane/pkg/version"
)

// Client talks to the chat-completion provider.
type Client struct {
	api       openai.Client
	cfg       *config.ProviderConfig
	logger    *slog.Logger
	available bool
}

// New builds the provider client. A missing API key does not fail startup;
// the client reports unavailable and every call returns ErrNotConfigured.
func New(cfg *config.ProviderConfig, logger *slog.Logger) *Client {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		logger.Warn("LLM provider API key not set, provider features disabled",
			slog.String("env", cfg.APIKeyEnv))
		return &Client{cfg: cfg, logger: logger}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(cfg.RequestTimeout),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", version.Full()),
	}
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.SiteName))
	}

	return &Client{
		api:       openai.NewClient(opts...),
		cfg:       cfg,
		logger:    logger,
		available: true,
	}
}

// Available reports whether the provider is usable (API key present).
func (c *Client) Available() bool { return c.available }

// DefaultModel returns the configured primary model.
func (c *Client) DefaultModel() string { return c.cfg.DefaultModel }

// Chat runs one completion. When the caller did not pin a model and the
// primary model fails, the request is retried exactly once against the
// configured fallback model; a second failure surfaces the classified error
// of the fallback attempt. Rate-limit failures are never retried.
func (c *Client) Chat(ctx context.Context, req Request) (*Response, error) {
	if !c.available {
		return nil, ErrNotConfigured
	}

	pinned := req.Model != ""
	model := req.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}

	resp, err := c.complete(ctx, req, model)
	if err == nil {
		return resp, nil
	}

	perr := classify(err, model)
	if pinned || c.cfg.FallbackModel == "" || model == c.cfg.FallbackModel ||
		perr.Sentinel == ErrProviderRateLimited || ctx.Err() != nil {
		return nil, perr
	}

	c.logger.Warn("primary model failed, retrying with fallback",
		slog.String("model", model),
		slog.String("fallback", c.cfg.FallbackModel),
		slog.String("error", perr.Error()))

	resp, err = c.complete(ctx, req, c.cfg.FallbackModel)
	if err != nil {
		return nil, classify(err, c.cfg.FallbackModel)
	}
	return resp, nil
}

func (c *Client) complete(ctx context.Context, req Request, model string) (*Response, error) {
	completion, err := c.api.Chat.Completions.New(ctx, c.params(req, model))
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(model, "error").Inc()
		return nil, err
	}
	metrics.ProviderRequestsTotal.WithLabelValues(model, "success").Inc()
	if len(completion.Choices) == 0 {
		return nil, classify(ErrProviderUnavailable, model)
	}

	return &Response{
		ID:      completion.ID,
		Model:   completion.Model,
		Content: completion.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

// Stream runs one streaming completion and returns a finite, non-restartable
// fragment sequence. The channel always terminates with a Done fragment; a
// mid-stream provider failure is delivered as a fragment carrying Err.
// Streaming requests never fall back.
func (c *Client) Stream(ctx context.Context, req Request) (<-chan Fragment, error) {
	if !c.available {
		return nil, ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}

	stream := c.api.Chat.Completions.NewStreaming(ctx, c.params(req, model))

	out := make(chan Fragment)
	go func() {
		defer close(out)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case out <- Fragment{Content: delta}:
			case <-ctx.Done():
				out <- Fragment{Err: ctx.Err(), Done: true}
				return
			}
		}
		if err := stream.Err(); err != nil {
			out <- Fragment{Err: classify(err, model), Done: true}
			return
		}
		out <- Fragment{Done: true}
	}()
	return out, nil
}

// Embed returns one embedding vector per input text, computed with the
// configured embedding model.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if !c.available {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.cfg.EmbeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, classify(err, c.cfg.EmbeddingModel)
	}

	vectors := make([][]float64, len(resp.Data))
	for _, d := range resp.Data {
		if int(d.Index) < len(vectors) {
			vectors[d.Index] = d.Embedding
		}
	}
	return vectors, nil
}

func (c *Client) params(req Request, model string) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, m := range req.History {
		switch m.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.cfg.Temperature
	}

	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    messages,
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	}
}
