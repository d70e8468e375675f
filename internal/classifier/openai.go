package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/pkg/types"
)

const openAISystemPrompt = `You are a sentiment classifier. You receive a JSON array of text fragments.
Classify each fragment as POS, NEG or NEU and give your confidence between 0 and 1.
Answer with a JSON object {"results":[{"label":"POS","score":0.93}, ...]} holding exactly
one entry per fragment, in the same order as the input.`

// OpenAIProvider implements Model with an OpenAI chat completion model
// prompted to answer in JSON
type OpenAIProvider struct {
	client *openai.Client
	model  string
	retry  RetryConfig
	logger *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI classifier. baseURL overrides the
// API endpoint, which also allows OpenAI-compatible servers.
func NewOpenAIProvider(apiKey, model, baseURL string, logger *zap.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: openai api key not set", ErrNoProviderEnabled)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		retry:  DefaultRetryConfig(),
		logger: logger,
	}, nil
}

// Classify sends the texts in batches of at most MaxBatchSize fragments per
// completion request
func (o *OpenAIProvider) Classify(ctx context.Context, texts []string) ([]types.SentimentResult, error) {
	if err := ValidateBatch(texts); err != nil {
		return nil, err
	}

	results := make([]types.SentimentResult, 0, len(texts))
	for start := 0; start < len(texts); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		input, err := json.Marshal(batch)
		if err != nil {
			return nil, fmt.Errorf("marshal texts: %w", err)
		}

		scored, err := retryWithBackoff(ctx, o.retry, func() ([]types.SentimentResult, error) {
			return o.complete(ctx, string(input), len(batch))
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
		}
		results = append(results, scored...)
	}

	return results, nil
}

func (o *OpenAIProvider) complete(ctx context.Context, input string, want int) ([]types.SentimentResult, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var reqErr *openai.APIError
		if errors.As(err, &reqErr) {
			return nil, &APIError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Message}
		}
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrProviderFailed)
	}

	var parsed struct {
		Results []types.SentimentResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}
	if len(parsed.Results) != want {
		return nil, fmt.Errorf("%w: got %d results for %d texts", ErrProviderFailed, len(parsed.Results), want)
	}

	o.logger.Debug("openai classification",
		zap.String("model", o.model),
		zap.Int("texts", want),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	for i := range parsed.Results {
		parsed.Results[i].Score = clamp01(parsed.Results[i].Score)
	}
	return parsed.Results, nil
}

func (o *OpenAIProvider) Provider() string {
	return ProviderOpenAI
}

func (o *OpenAIProvider) Model() string {
	return o.model
}

func (o *OpenAIProvider) Close() error {
	return nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
