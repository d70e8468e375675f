package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/tonetint/pkg/types"
)

// Provider configuration
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderLexicon     = "lexicon"

	// Default models
	DefaultHuggingFaceModel = "finiteautomata/bertweet-base-sentiment-analysis"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultLexiconModel     = "tonetint-lexicon-v1"

	// Default endpoints
	DefaultHuggingFaceURL = "https://api-inference.huggingface.co"

	// Batch limits
	MaxBatchSize = 64

	// Cache
	DefaultCacheSize = 10000

	// HTTP
	DefaultTimeout = 30 * time.Second

	// Retry configuration
	MaxRetries        = 3
	InitialBackoffMs  = 100
	MaxBackoffMs      = 5000
	BackoffMultiplier = 2.0
)

// SuggestedModels are the HuggingFace models offered by the web demo
var SuggestedModels = []string{
	DefaultHuggingFaceModel,
	"cardiffnlp/twitter-roberta-base-sentiment-latest",
	"nlptown/bert-base-multilingual-uncased-sentiment",
	"citizenlab/twitter-xlm-roberta-base-sentiment-finetunned",
}

// modelLabels translates the label ids of common HuggingFace sentiment models
// (cardiffnlp LABEL_n, nlptown star ratings) to POS/NEG/NEU
var modelLabels = map[string]string{
	"LABEL_0": "NEG",
	"LABEL_1": "NEU",
	"LABEL_2": "POS",
	"1 STAR":  "NEG",
	"2 STARS": "NEG",
	"3 STARS": "NEU",
	"4 STARS": "POS",
	"5 STARS": "POS",
}

// canonicalLabel returns the POS/NEG/NEU form of a model specific label, or
// the label unchanged
func canonicalLabel(label string) string {
	if l, ok := modelLabels[strings.ToUpper(label)]; ok {
		return l
	}
	return label
}

// HuggingFaceProvider implements Model using the HuggingFace Inference API
// text-classification task
type HuggingFaceProvider struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	retry      RetryConfig
	logger     *zap.Logger
}

// NewHuggingFaceProvider creates a new HuggingFace classifier. An empty model
// selects DefaultHuggingFaceModel, an empty baseURL the public inference API.
func NewHuggingFaceProvider(token, model, baseURL string, timeout time.Duration, cache *Cache, logger *zap.Logger) (*HuggingFaceProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: huggingface token not set", ErrNoProviderEnabled)
	}
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	if baseURL == "" {
		baseURL = DefaultHuggingFaceURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HuggingFaceProvider{
		token:   token,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:  cache,
		retry:  DefaultRetryConfig(),
		logger: logger,
	}, nil
}

func (h *HuggingFaceProvider) Classify(ctx context.Context, texts []string) ([]types.SentimentResult, error) {
	if err := ValidateBatch(texts); err != nil {
		return nil, err
	}

	results := make([]types.SentimentResult, len(texts))
	missing := make([]int, 0, len(texts))

	for i, text := range texts {
		if h.cache != nil {
			if r, ok := h.cache.Get(ComputeHash(h.model, text)); ok {
				results[i] = r
				continue
			}
		}
		missing = append(missing, i)
	}

	if len(missing) < len(texts) {
		h.logger.Debug("classification cache hits",
			zap.Int("hits", len(texts)-len(missing)),
			zap.Int("misses", len(missing)),
			zap.Int("cached", h.cache.Size()))
	}

	for start := 0; start < len(missing); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(missing) {
			end = len(missing)
		}
		idx := missing[start:end]

		batch := make([]string, len(idx))
		for i, j := range idx {
			batch[i] = texts[j]
		}

		attempt := 0
		scored, err := retryWithBackoff(ctx, h.retry, func() ([]types.SentimentResult, error) {
			attempt++
			if attempt > 1 {
				h.logger.Debug("retrying huggingface request", zap.Int("attempt", attempt), zap.String("model", h.model))
			}
			return h.callAPI(ctx, batch)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProviderFailed, err)
		}

		for i, j := range idx {
			results[j] = scored[i]
			if h.cache != nil {
				h.cache.Set(ComputeHash(h.model, texts[j]), scored[i])
			}
		}
	}

	return results, nil
}

// hfLabel is one label/score pair of a text-classification answer
type hfLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (h *HuggingFaceProvider) callAPI(ctx context.Context, texts []string) ([]types.SentimentResult, error) {
	reqBody := map[string]interface{}{
		"inputs": texts,
		"options": map[string]interface{}{
			"wait_for_model": true,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := h.baseURL + "/models/" + h.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var apiResp [][]hfLabel
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp) != len(texts) {
		return nil, fmt.Errorf("%w: got %d label sets for %d texts", ErrProviderFailed, len(apiResp), len(texts))
	}

	results := make([]types.SentimentResult, len(apiResp))
	for i, labels := range apiResp {
		best, ok := topLabel(labels)
		if !ok {
			return nil, fmt.Errorf("%w: no labels for text %d", ErrProviderFailed, i)
		}
		result := types.SentimentResult{Label: canonicalLabel(best.Label), Score: best.Score}
		if err := result.Validate(); err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		results[i] = result
	}

	return results, nil
}

// topLabel returns the highest scoring label
func topLabel(labels []hfLabel) (hfLabel, bool) {
	if len(labels) == 0 {
		return hfLabel{}, false
	}
	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return best, true
}

func (h *HuggingFaceProvider) Provider() string {
	return ProviderHuggingFace
}

func (h *HuggingFaceProvider) Model() string {
	return h.model
}

func (h *HuggingFaceProvider) Close() error {
	if h.cache != nil {
		h.cache.Clear()
	}
	h.httpClient.CloseIdleConnections()
	return nil
}

// Static is a Model returning a fixed result list whatever the input. It is
// meant for tests and demos; it does not check cardinality.
type Static struct {
	Results []types.SentimentResult
}

func (s *Static) Classify(_ context.Context, _ []string) ([]types.SentimentResult, error) {
	out := make([]types.SentimentResult, len(s.Results))
	copy(out, s.Results)
	return out, nil
}

func (s *Static) Provider() string { return "static" }
func (s *Static) Model() string    { return "static" }
func (s *Static) Close() error     { return nil }

// ModelFunc adapts a function to the Model interface
type ModelFunc func(ctx context.Context, texts []string) ([]types.SentimentResult, error)

func (f ModelFunc) Classify(ctx context.Context, texts []string) ([]types.SentimentResult, error) {
	return f(ctx, texts)
}

func (f ModelFunc) Provider() string { return "func" }
func (f ModelFunc) Model() string    { return "func" }
func (f ModelFunc) Close() error     { return nil }
