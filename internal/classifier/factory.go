package classifier

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds model configuration
type Config struct {
	Provider         string // huggingface, openai, lexicon; empty auto-detects
	Model            string // Provider specific model id; empty uses the default
	HuggingFaceToken string
	OpenAIKey        string
	BaseURL          string // Override of the provider endpoint
	Timeout          time.Duration
	CacheSize        int // 0 disables result caching
	Logger           *zap.Logger
}

// New creates a model from explicit configuration.
// Without a provider the first usable one wins:
//  1. huggingface when a HuggingFace token is set
//  2. openai when an OpenAI key is set
//  3. the offline lexicon
func New(cfg Config) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var cache *Cache
	if cfg.CacheSize > 0 {
		cache = NewCache(cfg.CacheSize)
	}

	provider := DetectProvider(cfg)
	logger.Debug("creating sentiment model",
		zap.String("provider", provider),
		zap.String("model", cfg.Model))

	switch provider {
	case ProviderHuggingFace:
		return NewHuggingFaceProvider(cfg.HuggingFaceToken, cfg.Model, cfg.BaseURL, cfg.Timeout, cache, logger)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.BaseURL, logger)
	case ProviderLexicon:
		return NewLexiconProvider(), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %s", ErrUnsupportedProvider, cfg.Provider)
	}
}

// DetectProvider returns the provider New would use for cfg
func DetectProvider(cfg Config) string {
	if cfg.Provider != "" {
		return strings.ToLower(cfg.Provider)
	}
	if cfg.HuggingFaceToken != "" {
		return ProviderHuggingFace
	}
	if cfg.OpenAIKey != "" {
		return ProviderOpenAI
	}
	return ProviderLexicon
}

// Providers lists the supported provider names
func Providers() []string {
	return []string{ProviderHuggingFace, ProviderOpenAI, ProviderLexicon}
}
