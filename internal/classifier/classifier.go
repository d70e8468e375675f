package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/tonetint/pkg/types"
)

// Common errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProviderFailed      = errors.New("sentiment provider failed")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrNoProviderEnabled   = errors.New("no sentiment provider configured")
)

// Model is the external sentiment capability. Classify must return exactly
// one result per input text, in input order.
type Model interface {
	// Classify labels every text with a sentiment and a confidence score
	Classify(ctx context.Context, texts []string) ([]types.SentimentResult, error)

	// Provider returns the provider name
	Provider() string

	// Model returns the model identifier
	Model() string

	// Close releases any resources held by the model
	Close() error
}

// Adapter forwards chunks to a Model. It adds no retries, caching or batching
// of its own; errors from the model propagate.
type Adapter struct {
	model Model
}

// NewAdapter wraps a model
func NewAdapter(model Model) *Adapter {
	return &Adapter{model: model}
}

// Model returns the wrapped model
func (a *Adapter) Model() Model {
	return a.model
}

// Classify returns one result per chunk, positionally aligned
func (a *Adapter) Classify(ctx context.Context, chunks []types.Chunk) ([]types.SentimentResult, error) {
	if len(chunks) == 0 {
		return []types.SentimentResult{}, nil
	}
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", c.Index, err)
		}
	}

	results, err := a.model.Classify(ctx, types.Texts(chunks))
	if err != nil {
		return nil, fmt.Errorf("classify %d chunks with %s/%s: %w", len(chunks), a.model.Provider(), a.model.Model(), err)
	}

	if len(results) != len(chunks) {
		return nil, fmt.Errorf("%w: %s returned %d results for %d chunks",
			types.ErrCardinalityMismatch, a.model.Provider(), len(results), len(chunks))
	}

	return results, nil
}

// Cache provides in-memory LRU caching of results by content hash
type Cache struct {
	cache *lru.Cache[string, types.SentimentResult]
}

// NewCache creates a new result cache with LRU eviction
func NewCache(maxLen int) *Cache {
	if maxLen <= 0 {
		maxLen = DefaultCacheSize
	}
	cache, err := lru.New[string, types.SentimentResult](maxLen)
	if err != nil {
		cache, _ = lru.New[string, types.SentimentResult](DefaultCacheSize)
	}
	return &Cache{cache: cache}
}

// Get retrieves a cached result
func (c *Cache) Get(hash string) (types.SentimentResult, bool) {
	return c.cache.Get(hash)
}

// Set stores a result, evicting the least recently used entry when full
func (c *Cache) Set(hash string, result types.SentimentResult) {
	c.cache.Add(hash, result)
}

// Size returns the current cache size
func (c *Cache) Size() int {
	return c.cache.Len()
}

// Clear empties the cache
func (c *Cache) Clear() {
	c.cache.Purge()
}

// ComputeHash computes the cache key of a text classified by model
func ComputeHash(model, text string) string {
	h := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(h[:])
}

// ValidateBatch validates the texts of a classification request
func ValidateBatch(texts []string) error {
	if len(texts) == 0 {
		return fmt.Errorf("%w: no texts provided", ErrInvalidInput)
	}

	for i, text := range texts {
		if text == "" {
			return fmt.Errorf("%w: text at index %d is empty", ErrInvalidInput, i)
		}
	}

	return nil
}
