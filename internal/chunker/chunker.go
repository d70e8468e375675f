package chunker

import (
	"fmt"

	"github.com/dshills/tonetint/internal/tokenizer"
	"github.com/dshills/tonetint/pkg/types"
)

const (
	// DefaultChunkSize is the number of words per chunk when none is configured
	DefaultChunkSize = 8

	// MinDemoChunkSize and MaxDemoChunkSize bound the chunk size offered by
	// the web demo
	MinDemoChunkSize = 6
	MaxDemoChunkSize = 18
)

// Chunker cuts text into sentence-bounded runs of words
type Chunker struct {
	size      int
	tokenizer tokenizer.Tokenizer
}

// New creates a Chunker producing chunks of at most size words. A nil
// tokenizer selects the default rule tokenizer.
func New(size int, tok tokenizer.Tokenizer) (*Chunker, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidChunkSize, size)
	}
	if tok == nil {
		tok = tokenizer.New()
	}
	return &Chunker{size: size, tokenizer: tok}, nil
}

// Size returns the maximum number of words per chunk
func (c *Chunker) Size() int {
	return c.size
}

// Split cuts text into chunks in document order. Each sentence is grouped into
// runs of Size words; the last run of a sentence may be shorter. Chunks never
// span sentences.
func (c *Chunker) Split(text string) []types.Chunk {
	chunks := make([]types.Chunk, 0)

	for sentenceIdx, sentence := range c.tokenizer.Sentences(text) {
		words := c.tokenizer.Words(sentence)
		for start := 0; start < len(words); start += c.size {
			end := start + c.size
			if end > len(words) {
				end = len(words)
			}
			chunks = append(chunks, types.NewChunk(len(chunks), sentenceIdx, words[start:end]))
		}
	}

	return chunks
}
