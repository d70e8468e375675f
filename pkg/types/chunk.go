package types

import (
	"strings"
)

// Chunk is a bounded run of words taken from a single sentence. It is the unit
// that gets classified and rendered.
type Chunk struct {
	// Position
	Index    int // Position in document order (0-based)
	Sentence int // Index of the sentence the chunk was cut from

	// Content
	Text  string   // Words joined by single spaces
	Words []string // Tokens as produced by the word tokenizer
}

// NewChunk builds a chunk from an ordered word run
func NewChunk(index, sentence int, words []string) Chunk {
	return Chunk{
		Index:    index,
		Sentence: sentence,
		Text:     strings.Join(words, " "),
		Words:    words,
	}
}

// WordCount returns the number of words in the chunk
func (c Chunk) WordCount() int {
	return len(c.Words)
}

// Validate checks that the chunk is usable for classification
func (c Chunk) Validate() error {
	if c.Text == "" {
		return ErrEmptyContent
	}
	if c.Index < 0 || c.Sentence < 0 {
		return ErrInvalidChunkIndex
	}
	return nil
}

// Texts returns the text of every chunk, in order
func Texts(chunks []Chunk) []string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts
}
