package types

import "fmt"

// SentimentResult is the classifier output for one chunk
type SentimentResult struct {
	Label string  `json:"label"` // Label as reported by the model
	Score float64 `json:"score"` // Confidence in [0, 1]
}

// Category returns the normalized category of the result label
func (r SentimentResult) Category() Category {
	return ParseCategory(r.Label)
}

// Validate checks that the score is a probability
func (r SentimentResult) Validate() error {
	if r.Score < 0 || r.Score > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidScore, r.Score)
	}
	return nil
}

// Segment pairs a chunk with the sentiment assigned to it
type Segment struct {
	Chunk  Chunk
	Result SentimentResult
}

// Zip pairs chunks and results positionally. Both slices must have the same
// length; a mismatch means the model broke its contract.
func Zip(chunks []Chunk, results []SentimentResult) ([]Segment, error) {
	if len(chunks) != len(results) {
		return nil, fmt.Errorf("%w: %d chunks, %d results", ErrCardinalityMismatch, len(chunks), len(results))
	}

	segments := make([]Segment, len(chunks))
	for i := range chunks {
		segments[i] = Segment{Chunk: chunks[i], Result: results[i]}
	}
	return segments, nil
}

// Distribution counts segments per category
func Distribution(segments []Segment) map[Category]int {
	counts := make(map[Category]int, 4)
	for _, s := range segments {
		counts[s.Result.Category()]++
	}
	return counts
}
