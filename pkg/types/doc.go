// Package types provides shared type definitions for ToneTint.
//
// # Core Types
//
// Chunk is a run of at most chunk-size words cut from one sentence:
//
//	chunk := types.NewChunk(0, 0, []string{"Great", "news", "today", "."})
//	chunk.Text // "Great news today ."
//
// SentimentResult is what a sentiment model reports for one chunk. The raw
// label is kept as reported; Category normalizes it:
//
//	r := types.SentimentResult{Label: "pos", Score: 0.9}
//	r.Category() // types.CategoryPositive
//
// Segment is the positional pairing of a chunk and its result. Zip refuses to
// pair slices of different lengths:
//
//	segments, err := types.Zip(chunks, results)
//	if errors.Is(err, types.ErrCardinalityMismatch) {
//	    // the model returned the wrong number of results
//	}
package types
