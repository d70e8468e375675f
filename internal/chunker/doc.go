// Package chunker divides text into sentence-bounded word chunks for
// sentiment classification.
//
// # Basic Usage
//
//	c, err := chunker.New(8, tokenizer.New())
//	if err != nil {
//	    log.Fatal(err) // chunk size < 1
//	}
//
//	for _, chunk := range c.Split(text) {
//	    fmt.Printf("%d: %s (%d words)\n", chunk.Index, chunk.Text, chunk.WordCount())
//	}
//
// # Chunking Strategy
//
// The text is first split into sentences, each sentence into words. Words of
// one sentence are grouped into contiguous runs of at most the chunk size and
// re-joined with single spaces, so:
//   - empty text yields no chunks
//   - a sentence shorter than the chunk size yields exactly one chunk
//   - a sentence of 2*size+1 words yields three chunks, the last holding one word
//
// A chunk size below one is a configuration error and is reported by New
// rather than clamped.
package chunker
