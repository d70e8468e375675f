// Package tokenizer provides the sentence and word tokenizers used to cut
// text into chunks.
//
// Any type implementing Tokenizer can be injected into the chunker. The
// package ships Rules, a dependency-free English tokenizer that behaves close
// to the punkt sentence splitter and the Treebank word tokenizer:
//
//	tok := tokenizer.New()
//	tok.Sentences("Great news today. Or is it?") // ["Great news today.", "Or is it?"]
//	tok.Words("Great news today.")               // ["Great", "news", "today", "."]
//
// Funcs wraps plain functions, which is handy for tests and for plugging in
// an external tokenizer.
package tokenizer
