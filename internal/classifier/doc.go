// Package classifier connects text chunks to an external sentiment model.
//
// The Model interface is the sentiment capability: a batch of strings in, one
// label and confidence score per string out, in the same order. Adapter is
// the thin pass-through the visualizer talks to; it forwards chunk texts in
// a single call and only checks that the model kept its cardinality promise.
//
// # Basic Usage
//
//	model, err := classifier.New(classifier.Config{
//	    Provider:         "huggingface",
//	    HuggingFaceToken: os.Getenv("HF_API_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer model.Close()
//
//	results, err := classifier.NewAdapter(model).Classify(ctx, chunks)
//
// # Providers
//
// HuggingFace (default when a token is set):
//   - POST {base}/models/{model} text-classification, top label per input
//   - Retries transport errors, 429 and 5xx with exponential backoff
//   - Optional LRU cache keyed by SHA-256 of model and text
//
// OpenAI:
//   - Chat completion in JSON mode, one {label, score} per fragment
//
// Lexicon (offline fallback):
//   - Small built-in valence list with negation and booster handling
//   - Labels POS/NEG/NEU, confidence in [0.5, 1]
//
// Static and ModelFunc exist for tests and for hosts that bring their own model.
//
// # Error Handling
//
//	_, err := adapter.Classify(ctx, chunks)
//	switch {
//	case errors.Is(err, classifier.ErrProviderFailed):
//	    // the remote model failed after retries
//	case errors.Is(err, types.ErrCardinalityMismatch):
//	    // the model returned the wrong number of results
//	}
package classifier
