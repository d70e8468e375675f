package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidChunkSize    = errors.New("chunk size must be >= 1")
	ErrInvalidChunkIndex   = errors.New("chunk index must be >= 0")
	ErrInvalidScore        = errors.New("score must be between 0 and 1")
	ErrEmptyContent        = errors.New("content cannot be empty")
	ErrCardinalityMismatch = errors.New("sentiment results do not match chunks")
)
