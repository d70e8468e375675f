package mcp_test

import (
	"errors"
	"testing"

	internalMCP "github.com/dshills/tonetint/internal/mcp"
)

// TestErrorCodes verifies MCP error codes are defined correctly
func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"ErrorCodeInvalidParams", internalMCP.ErrorCodeInvalidParams},
		{"ErrorCodeInternalError", internalMCP.ErrorCodeInternalError},
		{"ErrorCodeEmptyText", internalMCP.ErrorCodeEmptyText},
		{"ErrorCodeClassificationFailed", internalMCP.ErrorCodeClassificationFailed},
	}

	seenCodes := make(map[int]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code > 0 || tt.code < -40000 {
				t.Errorf("%s has invalid code %d (should be negative and > -40000)", tt.name, tt.code)
			}

			if existing, found := seenCodes[tt.code]; found {
				t.Errorf("%s has duplicate code %d (already used by %s)", tt.name, tt.code, existing)
			}
			seenCodes[tt.code] = tt.name
		})
	}
}

// TestMCPError tests the MCPError type
func TestMCPError(t *testing.T) {
	tests := []struct {
		name          string
		code          int
		message       string
		expectedError string
	}{
		{"SimpleError", -32602, "invalid params", "MCP error -32602: invalid params"},
		{"ModelError", -32002, "classification failed", "MCP error -32002: classification failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = &internalMCP.MCPError{Code: tt.code, Message: tt.message}
			if err.Error() != tt.expectedError {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.expectedError)
			}

			var mcpErr *internalMCP.MCPError
			if !errors.As(err, &mcpErr) || mcpErr.Code != tt.code {
				t.Errorf("errors.As failed for %v", err)
			}
		})
	}
}
