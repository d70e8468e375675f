package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/tonetint/internal/chunker"
)

// renderProperties are the arguments shared by the rendering tools
func renderProperties() map[string]interface{} {
	return map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Text to analyze",
		},
		"chunk_size": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum words per colored chunk",
			"default":     chunker.DefaultChunkSize,
			"minimum":     1,
		},
		"positive_color": map[string]interface{}{
			"type":        "string",
			"description": "Hex color for positive chunks (#RRGGBB)",
		},
		"negative_color": map[string]interface{}{
			"type":        "string",
			"description": "Hex color for negative chunks (#RRGGBB)",
		},
		"neutral_color": map[string]interface{}{
			"type":        "string",
			"description": "Hex color for neutral chunks (#RRGGBB)",
		},
		"font_family": map[string]interface{}{
			"type":        "string",
			"description": "CSS font-family of the rendered text",
		},
		"font_size": map[string]interface{}{
			"type":        "integer",
			"description": "Font size in pixels",
			"minimum":     1,
		},
	}
}

// visualizeTextTool returns the tool definition for visualize_text
func visualizeTextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "visualize_text",
		Description: "Classify text chunk by chunk and return HTML spans colored by sentiment, with opacity scaled by model confidence",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: renderProperties(),
			Required:   []string{"text"},
		},
	}
}

// renderDocumentTool returns the tool definition for render_document
func renderDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "render_document",
		Description: "Classify text chunk by chunk and return a standalone HTML page with the colored text and a legend",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: renderProperties(),
			Required:   []string{"text"},
		},
	}
}

// listModelsTool returns the tool definition for list_models
func listModelsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_models",
		Description: "Show the sentiment model in use and the supported providers",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
