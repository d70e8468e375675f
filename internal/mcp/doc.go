// Package mcp implements the Model Context Protocol (MCP) server for ToneTint.
//
// The MCP server exposes three tools to AI assistants:
//   - visualize_text: Color text by sentiment and return HTML spans
//   - render_document: Same analysis as a standalone HTML page
//   - list_models: Report the sentiment model in use
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Logs are written to stderr so stdout carries only protocol messages.
//
// # Basic Usage
//
//	tonetint serve
//
// # Tool: visualize_text
//
//	Request:
//	{
//	  "name": "visualize_text",
//	  "arguments": {
//	    "text": "I loved the food. The service was slow.",
//	    "chunk_size": 8,
//	    "positive_color": "#aec867"
//	  }
//	}
//
//	Response:
//	{
//	  "chunk_size": 8,
//	  "chunks": 2,
//	  "distribution": {"negative": 1, "positive": 1},
//	  "markup": "<span style='background-color:rgba(174, 200, 103, 0.97);' ...",
//	  "model": "finiteautomata/bertweet-base-sentiment-analysis"
//	}
//
// Optional arguments: chunk_size, positive_color, negative_color,
// neutral_color, font_family and font_size. Omitted ones fall back to the
// server configuration.
//
// # Tool: render_document
//
// Takes the same arguments and returns the complete HTML page as text: the
// "ToneTint Output:" heading, the colored text in a centered container and a
// color legend.
//
// # Tool: list_models
//
//	Response:
//	{
//	  "model": "finiteautomata/bertweet-base-sentiment-analysis",
//	  "provider": "huggingface",
//	  "providers": ["huggingface", "openai", "lexicon"],
//	  "suggested_models": [...]
//	}
//
// # Error Handling
//
// Failures are returned as MCPError values:
//
//	-32602  Invalid parameters (chunk_size < 1, malformed color)
//	-32603  Internal error
//	-32001  text missing or empty
//	-32002  The sentiment model failed or returned the wrong number of results
//
// # Concurrency
//
// Tool calls are serialized: one analysis runs at a time. A call waiting for
// its turn gives up when its context is cancelled.
package mcp
