package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/csift/internal/extract"
)

// AddExtractTool registers the c_extract tool with an MCP server. The
// registration is composable with other tools.
func AddExtractTool(s *server.MCPServer, extractor *extract.Extractor, cache *resultCache) {
	tool := mcp.NewTool(
		"c_extract",
		mcp.WithDescription("Extract a structural summary from a C source or header file: macro definitions, typedef struct/enum types with their members, and function definitions/prototypes with arguments. Returns JSON."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the .c or .h file to summarize")),
	)

	s.AddTool(tool, createExtractHandler(extractor, cache))
}

// createExtractHandler creates the handler function for the c_extract tool.
func createExtractHandler(extractor *extract.Extractor, cache *resultCache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		path, ok := argsMap["path"].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", path, err)), nil
		}

		key := cache.key(path, source)
		summary, hit := cache.get(key)
		if !hit {
			summary, err = extractor.ExtractSource(source)
			if err != nil {
				return nil, fmt.Errorf("extraction failed: %w", err)
			}
			cache.set(key, summary)
		}

		jsonData, err := json.Marshal(summary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal summary: %w", err)
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
