package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/service"
)

// NewServer creates the MCP server exposing every dispatcher action as a
// tool. Tool schemas are derived from the same action definitions the
// dispatcher validates against, so the two surfaces cannot drift.
func NewServer(dispatcher service.Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Jira MCP Server",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, def := range service.Definitions() {
		s.AddTool(toolFromDefinition(def), toolHandler(dispatcher, def.Name))
	}

	return s
}

// NewSSEServer wraps the MCP server in the SSE transport, matching the
// endpoints MCP clients expect.
func NewSSEServer(s *server.MCPServer) *server.SSEServer {
	return server.NewSSEServer(s,
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
	)
}

func toolFromDefinition(def service.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}

	required := make(map[string]bool, len(def.Required))
	for _, name := range def.Required {
		required[name] = true
	}

	// Every action parameter is a string; walk the reflected schema in
	// declaration order.
	if def.Schema != nil && def.Schema.Properties != nil {
		for pair := def.Schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			propOpts := []mcp.PropertyOption{mcp.Description(pair.Value.Description)}
			if required[pair.Key] {
				propOpts = append(propOpts, mcp.Required())
			}
			opts = append(opts, mcp.WithString(pair.Key, propOpts...))
		}
	}

	return mcp.NewTool(def.Name, opts...)
}

func toolHandler(dispatcher service.Dispatcher, action string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp := dispatcher.Dispatch(ctx, action, StringParams(req.GetArguments()))

		if e := resp.Err(); e != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %s", e.Kind, e.Message)), nil
		}

		body, err := json.MarshalIndent(resp.Payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", action, err)
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

// StringParams flattens MCP tool arguments into the dispatcher's
// string-valued parameter map.
func StringParams(args map[string]any) map[string]string {
	params := make(map[string]string, len(args))
	for k, v := range args {
		switch s := v.(type) {
		case string:
			params[k] = s
		case nil:
		default:
			params[k] = fmt.Sprint(s)
		}
	}
	return params
}
