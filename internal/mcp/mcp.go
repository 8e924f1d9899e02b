// Package mcp implements the Model Context Protocol server for soroban.
//
// The MCP server exposes the analysis tool registry and the dataset
// profile to MCP-compatible AI agents. Tool handlers never return Go
// errors for domain failures — a bad column name or an empty filter
// result comes back as an IsError tool result whose text the agent can
// read and react to.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ashita-ai/soroban/internal/dataset"
	"github.com/ashita-ai/soroban/internal/telemetry"
	"github.com/ashita-ai/soroban/internal/tools"
)

// Server wraps the MCP server around one loaded dataset.
type Server struct {
	mcpServer *mcpserver.MCPServer
	ds        *dataset.Dataset
	summary   string
	defaults  tools.Defaults
	metrics   *telemetry.ToolMetrics
	logger    *slog.Logger
}

// New creates and configures a new MCP server with all resources and
// tools bound to the given dataset. defs supplies configured fallback
// values for optional tool arguments; metrics may be nil.
func New(ds *dataset.Dataset, summary string, defs tools.Defaults, metrics *telemetry.ToolMetrics, logger *slog.Logger, version string) *Server {
	s := &Server{
		ds:       ds,
		summary:  summary,
		defaults: defs,
		metrics:  metrics,
		logger:   logger,
	}

	s.mcpServer = mcpserver.NewMCPServer(
		"soroban",
		version,
		mcpserver.WithResourceCapabilities(true, true),
		mcpserver.WithToolCapabilities(true),
	)

	s.registerResources()
	s.registerTools()

	return s
}

// MCPServer returns the underlying mcp-go server for transport setup.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// registerTools declares one MCP tool per registry descriptor. The
// registry is the single source of truth; this is only a schema
// translation.
func (s *Server) registerTools() {
	for _, desc := range tools.Registry() {
		opts := []mcplib.ToolOption{
			mcplib.WithDescription(desc.Description),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
		}
		for _, p := range desc.Params {
			opts = append(opts, paramOption(p))
		}
		s.mcpServer.AddTool(mcplib.NewTool(desc.Name, opts...), s.toolHandler(desc.Name))
	}
}

// paramOption translates one registry parameter into an mcp-go schema option.
func paramOption(p tools.Param) mcplib.ToolOption {
	switch p.Type {
	case "number":
		opts := []mcplib.PropertyOption{mcplib.Description(p.Description)}
		if p.Required {
			opts = append(opts, mcplib.Required())
		}
		if d, ok := p.Default.(int); ok {
			opts = append(opts, mcplib.DefaultNumber(float64(d)))
		}
		return mcplib.WithNumber(p.Name, opts...)
	case "boolean":
		opts := []mcplib.PropertyOption{mcplib.Description(p.Description)}
		if p.Required {
			opts = append(opts, mcplib.Required())
		}
		if d, ok := p.Default.(bool); ok {
			opts = append(opts, mcplib.DefaultBool(d))
		}
		return mcplib.WithBoolean(p.Name, opts...)
	case "string[]":
		opts := []mcplib.PropertyOption{
			mcplib.Description(p.Description),
			mcplib.Items(map[string]any{"type": "string"}),
		}
		if p.Required {
			opts = append(opts, mcplib.Required())
		}
		return mcplib.WithArray(p.Name, opts...)
	default:
		opts := []mcplib.PropertyOption{mcplib.Description(p.Description)}
		if p.Required {
			opts = append(opts, mcplib.Required())
		}
		if len(p.Enum) > 0 {
			opts = append(opts, mcplib.Enum(p.Enum...))
		}
		if d, ok := p.Default.(string); ok {
			opts = append(opts, mcplib.DefaultString(d))
		}
		return mcplib.WithString(p.Name, opts...)
	}
}

// toolHandler builds the handler for one tool: decode the argument bag,
// dispatch, and render the result. Domain errors become IsError results.
func (s *Server) toolHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		start := time.Now()
		res := tools.Call(s.ds, name, request.GetArguments(), s.defaults)
		s.metrics.Record(ctx, name, time.Since(start), res.Err != nil)

		if res.Err != nil {
			s.logger.Debug("tool call failed",
				"tool", name, "dataset", s.ds.ID, "error", res.Err.Message)
			return errorResult(res.Err), nil
		}

		s.logger.Debug("tool call", "tool", name, "dataset", s.ds.ID)
		data, err := json.MarshalIndent(res.Data, "", "  ")
		if err != nil {
			return errorResult(&tools.ToolError{Message: "internal: marshal result: " + err.Error()}), nil
		}
		return &mcplib.CallToolResult{
			Content: []mcplib.Content{
				mcplib.TextContent{Type: "text", Text: string(data)},
			},
		}, nil
	}
}

// errorResult renders a domain error payload as an IsError tool result.
// The payload is JSON so the agent sees the valid column list as data,
// not prose.
func errorResult(terr *tools.ToolError) *mcplib.CallToolResult {
	data, err := json.MarshalIndent(terr, "", "  ")
	text := string(data)
	if err != nil {
		text = terr.Message
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: text},
		},
		IsError: true,
	}
}
