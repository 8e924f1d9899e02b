package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// soroban://dataset/summary — the profiling pass output, the same
	// text the host injects into the agent's context on load.
	s.mcpServer.AddResource(
		mcplib.NewResource(
			"soroban://dataset/summary",
			"Dataset Summary",
			mcplib.WithResourceDescription("Column classification and descriptive profile of the loaded dataset"),
			mcplib.WithMIMEType("text/plain"),
		),
		s.handleSummary,
	)

	// soroban://dataset/columns — the exact field catalog, for verbatim
	// copying into tool arguments.
	s.mcpServer.AddResource(
		mcplib.NewResource(
			"soroban://dataset/columns",
			"Dataset Columns",
			mcplib.WithResourceDescription("Exact column names and row count of the loaded dataset"),
			mcplib.WithMIMEType("application/json"),
		),
		s.handleColumns,
	)
}

func (s *Server) handleSummary(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      "soroban://dataset/summary",
			MIMEType: "text/plain",
			Text:     s.summary,
		},
	}, nil
}

func (s *Server) handleColumns(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(map[string]any{
		"dataset_id": s.ds.ID,
		"rows":       len(s.ds.Records),
		"columns":    s.ds.Fields,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcp: marshal columns: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      "soroban://dataset/columns",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
