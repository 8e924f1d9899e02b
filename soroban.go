// Package soroban is the public API for embedding the soroban tabular
// analysis toolbelt.
//
// Host applications import this package to load a CSV dataset, hand the
// generated profile to their agent, and serve the analysis tools over
// MCP stdio:
//
//	app, err := soroban.New(
//	    soroban.WithCSVPath("tweets.csv"),
//	    soroban.WithLogger(logger),
//	    soroban.WithVersion(version),
//	)
//	if err != nil { ... }
//	fmt.Println(app.Summary()) // context for the agent
//	if err := app.Run(ctx); err != nil { ... }
//
// Hosts that run their own orchestration loop skip Run() and call
// Invoke() directly; both paths share the same dispatcher and the same
// errors-as-data contract.
//
// The import graph enforces a strict no-cycle rule: soroban (root)
// imports internal/*, but internal/* never imports soroban (root).
// Public types (DatasetInfo, ToolResult, etc.) are standalone structs
// with no internal imports; conversion helpers live here because this
// is the only file that sees both sides of the boundary.
package soroban

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ashita-ai/soroban/internal/config"
	"github.com/ashita-ai/soroban/internal/dataset"
	"github.com/ashita-ai/soroban/internal/mcp"
	"github.com/ashita-ai/soroban/internal/profile"
	"github.com/ashita-ai/soroban/internal/telemetry"
	"github.com/ashita-ai/soroban/internal/tools"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// App is the soroban lifecycle: one loaded dataset, its profile, and
// the MCP server exposing the tool registry over stdio. Construct with
// New(), serve with Run(). App has no public fields — use New() options
// to configure it.
type App struct {
	cfg          config.Config
	ds           *dataset.Dataset
	summary      profile.Summary
	srv          *mcp.Server
	otelShutdown telemetry.Shutdown
	logger       *slog.Logger
	version      string
}

// New loads the dataset, runs the profiling pass, and wires the MCP
// server. It does NOT start serving — call Run(). The dataset comes
// from the first configured source: WithCSV raw text, WithSource,
// WithCSVPath, or the SOROBAN_CSV_PATH environment variable.
func New(opts ...Option) (*App, error) {
	o := resolvedOptions{}
	for _, fn := range opts {
		fn(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	// Load .env file if present (non-fatal; production won't have one).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.csvPath != "" {
		cfg.CSVPath = o.csvPath
	}
	if o.numericThreshold != 0 {
		cfg.NumericThreshold = o.numericThreshold
	}
	// Options bypass the env layer, so revalidate the merged config.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	version := o.version
	if version == "" {
		version = "dev"
	}

	raw, err := loadRawCSV(o, cfg)
	if err != nil {
		return nil, err
	}

	ds := dataset.Parse(raw)
	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("dataset: no records parsed — need a header line and at least one data row")
	}
	logger.Info("dataset loaded",
		"dataset", ds.ID, "rows", len(ds.Records), "columns", len(ds.Fields))

	summary := profile.Summarize(ds, cfg.NumericThreshold)

	otelShutdown, err := telemetry.Init(context.Background(),
		cfg.OTELEndpoint, cfg.ServiceName, version, cfg.OTELInsecure)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	metrics, err := telemetry.NewToolMetrics()
	if err != nil {
		_ = otelShutdown(context.Background())
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	srv := mcp.New(ds, summary.Render(), tools.Defaults{TopN: cfg.DefaultTopN}, metrics, logger, version)

	return &App{
		cfg:          cfg,
		ds:           ds,
		summary:      summary,
		srv:          srv,
		otelShutdown: otelShutdown,
		logger:       logger,
		version:      version,
	}, nil
}

func loadRawCSV(o resolvedOptions, cfg config.Config) (string, error) {
	switch {
	case o.csv != "":
		return o.csv, nil
	case o.source != nil:
		raw, err := o.source.FetchCSV(context.Background())
		if err != nil {
			return "", fmt.Errorf("dataset: fetch: %w", err)
		}
		return raw, nil
	case cfg.CSVPath != "":
		info, err := os.Stat(cfg.CSVPath)
		if err != nil {
			return "", fmt.Errorf("dataset: %w", err)
		}
		if info.Size() > cfg.MaxCSVBytes {
			return "", fmt.Errorf("dataset: %s is %d bytes, above the %d byte limit",
				cfg.CSVPath, info.Size(), cfg.MaxCSVBytes)
		}
		raw, err := os.ReadFile(cfg.CSVPath)
		if err != nil {
			return "", fmt.Errorf("dataset: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("dataset: no CSV configured — pass WithCSV/WithCSVPath/WithSource or set SOROBAN_CSV_PATH")
	}
}

// Run serves MCP over stdio until the context is canceled or stdin
// closes. Logging must go to stderr — stdout belongs to the transport.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("soroban serving", "version", a.version, "transport", "stdio")
	defer func() { _ = a.otelShutdown(context.Background()) }()

	stdio := mcpserver.NewStdioServer(a.srv.MCPServer())
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp: serve: %w", err)
	}
	return nil
}

// Summary returns the rendered dataset profile, the context block the
// host hands its agent at the start of every conversation.
func (a *App) Summary() string {
	return a.summary.Render()
}

// Dataset describes the loaded dataset.
func (a *App) Dataset() DatasetInfo {
	return DatasetInfo{
		ID:      a.ds.ID,
		Rows:    len(a.ds.Records),
		Columns: append([]string(nil), a.ds.Fields...),
	}
}

// Tools returns the tool registry as public descriptors, for hosts that
// forward the schema to a non-MCP agent runtime.
func (a *App) Tools() []ToolDescriptor {
	reg := tools.Registry()
	out := make([]ToolDescriptor, len(reg))
	for i, desc := range reg {
		out[i] = toPublicDescriptor(desc)
	}
	return out
}

// Invoke runs one tool call against the loaded dataset. Domain
// failures come back inside the ToolResult, never as a panic or a Go
// error, so the caller can relay the message to its reasoning loop.
func (a *App) Invoke(name string, args map[string]any) ToolResult {
	res := tools.Call(a.ds, name, args, tools.Defaults{TopN: a.cfg.DefaultTopN})
	return toPublicResult(res)
}

func toPublicDescriptor(d tools.Descriptor) ToolDescriptor {
	params := make([]ToolParam, len(d.Params))
	for i, p := range d.Params {
		params[i] = ToolParam{
			Name:        p.Name,
			Type:        p.Type,
			Description: p.Description,
			Required:    p.Required,
			Enum:        append([]string(nil), p.Enum...),
			Default:     p.Default,
		}
	}
	return ToolDescriptor{
		Name:        d.Name,
		Description: d.Description,
		Params:      params,
	}
}

func toPublicResult(r tools.Result) ToolResult {
	out := ToolResult{Data: r.Data}
	if r.Err != nil {
		out.Err = &ToolError{
			Message:          r.Err.Message,
			AvailableColumns: append([]string(nil), r.Err.AvailableColumns...),
		}
	}
	return out
}
