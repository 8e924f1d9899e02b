package soroban

import "log/slog"

// Option configures an App.
type Option func(*resolvedOptions)

// resolvedOptions holds all extension points after applying defaults.
// Unexported — callers use the With* functions.
type resolvedOptions struct {
	csv              string
	csvPath          string
	source           Source
	numericThreshold float64
	logger           *slog.Logger
	version          string
}

// WithCSV supplies raw CSV text directly, bypassing file loading.
// Takes precedence over WithSource and WithCSVPath.
func WithCSV(raw string) Option {
	return func(o *resolvedOptions) { o.csv = raw }
}

// WithCSVPath overrides the CSV file path from config (SOROBAN_CSV_PATH env var).
func WithCSVPath(path string) Option {
	return func(o *resolvedOptions) { o.csvPath = path }
}

// WithSource supplies the CSV through a host-owned acquisition path
// (upload handler, object store fetch). Used when no WithCSV text is set.
func WithSource(src Source) Option {
	return func(o *resolvedOptions) { o.source = src }
}

// WithNumericThreshold overrides the numeric classification threshold
// from config (SOROBAN_NUMERIC_THRESHOLD env var). Must be in (0, 1].
func WithNumericThreshold(threshold float64) Option {
	return func(o *resolvedOptions) { o.numericThreshold = threshold }
}

// WithLogger sets the structured logger for the App.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *resolvedOptions) { o.logger = logger }
}

// WithVersion sets the version string reported to MCP clients and logs.
func WithVersion(version string) Option {
	return func(o *resolvedOptions) { o.version = version }
}
