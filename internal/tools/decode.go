package tools

import (
	"fmt"

	"github.com/ashita-ai/soroban/internal/dataset"
)

// ParseInvocation decodes a raw argument bag (as delivered by the MCP
// transport or any other JSON-shaped caller) into the typed invocation
// for the named tool. An unrecognized tool name is a domain error, not
// a Go error.
func ParseInvocation(name string, args map[string]any) (Invocation, *ToolError) {
	switch Kind(name) {
	case KindColumnStats:
		return ColumnStatsArgs{
			Column: bagString(args, "column"),
		}, nil
	case KindValueCounts:
		return ValueCountsArgs{
			Column: bagString(args, "column"),
			TopN:   bagInt(args, "top_n"),
		}, nil
	case KindCorrelation:
		return CorrelationArgs{
			Column1: bagString(args, "column1"),
			Column2: bagString(args, "column2"),
		}, nil
	case KindFilterAggregate:
		return FilterAggregateArgs{
			TargetColumn: bagString(args, "target_column"),
			FilterColumn: bagString(args, "filter_column"),
			FilterValue:  bagString(args, "filter_value"),
			Operation:    bagString(args, "operation"),
		}, nil
	case KindTopRows:
		return TopRowsArgs{
			SortColumn: bagString(args, "sort_column"),
			N:          bagInt(args, "n"),
			Ascending:  bagBool(args, "ascending"),
		}, nil
	case KindKeywordEngagement:
		return KeywordEngagementArgs{
			Keywords:     bagStringSlice(args, "keywords"),
			TextColumn:   bagString(args, "text_column"),
			MetricColumn: bagString(args, "metric_column"),
		}, nil
	default:
		return nil, &ToolError{Message: fmt.Sprintf("unknown tool %q", name)}
	}
}

// Defaults carries configurable fallback values applied to optional
// arguments the caller omitted. The zero value selects the package
// defaults.
type Defaults struct {
	TopN int
}

func (d Defaults) topN() int {
	if d.TopN > 0 {
		return d.TopN
	}
	return DefaultTopN
}

// Call is the untyped entry point: decode the bag, fill omitted
// optional arguments from defs, dispatch, and fold any decode failure
// into the Result so callers never see a Go error for a bad invocation.
func Call(ds *dataset.Dataset, name string, args map[string]any, defs Defaults) Result {
	inv, terr := ParseInvocation(name, args)
	if terr != nil {
		return Result{Err: terr}
	}
	return Dispatch(ds, applyDefaults(inv, defs))
}

func applyDefaults(inv Invocation, defs Defaults) Invocation {
	switch args := inv.(type) {
	case ValueCountsArgs:
		if args.TopN <= 0 {
			args.TopN = defs.topN()
		}
		return args
	case TopRowsArgs:
		if args.N <= 0 {
			args.N = defs.topN()
		}
		return args
	default:
		return inv
	}
}

// Bag accessors. JSON numbers arrive as float64 and agents sometimes
// send numbers where strings belong; decoding is tolerant and falls
// back to zero values, leaving validation to the tools themselves.

func bagString(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func bagInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func bagBool(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

func bagStringSlice(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
