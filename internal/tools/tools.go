// Package tools defines the closed set of analysis tools an agent may
// invoke against a loaded dataset, and the dispatcher that routes a
// typed invocation to its kernel.
//
// Dispatch is an exhaustive switch over tagged invocation variants —
// one argument struct per tool — rather than a string-keyed handler
// map, so adding a tool without wiring its behavior fails to compile.
//
// Domain failures (unknown column, empty filter result, too few
// correlation pairs) are returned as Result payloads, never as Go
// errors: the orchestration layer relays the error text back to the
// model so it can retry with corrected arguments.
package tools

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ashita-ai/soroban/internal/dataset"
	"github.com/ashita-ai/soroban/internal/profile"
	"github.com/ashita-ai/soroban/internal/stats"
)

// Kind identifies one callable tool.
type Kind string

const (
	KindColumnStats       Kind = "compute_column_stats"
	KindValueCounts       Kind = "get_value_counts"
	KindCorrelation       Kind = "compute_correlation"
	KindFilterAggregate   Kind = "filter_and_aggregate"
	KindTopRows           Kind = "get_top_rows"
	KindKeywordEngagement Kind = "compare_keyword_engagement"
)

// DefaultTopN is the result cap applied when a tool's n/top_n argument
// is omitted or non-positive.
const DefaultTopN = 10

// Invocation is one typed tool request. Each tool's argument struct
// implements it; Dispatch switches exhaustively over the concrete
// types.
type Invocation interface {
	Kind() Kind
}

// ColumnStatsArgs requests descriptive statistics for one column.
type ColumnStatsArgs struct {
	Column string
}

// ValueCountsArgs requests occurrence counts of distinct values.
type ValueCountsArgs struct {
	Column string
	TopN   int
}

// CorrelationArgs requests the Pearson coefficient of two columns.
type CorrelationArgs struct {
	Column1 string
	Column2 string
}

// FilterAggregateArgs requests an aggregation over rows surviving a
// substring filter.
type FilterAggregateArgs struct {
	TargetColumn string
	FilterColumn string
	FilterValue  string
	Operation    string
}

// TopRowsArgs requests the first n records under a sort.
type TopRowsArgs struct {
	SortColumn string
	N          int
	Ascending  bool
}

// KeywordEngagementArgs requests per-keyword engagement comparison.
// TextColumn and MetricColumn are optional; empty values trigger
// auto-detection against the field catalog.
type KeywordEngagementArgs struct {
	Keywords     []string
	TextColumn   string
	MetricColumn string
}

func (ColumnStatsArgs) Kind() Kind       { return KindColumnStats }
func (ValueCountsArgs) Kind() Kind       { return KindValueCounts }
func (CorrelationArgs) Kind() Kind       { return KindCorrelation }
func (FilterAggregateArgs) Kind() Kind   { return KindFilterAggregate }
func (TopRowsArgs) Kind() Kind           { return KindTopRows }
func (KeywordEngagementArgs) Kind() Kind { return KindKeywordEngagement }

// ToolError is a domain failure reported as data. AvailableColumns is
// populated when a corrected column name would fix the call.
type ToolError struct {
	Message          string   `json:"message"`
	AvailableColumns []string `json:"available_columns,omitempty"`
}

// Result is the outcome of one invocation: exactly one of Data or Err
// is set.
type Result struct {
	Data any        `json:"data,omitempty"`
	Err  *ToolError `json:"error,omitempty"`
}

func okResult(data any) Result { return Result{Data: data} }

func errResult(msg string) Result {
	return Result{Err: &ToolError{Message: msg}}
}

func errResultWithColumns(msg string, fields []string) Result {
	return Result{Err: &ToolError{Message: msg, AvailableColumns: fields}}
}

// ColumnStats is the compute_column_stats payload. All floats are
// rounded to 4 decimal places; Column is the resolved field name.
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ValueCounts is the get_value_counts payload.
type ValueCounts struct {
	Column    string               `json:"column"`
	Counts    []profile.ValueCount `json:"counts"`
	TotalRows int                  `json:"total_rows"`
}

// Correlation is the compute_correlation payload.
type Correlation struct {
	Column1     string  `json:"column1"`
	Column2     string  `json:"column2"`
	Correlation float64 `json:"correlation"`
	Pairs       int     `json:"pairs"`
}

// Aggregate is the filter_and_aggregate payload.
type Aggregate struct {
	TargetColumn string   `json:"target_column"`
	FilterColumn string   `json:"filter_column"`
	FilterValue  string   `json:"filter_value"`
	Operation    stats.Op `json:"operation"`
	Result       float64  `json:"result"`
	MatchingRows int      `json:"matching_rows"`
}

// TopRows is the get_top_rows payload.
type TopRows struct {
	SortColumn string           `json:"sort_column"`
	Ascending  bool             `json:"ascending"`
	Rows       []dataset.Record `json:"rows"`
}

// PartitionStat describes one side of a keyword partition.
type PartitionStat struct {
	Rows       int     `json:"rows"`
	MeanMetric float64 `json:"mean_metric"`
}

// KeywordStat is the per-keyword comparison of rows containing the
// keyword against rows that do not.
type KeywordStat struct {
	Keyword string        `json:"keyword"`
	With    PartitionStat `json:"with_keyword"`
	Without PartitionStat `json:"without_keyword"`
}

// KeywordEngagement is the compare_keyword_engagement payload.
type KeywordEngagement struct {
	TextColumn   string        `json:"text_column"`
	MetricColumn string        `json:"metric_column"`
	Keywords     []KeywordStat `json:"keywords"`
}

// Dispatch routes a typed invocation to its tool. Column arguments are
// resolved against the dataset's field catalog before use, and every
// payload echoes resolved names only.
func Dispatch(ds *dataset.Dataset, inv Invocation) Result {
	switch args := inv.(type) {
	case ColumnStatsArgs:
		return columnStats(ds, args)
	case ValueCountsArgs:
		return valueCounts(ds, args)
	case CorrelationArgs:
		return correlation(ds, args)
	case FilterAggregateArgs:
		return filterAggregate(ds, args)
	case TopRowsArgs:
		return topRows(ds, args)
	case KeywordEngagementArgs:
		return keywordEngagement(ds, args)
	default:
		return errResult(fmt.Sprintf("unknown tool invocation type %T", inv))
	}
}

func columnStats(ds *dataset.Dataset, args ColumnStatsArgs) Result {
	column := ds.Resolve(args.Column)
	values := stats.Extract(ds.Records, column)
	if len(values) == 0 {
		return errResultWithColumns(
			fmt.Sprintf("no numeric data found in column %q", column), ds.Fields)
	}
	return okResult(ColumnStats{
		Column: column,
		Count:  len(values),
		Mean:   stats.Round4(stats.Mean(values)),
		Median: stats.Round4(stats.Median(values)),
		Std:    stats.Round4(stats.PopStdDev(values)),
		Min:    stats.Round4(stats.Min(values)),
		Max:    stats.Round4(stats.Max(values)),
	})
}

func valueCounts(ds *dataset.Dataset, args ValueCountsArgs) Result {
	column := ds.Resolve(args.Column)
	topN := args.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	var values []string
	for _, rec := range ds.Records {
		if v := rec[column]; v != "" {
			values = append(values, v)
		}
	}
	counts := profile.TopCounts(values, topN)
	if counts == nil {
		counts = []profile.ValueCount{}
	}
	return okResult(ValueCounts{
		Column:    column,
		Counts:    counts,
		TotalRows: len(ds.Records),
	})
}

func correlation(ds *dataset.Dataset, args CorrelationArgs) Result {
	col1 := ds.Resolve(args.Column1)
	col2 := ds.Resolve(args.Column2)
	xs, ys := stats.ExtractPairs(ds.Records, col1, col2)
	r, ok := stats.Pearson(xs, ys)
	if !ok {
		if len(xs) < 2 {
			return errResultWithColumns(fmt.Sprintf(
				"need at least 2 rows where both %q and %q are numeric, found %d",
				col1, col2, len(xs)), ds.Fields)
		}
		return errResult(fmt.Sprintf(
			"correlation between %q and %q is undefined: one column has zero variance",
			col1, col2))
	}
	return okResult(Correlation{
		Column1:     col1,
		Column2:     col2,
		Correlation: stats.Round4(r),
		Pairs:       len(xs),
	})
}

func filterAggregate(ds *dataset.Dataset, args FilterAggregateArgs) Result {
	target := ds.Resolve(args.TargetColumn)
	filterCol := ds.Resolve(args.FilterColumn)
	needle := strings.ToLower(args.FilterValue)

	var matched []dataset.Record
	for _, rec := range ds.Records {
		if strings.Contains(strings.ToLower(rec[filterCol]), needle) {
			matched = append(matched, rec)
		}
	}
	if len(matched) == 0 {
		return errResult(fmt.Sprintf(
			"no rows match filter %q on column %q", args.FilterValue, filterCol))
	}

	values := stats.Extract(matched, target)
	if len(values) == 0 {
		return errResultWithColumns(fmt.Sprintf(
			"no numeric data in column %q among the %d rows matching the filter",
			target, len(matched)), ds.Fields)
	}

	op := stats.ParseOp(args.Operation)
	return okResult(Aggregate{
		TargetColumn: target,
		FilterColumn: filterCol,
		FilterValue:  args.FilterValue,
		Operation:    op,
		Result:       stats.Round4(op.Apply(values)),
		MatchingRows: len(matched),
	})
}

func topRows(ds *dataset.Dataset, args TopRowsArgs) Result {
	column := ds.Resolve(args.SortColumn)
	n := args.N
	if n <= 0 {
		n = DefaultTopN
	}

	rows := append([]dataset.Record(nil), ds.Records...)
	// Stable sort so rows comparing equal keep their original order.
	sort.SliceStable(rows, func(i, j int) bool {
		less := compareValues(rows[i][column], rows[j][column])
		if args.Ascending {
			return less < 0
		}
		return less > 0
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return okResult(TopRows{
		SortColumn: column,
		Ascending:  args.Ascending,
		Rows:       rows,
	})
}

// compareValues orders two cell values numerically when both parse as
// numbers, otherwise by case-sensitive lexicographic comparison.
func compareValues(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

func keywordEngagement(ds *dataset.Dataset, args KeywordEngagementArgs) Result {
	textCol := args.TextColumn
	if textCol != "" {
		textCol = ds.Resolve(textCol)
	} else {
		textCol = detectTextColumn(ds.Fields)
	}
	metricCol := args.MetricColumn
	if metricCol != "" {
		metricCol = ds.Resolve(metricCol)
	} else {
		metricCol = detectMetricColumn(ds.Fields)
	}
	if textCol == "" || metricCol == "" {
		return errResultWithColumns(
			"could not detect text and metric columns; pass text_column and metric_column explicitly",
			ds.Fields)
	}

	out := KeywordEngagement{
		TextColumn:   textCol,
		MetricColumn: metricCol,
		Keywords:     []KeywordStat{},
	}
	for _, keyword := range args.Keywords {
		needle := strings.ToLower(keyword)
		var with, without []dataset.Record
		for _, rec := range ds.Records {
			if strings.Contains(strings.ToLower(rec[textCol]), needle) {
				with = append(with, rec)
			} else {
				without = append(without, rec)
			}
		}
		out.Keywords = append(out.Keywords, KeywordStat{
			Keyword: keyword,
			With:    partitionStat(with, metricCol),
			Without: partitionStat(without, metricCol),
		})
	}
	return okResult(out)
}

func partitionStat(rows []dataset.Record, metricCol string) PartitionStat {
	values := stats.Extract(rows, metricCol)
	return PartitionStat{
		Rows:       len(rows),
		MeanMetric: stats.Round2(stats.Mean(values)),
	}
}
