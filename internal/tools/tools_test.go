package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/soroban/internal/dataset"
	"github.com/ashita-ai/soroban/internal/stats"
	"github.com/ashita-ai/soroban/internal/testutil"
)

func tweets(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.Parse(testutil.TweetsCSV)
	require.Len(t, ds.Records, 5)
	return ds
}

func TestColumnStats(t *testing.T) {
	ds := dataset.Parse("v\n1\n2\n3\n4\n")
	res := Dispatch(ds, ColumnStatsArgs{Column: "v"})

	require.Nil(t, res.Err)
	payload := res.Data.(ColumnStats)
	assert.Equal(t, "v", payload.Column)
	assert.Equal(t, 4, payload.Count)
	assert.Equal(t, 2.5, payload.Mean)
	assert.Equal(t, 2.5, payload.Median)
	assert.Equal(t, 1.118, payload.Std)
	assert.Equal(t, 1.0, payload.Min)
	assert.Equal(t, 4.0, payload.Max)
}

func TestColumnStatsResolvesName(t *testing.T) {
	res := Dispatch(tweets(t), ColumnStatsArgs{Column: "favorite_count"})

	require.Nil(t, res.Err)
	// The payload must echo the resolved catalog name, not the request.
	assert.Equal(t, "Favorite Count", res.Data.(ColumnStats).Column)
}

func TestColumnStatsNoNumericData(t *testing.T) {
	ds := tweets(t)
	res := Dispatch(ds, ColumnStatsArgs{Column: "Category"})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, `"Category"`)
	assert.Equal(t, ds.Fields, res.Err.AvailableColumns)
}

func TestColumnStatsUnresolvableColumn(t *testing.T) {
	// The resolver falls back to the requested name; the miss surfaces
	// here as a no-numeric-data error naming that name.
	res := Dispatch(tweets(t), ColumnStatsArgs{Column: "no_such_column"})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, `"no_such_column"`)
	assert.NotEmpty(t, res.Err.AvailableColumns)
}

func TestValueCounts(t *testing.T) {
	ds := dataset.Parse("c\na\na\nb\n")
	res := Dispatch(ds, ValueCountsArgs{Column: "c", TopN: 10})

	require.Nil(t, res.Err)
	payload := res.Data.(ValueCounts)
	assert.Equal(t, 3, payload.TotalRows)
	require.Len(t, payload.Counts, 2)
	assert.Equal(t, "a", payload.Counts[0].Value)
	assert.Equal(t, 2, payload.Counts[0].Count)
	assert.Equal(t, "b", payload.Counts[1].Value)
	assert.Equal(t, 1, payload.Counts[1].Count)
}

func TestValueCountsDefaultTopN(t *testing.T) {
	ds := dataset.Parse("c\n" + "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\n")
	res := Dispatch(ds, ValueCountsArgs{Column: "c"})

	require.Nil(t, res.Err)
	assert.Len(t, res.Data.(ValueCounts).Counts, DefaultTopN)
}

func TestValueCountsSkipsEmpty(t *testing.T) {
	ds := dataset.Parse("a,b\nx,1\n,2\n")
	res := Dispatch(ds, ValueCountsArgs{Column: "a"})

	require.Nil(t, res.Err)
	payload := res.Data.(ValueCounts)
	require.Len(t, payload.Counts, 1)
	assert.Equal(t, 2, payload.TotalRows)
}

func TestCorrelationPerfect(t *testing.T) {
	ds := dataset.Parse("x,y\n1,2\n2,4\n3,6\n")
	res := Dispatch(ds, CorrelationArgs{Column1: "x", Column2: "y"})

	require.Nil(t, res.Err)
	payload := res.Data.(Correlation)
	assert.Equal(t, 1.0, payload.Correlation)
	assert.Equal(t, 3, payload.Pairs)
	assert.Equal(t, "x", payload.Column1)
	assert.Equal(t, "y", payload.Column2)
}

func TestCorrelationDropsPartialPairs(t *testing.T) {
	ds := dataset.Parse("x,y\n1,2\nbad,4\n2,\n3,6\n10,20\n")
	res := Dispatch(ds, CorrelationArgs{Column1: "x", Column2: "y"})

	require.Nil(t, res.Err)
	assert.Equal(t, 3, res.Data.(Correlation).Pairs)
}

func TestCorrelationTooFewPairs(t *testing.T) {
	ds := dataset.Parse("x,y\n1,2\nbad,4\n")
	res := Dispatch(ds, CorrelationArgs{Column1: "x", Column2: "y"})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, "at least 2")
}

func TestCorrelationZeroVariance(t *testing.T) {
	ds := dataset.Parse("x,y\n5,1\n5,2\n5,3\n")
	res := Dispatch(ds, CorrelationArgs{Column1: "x", Column2: "y"})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, "zero variance")
}

func TestFilterAggregateSubstringMatch(t *testing.T) {
	// "mog" must match both "Mog ..." and "... mogmaxxing ...".
	res := Dispatch(tweets(t), FilterAggregateArgs{
		TargetColumn: "Favorite Count",
		FilterColumn: "Tweet Text",
		FilterValue:  "mog",
	})

	require.Nil(t, res.Err)
	payload := res.Data.(Aggregate)
	assert.Equal(t, 3, payload.MatchingRows)
	assert.Equal(t, stats.OpMean, payload.Operation)
	assert.Equal(t, 24.0, payload.Result) // (12+30+30)/3
	assert.Equal(t, "Favorite Count", payload.TargetColumn)
	assert.Equal(t, "Tweet Text", payload.FilterColumn)
}

func TestFilterAggregateOperations(t *testing.T) {
	ds := tweets(t)
	tests := []struct {
		op   string
		want float64
	}{
		{"sum", 72},
		{"count", 3},
		{"min", 12},
		{"max", 30},
		{"median", 30},
		{"mean", 24},
		// Unknown operation falls back to mean by policy.
		{"average", 24},
	}
	for _, tt := range tests {
		res := Dispatch(ds, FilterAggregateArgs{
			TargetColumn: "Favorite Count",
			FilterColumn: "Tweet Text",
			FilterValue:  "mog",
			Operation:    tt.op,
		})
		require.Nil(t, res.Err, "op %q", tt.op)
		assert.Equal(t, tt.want, res.Data.(Aggregate).Result, "op %q", tt.op)
	}
}

func TestFilterAggregateNoMatch(t *testing.T) {
	res := Dispatch(tweets(t), FilterAggregateArgs{
		TargetColumn: "Favorite Count",
		FilterColumn: "Tweet Text",
		FilterValue:  "blockchain",
	})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, "no rows match")
}

func TestFilterAggregateNoNumericTarget(t *testing.T) {
	res := Dispatch(tweets(t), FilterAggregateArgs{
		TargetColumn: "Category",
		FilterColumn: "Tweet Text",
		FilterValue:  "mog",
	})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, `"Category"`)
	assert.NotEmpty(t, res.Err.AvailableColumns)
}

func TestTopRowsNumericDescending(t *testing.T) {
	res := Dispatch(tweets(t), TopRowsArgs{SortColumn: "Favorite Count", N: 3})

	require.Nil(t, res.Err)
	payload := res.Data.(TopRows)
	require.Len(t, payload.Rows, 3)
	// Maximum first; the two 30s tie and keep original relative order
	// (stable sort): "Mog appreciation post" came before "Mog Mog Mog".
	assert.Equal(t, "Mog appreciation post", payload.Rows[0]["Tweet Text"])
	assert.Equal(t, "Mog Mog Mog", payload.Rows[1]["Tweet Text"])
	assert.Equal(t, "12", payload.Rows[2]["Favorite Count"])
}

func TestTopRowsAscending(t *testing.T) {
	res := Dispatch(tweets(t), TopRowsArgs{SortColumn: "Favorite Count", N: 2, Ascending: true})

	require.Nil(t, res.Err)
	payload := res.Data.(TopRows)
	assert.Equal(t, "3", payload.Rows[0]["Favorite Count"])
	assert.Equal(t, "7", payload.Rows[1]["Favorite Count"])
}

func TestTopRowsLexicographicFallback(t *testing.T) {
	ds := dataset.Parse("name\nbanana\napple\ncherry\n")
	res := Dispatch(ds, TopRowsArgs{SortColumn: "name", N: 3, Ascending: true})

	require.Nil(t, res.Err)
	payload := res.Data.(TopRows)
	assert.Equal(t, "apple", payload.Rows[0]["name"])
	assert.Equal(t, "banana", payload.Rows[1]["name"])
	assert.Equal(t, "cherry", payload.Rows[2]["name"])
}

func TestTopRowsDefaultN(t *testing.T) {
	ds := tweets(t)
	res := Dispatch(ds, TopRowsArgs{SortColumn: "Favorite Count"})

	require.Nil(t, res.Err)
	// Fewer rows than the default cap: all of them come back.
	assert.Len(t, res.Data.(TopRows).Rows, len(ds.Records))
}

func TestKeywordEngagement(t *testing.T) {
	res := Dispatch(tweets(t), KeywordEngagementArgs{Keywords: []string{"gym"}})

	require.Nil(t, res.Err)
	payload := res.Data.(KeywordEngagement)
	// Auto-detected from the catalog.
	assert.Equal(t, "Tweet Text", payload.TextColumn)
	assert.Equal(t, "Favorite Count", payload.MetricColumn)

	require.Len(t, payload.Keywords, 1)
	kw := payload.Keywords[0]
	assert.Equal(t, "gym", kw.Keyword)
	assert.Equal(t, 2, kw.With.Rows)
	assert.Equal(t, 9.5, kw.With.MeanMetric) // (12+7)/2
	assert.Equal(t, 3, kw.Without.Rows)
	assert.Equal(t, 21.0, kw.Without.MeanMetric) // (30+3+30)/3
}

func TestKeywordEngagementCaseInsensitive(t *testing.T) {
	res := Dispatch(tweets(t), KeywordEngagementArgs{Keywords: []string{"MOG"}})

	require.Nil(t, res.Err)
	assert.Equal(t, 3, res.Data.(KeywordEngagement).Keywords[0].With.Rows)
}

func TestKeywordEngagementEmptyKeywords(t *testing.T) {
	res := Dispatch(tweets(t), KeywordEngagementArgs{})

	require.Nil(t, res.Err)
	assert.Empty(t, res.Data.(KeywordEngagement).Keywords)
}

func TestKeywordEngagementExplicitColumns(t *testing.T) {
	res := Dispatch(tweets(t), KeywordEngagementArgs{
		Keywords:     []string{"fitness"},
		TextColumn:   "category",
		MetricColumn: "favorite_count",
	})

	require.Nil(t, res.Err)
	payload := res.Data.(KeywordEngagement)
	assert.Equal(t, "Category", payload.TextColumn)
	assert.Equal(t, "Favorite Count", payload.MetricColumn)
	assert.Equal(t, 2, payload.Keywords[0].With.Rows)
}

func TestKeywordEngagementUndetectable(t *testing.T) {
	ds := dataset.Parse("")
	res := Dispatch(ds, KeywordEngagementArgs{Keywords: []string{"x"}})

	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, "detect")
}
