package soroban

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/soroban/internal/testutil"
	"github.com/ashita-ai/soroban/internal/tools"
)

const testCSV = `product,price,region
widget,9.99,north
gadget,24.50,south
widget,11.00,north
`

func testApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{
		WithCSV(testCSV),
		WithLogger(testutil.TestLogger()),
	}, opts...)
	app, err := New(opts...)
	require.NoError(t, err)
	return app
}

func TestNewLoadsDataset(t *testing.T) {
	app := testApp(t)

	info := app.Dataset()
	assert.Equal(t, 3, info.Rows)
	assert.Equal(t, []string{"product", "price", "region"}, info.Columns)
	assert.NotEmpty(t, info.ID.String())
}

func TestNewRejectsEmptyCSV(t *testing.T) {
	_, err := New(WithCSV("header,only\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

func TestNewRequiresACSVSource(t *testing.T) {
	t.Setenv("SOROBAN_CSV_PATH", "")
	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV configured")
}

type fakeSource struct{ raw string }

func (s fakeSource) FetchCSV(ctx context.Context) (string, error) {
	if s.raw == "" {
		return "", errors.New("nothing to fetch")
	}
	return s.raw, nil
}

func TestNewWithSource(t *testing.T) {
	app := testApp(t, WithSource(fakeSource{raw: testCSV}))
	// WithCSV wins, but a source-only App loads too.
	app2, err := New(WithSource(fakeSource{raw: testCSV}),
		WithLogger(testutil.TestLogger()))
	require.NoError(t, err)
	assert.Equal(t, app.Dataset().Rows, app2.Dataset().Rows)
}

func TestNewWithFailingSource(t *testing.T) {
	_, err := New(WithSource(fakeSource{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch")
}

func TestSummaryMentionsEveryColumn(t *testing.T) {
	app := testApp(t)
	summary := app.Summary()

	assert.Contains(t, summary, `"product"`)
	assert.Contains(t, summary, `"price"`)
	assert.Contains(t, summary, `"region"`)
}

func TestToolsCatalog(t *testing.T) {
	app := testApp(t)
	descs := app.Tools()

	require.Len(t, descs, 6)
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{
		"compute_column_stats",
		"get_value_counts",
		"compute_correlation",
		"filter_and_aggregate",
		"get_top_rows",
		"compare_keyword_engagement",
	}, names)
}

func TestInvokeSuccess(t *testing.T) {
	app := testApp(t)

	res := app.Invoke("compute_column_stats", map[string]any{"column": "price"})
	require.Nil(t, res.Err)
	require.NotNil(t, res.Data)
}

func TestInvokeDomainError(t *testing.T) {
	app := testApp(t)

	res := app.Invoke("compute_column_stats", map[string]any{"column": "region"})
	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, `"region"`)
	assert.Equal(t, []string{"product", "price", "region"}, res.Err.AvailableColumns)
}

func TestInvokeUnknownTool(t *testing.T) {
	app := testApp(t)

	res := app.Invoke("brew_espresso", nil)
	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Message, "unknown tool")
}

func TestInvokeHonorsConfiguredTopN(t *testing.T) {
	t.Setenv("SOROBAN_DEFAULT_TOP_N", "3")
	app := testApp(t, WithCSV("c\na\nb\nd\ne\nf\ng\nh\ni\nj\nk\nl\nm\n"))

	res := app.Invoke("get_value_counts", map[string]any{"column": "c"})
	require.Nil(t, res.Err)
	assert.Len(t, res.Data.(tools.ValueCounts).Counts, 3)
}

func TestNewRejectsOutOfRangeThreshold(t *testing.T) {
	for _, bad := range []float64{-0.5, 1.5} {
		_, err := New(WithCSV(testCSV), WithNumericThreshold(bad),
			WithLogger(testutil.TestLogger()))
		require.Error(t, err, "threshold %v", bad)
		assert.Contains(t, err.Error(), "must be in (0, 1]")
	}
}

func TestNumericThresholdOption(t *testing.T) {
	// product has 0/3 numeric values either way; region too. With a
	// permissive threshold nothing changes for them, but price stays
	// numeric — the option must plumb through without breaking load.
	app := testApp(t, WithNumericThreshold(0.5))
	assert.Contains(t, app.Summary(), "Numeric columns:")
}
