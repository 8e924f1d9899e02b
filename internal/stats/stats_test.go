package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/soroban/internal/dataset"
)

func records(field string, values ...string) []dataset.Record {
	recs := make([]dataset.Record, len(values))
	for i, v := range values {
		recs[i] = dataset.Record{field: v}
	}
	return recs
}

func TestExtractDropsUnparseable(t *testing.T) {
	recs := records("v", "1", "2.5", "x", "", "-3", "  ")
	assert.Equal(t, []float64{1, 2.5, -3}, Extract(recs, "v"))
}

func TestExtractMissingField(t *testing.T) {
	recs := records("v", "1", "2")
	assert.Empty(t, Extract(recs, "other"))
}

func TestDescriptiveStats(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	assert.Equal(t, 2.5, Mean(xs))
	assert.Equal(t, 2.5, Median(xs))
	assert.Equal(t, 1.118, Round4(PopStdDev(xs)))
	assert.Equal(t, 1.0, Min(xs))
	assert.Equal(t, 4.0, Max(xs))
}

func TestMedianOdd(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Median(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 0.0, PopStdDev(nil))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
}

func TestPearsonPerfect(t *testing.T) {
	r, ok := Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.True(t, ok)
	assert.Equal(t, 1.0, Round4(r))
}

func TestPearsonNegative(t *testing.T) {
	r, ok := Pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.True(t, ok)
	assert.Equal(t, -1.0, Round4(r))
}

func TestPearsonTooFewPairs(t *testing.T) {
	_, ok := Pearson([]float64{1}, []float64{2})
	assert.False(t, ok)

	_, ok = Pearson(nil, nil)
	assert.False(t, ok)
}

func TestPearsonZeroVariance(t *testing.T) {
	_, ok := Pearson([]float64{5, 5, 5}, []float64{1, 2, 3})
	assert.False(t, ok)
}

func TestExtractPairs(t *testing.T) {
	recs := []dataset.Record{
		{"x": "1", "y": "2"},
		{"x": "bad", "y": "3"},
		{"x": "4", "y": ""},
		{"x": "5", "y": "6"},
	}
	xs, ys := ExtractPairs(recs, "x", "y")
	assert.Equal(t, []float64{1, 5}, xs)
	assert.Equal(t, []float64{2, 6}, ys)
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		name string
		want Op
	}{
		{"mean", OpMean},
		{"sum", OpSum},
		{"count", OpCount},
		{"min", OpMin},
		{"max", OpMax},
		{"median", OpMedian},
		// Lenient default: unknown names aggregate as mean.
		{"average", OpMean},
		{"", OpMean},
		{"MEAN", OpMean},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOp(tt.name), "op %q", tt.name)
	}
}

func TestOpApply(t *testing.T) {
	xs := []float64{4, 1, 3, 2}

	assert.Equal(t, 2.5, OpMean.Apply(xs))
	assert.Equal(t, 10.0, OpSum.Apply(xs))
	assert.Equal(t, 4.0, OpCount.Apply(xs))
	assert.Equal(t, 1.0, OpMin.Apply(xs))
	assert.Equal(t, 4.0, OpMax.Apply(xs))
	assert.Equal(t, 2.5, OpMedian.Apply(xs))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.118, Round4(1.11803398))
	assert.Equal(t, 0.3333, Round4(1.0/3.0))
	assert.Equal(t, 12.35, Round2(12.346))
	assert.Equal(t, -2.5, Round2(-2.499))
}
