// Package profile runs the one-shot dataset profiling pass: it
// classifies each column as numeric or categorical and renders the
// compact description handed to the agent as conversational context.
package profile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ashita-ai/soroban/internal/dataset"
	"github.com/ashita-ai/soroban/internal/stats"
)

// DefaultNumericThreshold is the fraction of non-empty values that must
// parse as numbers for a column to classify as numeric. Tunable policy,
// not a stored fact — reclassification happens on every Summarize call.
const DefaultNumericThreshold = 0.8

// topValues is how many of the most frequent categorical values the
// summary reports per column.
const topValues = 5

// Kind is a column classification.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// ValueCount is one distinct value and its number of occurrences.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Column is the profile of a single field.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	// Numeric columns.
	Count int     `json:"count,omitempty"`
	Mean  float64 `json:"mean,omitempty"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`

	// Categorical columns.
	Distinct int          `json:"distinct,omitempty"`
	Top      []ValueCount `json:"top,omitempty"`
}

// Summary is the full profiling result for one dataset.
type Summary struct {
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns"`
}

// Summarize profiles every field of the dataset in catalog order. A
// threshold <= 0 selects DefaultNumericThreshold. Returns an empty
// Summary when the dataset has no records or no fields.
func Summarize(ds *dataset.Dataset, threshold float64) Summary {
	if threshold <= 0 {
		threshold = DefaultNumericThreshold
	}
	s := Summary{Rows: len(ds.Records)}
	if len(ds.Records) == 0 || len(ds.Fields) == 0 {
		return s
	}

	for _, field := range ds.Fields {
		var nonEmpty []string
		var numeric []float64
		for _, rec := range ds.Records {
			v := rec[field]
			if v == "" {
				continue
			}
			nonEmpty = append(nonEmpty, v)
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				numeric = append(numeric, f)
			}
		}

		fraction := 0.0
		if len(nonEmpty) > 0 {
			fraction = float64(len(numeric)) / float64(len(nonEmpty))
		}

		if fraction >= threshold && len(numeric) > 0 {
			s.Columns = append(s.Columns, Column{
				Name:  field,
				Kind:  KindNumeric,
				Count: len(numeric),
				Mean:  stats.Round2(stats.Mean(numeric)),
				Min:   stats.Min(numeric),
				Max:   stats.Max(numeric),
			})
			continue
		}
		s.Columns = append(s.Columns, Column{
			Name:     field,
			Kind:     KindCategorical,
			Distinct: distinctCount(nonEmpty),
			Top:      TopCounts(nonEmpty, topValues),
		})
	}
	return s
}

// TopCounts returns the n most frequent values with their counts.
// The sort is stable over descending count, so tied values keep their
// first-encountered order. Shared with the get_value_counts tool.
func TopCounts(values []string, n int) []ValueCount {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Render writes the summary as one readable block per classification
// group. Column names are quoted verbatim so the agent can copy them
// exactly into tool arguments.
func (s Summary) Render() string {
	if len(s.Columns) == 0 {
		return ""
	}

	var numeric, categorical []Column
	for _, col := range s.Columns {
		if col.Kind == KindNumeric {
			numeric = append(numeric, col)
		} else {
			categorical = append(categorical, col)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dataset: %d rows, %d columns.\n", s.Rows, len(s.Columns))
	if len(numeric) > 0 {
		sb.WriteString("\nNumeric columns:\n")
		for _, col := range numeric {
			fmt.Fprintf(&sb, "  %q: %d values, mean=%v, min=%v, max=%v\n",
				col.Name, col.Count, col.Mean, col.Min, col.Max)
		}
	}
	if len(categorical) > 0 {
		sb.WriteString("\nCategorical columns:\n")
		for _, col := range categorical {
			fmt.Fprintf(&sb, "  %q: %d distinct values", col.Name, col.Distinct)
			if len(col.Top) > 0 {
				parts := make([]string, len(col.Top))
				for i, vc := range col.Top {
					parts[i] = fmt.Sprintf("%q (%d)", vc.Value, vc.Count)
				}
				fmt.Fprintf(&sb, "; top: %s", strings.Join(parts, ", "))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
