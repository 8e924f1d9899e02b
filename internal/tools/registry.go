package tools

import "github.com/ashita-ai/soroban/internal/stats"

// Param declares one named argument of a tool: its primitive type,
// whether it is required, and any enum or default constraints.
type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "string", "number", "boolean", "string[]"
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}

// Descriptor is the static declaration of one tool: the contract handed
// to the agent so it knows what it may invoke and how.
type Descriptor struct {
	Kind        Kind    `json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
}

// columnHint is appended to every column-shaped parameter description.
// The agent receives the dataset-columns header at the start of each
// conversation turn and must copy names from it verbatim — resolution
// tolerates near-misses, but exact names never miss.
const columnHint = "Copy the column name exactly as it appears in the dataset columns list."

var opNames = func() []string {
	names := make([]string, len(stats.Ops))
	for i, op := range stats.Ops {
		names[i] = string(op)
	}
	return names
}()

// Registry returns the fixed, ordered catalog of tool descriptors.
func Registry() []Descriptor {
	return []Descriptor{
		{
			Kind: KindColumnStats,
			Name: string(KindColumnStats),
			Description: "Compute descriptive statistics (count, mean, median, standard deviation, min, max) " +
				"for a numeric column. " + columnHint,
			Params: []Param{
				{Name: "column", Type: "string", Required: true,
					Description: "Column to analyze. " + columnHint},
			},
		},
		{
			Kind: KindValueCounts,
			Name: string(KindValueCounts),
			Description: "Count occurrences of each distinct value in a column and return the most " +
				"frequent ones. Use for categorical columns. " + columnHint,
			Params: []Param{
				{Name: "column", Type: "string", Required: true,
					Description: "Column to count values in. " + columnHint},
				{Name: "top_n", Type: "number", Default: DefaultTopN,
					Description: "How many of the most frequent values to return."},
			},
		},
		{
			Kind: KindCorrelation,
			Name: string(KindCorrelation),
			Description: "Compute the Pearson correlation coefficient between two numeric columns. " +
				"Requires at least 2 rows where both columns are numeric. " + columnHint,
			Params: []Param{
				{Name: "column1", Type: "string", Required: true,
					Description: "First column. " + columnHint},
				{Name: "column2", Type: "string", Required: true,
					Description: "Second column. " + columnHint},
			},
		},
		{
			Kind: KindFilterAggregate,
			Name: string(KindFilterAggregate),
			Description: "Filter rows where a column contains a value (case-insensitive substring match), " +
				"then aggregate a numeric column over the surviving rows. " + columnHint,
			Params: []Param{
				{Name: "target_column", Type: "string", Required: true,
					Description: "Numeric column to aggregate. " + columnHint},
				{Name: "filter_column", Type: "string", Required: true,
					Description: "Column to filter on. " + columnHint},
				{Name: "filter_value", Type: "string", Required: true,
					Description: "Substring to match, case-insensitively, against the filter column."},
				{Name: "operation", Type: "string", Enum: opNames, Default: string(stats.OpMean),
					Description: "Aggregation to apply to the target column."},
			},
		},
		{
			Kind: KindTopRows,
			Name: string(KindTopRows),
			Description: "Sort rows by a column (numeric when possible, lexicographic otherwise) and " +
				"return the first n. " + columnHint,
			Params: []Param{
				{Name: "sort_column", Type: "string", Required: true,
					Description: "Column to sort by. " + columnHint},
				{Name: "n", Type: "number", Default: DefaultTopN,
					Description: "How many rows to return."},
				{Name: "ascending", Type: "boolean", Default: false,
					Description: "Sort ascending instead of descending."},
			},
		},
		{
			Kind: KindKeywordEngagement,
			Name: string(KindKeywordEngagement),
			Description: "For each keyword, compare the mean of a metric column between rows whose text " +
				"column contains the keyword and rows that do not. Text and metric columns are " +
				"auto-detected when omitted. " + columnHint,
			Params: []Param{
				{Name: "keywords", Type: "string[]", Required: true,
					Description: "Keywords to compare, matched case-insensitively as substrings."},
				{Name: "text_column", Type: "string",
					Description: "Text column to search. Auto-detected when omitted. " + columnHint},
				{Name: "metric_column", Type: "string",
					Description: "Numeric engagement column to average. Auto-detected when omitted. " + columnHint},
			},
		},
	}
}
