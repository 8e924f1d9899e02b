package tools

import "strings"

// Column auto-detection for compare_keyword_engagement. Scans the field
// catalog with a priority ladder: an exact case-insensitive name match
// first, then substring patterns, then a positional fallback of the
// first (text) and second (metric) catalog fields.

var (
	textExactNames   = []string{"text", "tweet_text", "full_text", "content"}
	textPatterns     = []string{"text", "content", "tweet", "post", "body"}
	metricExactNames = []string{"favorite_count", "favourite_count", "like_count", "likes"}
	metricPatterns   = []string{"favorite", "favourite", "like", "engagement", "retweet"}
)

func detectTextColumn(fields []string) string {
	if col := matchColumn(fields, textExactNames, textPatterns); col != "" {
		return col
	}
	if len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func detectMetricColumn(fields []string) string {
	if col := matchColumn(fields, metricExactNames, metricPatterns); col != "" {
		return col
	}
	if len(fields) > 1 {
		return fields[1]
	}
	return ""
}

func matchColumn(fields, exact, patterns []string) string {
	for _, want := range exact {
		for _, field := range fields {
			if strings.EqualFold(field, want) {
				return field
			}
		}
	}
	for _, pattern := range patterns {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), pattern) {
				return field
			}
		}
	}
	return ""
}
