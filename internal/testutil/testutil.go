// Package testutil provides shared test infrastructure: a silent
// logger and small CSV fixtures used across package tests.
package testutil

import (
	"io"
	"log/slog"
)

// TestLogger returns a logger that discards all output. Tests assert
// on behavior, not log text.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TweetsCSV is a small mixed-type fixture: a text column, a numeric
// metric column, and a categorical column.
const TweetsCSV = `Tweet Text,Favorite Count,Category
"just finished mogmaxxing at the gym",12,fitness
"Mog appreciation post",30,culture
"quiet tuesday thoughts",3,misc
"the gym was packed today",7,fitness
"Mog Mog Mog",30,culture
`
