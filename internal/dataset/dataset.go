// Package dataset parses raw CSV text into an in-memory record set and
// resolves approximate column references against the field catalog.
//
// The parser is deliberately not a full RFC 4180 implementation: blank
// lines are dropped wherever they occur (including inside quoted
// multi-line fields) and doubled quotes inside a quoted field are not
// unescaped.
package dataset

import (
	"strings"

	"github.com/google/uuid"
)

// Record is one parsed data row, keyed by field name. Every record
// carries the full field catalog as its key set; short rows are padded
// with empty strings for the missing trailing fields.
type Record map[string]string

// Dataset is an in-memory table: the ordered field catalog from the
// header row plus one Record per data row. A Dataset is read-only after
// Parse and is replaced wholesale when a new CSV is loaded, never
// mutated in place, so concurrent tool calls over it are safe.
type Dataset struct {
	ID      uuid.UUID
	Fields  []string
	Records []Record
}

// Parse splits raw CSV text into a Dataset. The first non-blank line is
// the header; each following non-blank line becomes one Record. Fewer
// than two surviving lines yields an empty catalog and no records —
// that is not an error here, the caller decides whether an empty
// dataset is acceptable.
func Parse(raw string) *Dataset {
	ds := &Dataset{ID: uuid.New()}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return ds
	}

	ds.Fields = splitFields(lines[0])
	ds.Records = make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)
		rec := make(Record, len(ds.Fields))
		for i, field := range ds.Fields {
			if i < len(values) {
				rec[field] = values[i]
			} else {
				rec[field] = ""
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}

// splitFields walks the line character by character, toggling quote
// state on each '"' and splitting on ',' only outside quotes. Quote
// characters are not escapable; a literal '"' inside a quoted field is
// unsupported.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

// cleanField strips surrounding whitespace and double quotes.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}
