package dataset

import "strings"

// Resolve maps a requested column name to the actual field name in the
// catalog. Exact matches win immediately. Otherwise both sides are
// normalized (lowercased, with spaces, underscores, and hyphens
// removed) and the first catalog entry with an equal normalized form is
// returned, so an agent asking for "favorite_count" still reaches a
// "Favorite Count" header.
//
// Lenient fallback policy: a name that matches nothing, even after
// normalization, is returned unchanged. The miss then surfaces one
// layer up as a column-not-found error that lists the real columns,
// which gives the calling agent enough to retry with a corrected name.
func (d *Dataset) Resolve(name string) string {
	if name == "" || len(d.Fields) == 0 {
		return name
	}
	for _, field := range d.Fields {
		if field == name {
			return field
		}
	}
	want := normalizeName(name)
	for _, field := range d.Fields {
		if normalizeName(field) == want {
			return field
		}
	}
	return name
}

var nameStripper = strings.NewReplacer(" ", "", "_", "", "-", "")

func normalizeName(s string) string {
	return nameStripper.Replace(strings.ToLower(s))
}
