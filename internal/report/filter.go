package report

import "strings"

// Filter models the search box embedded in a rendered report: each row is
// visible iff its lower-cased username contains the lower-cased query, and
// a single "no results" indicator replaces the rows when a non-empty query
// matches nothing.
type Filter struct {
	rows      []Row
	query     string
	visible   []Row
	noResults bool
}

// NewFilter returns a filter over rows with an empty query.
func NewFilter(rows []Row) *Filter {
	f := &Filter{rows: rows}
	f.SetQuery("")
	return f
}

// SetQuery applies a new query, as typing into the search box does.
func (f *Filter) SetQuery(query string) {
	f.query = strings.ToLower(query)
	f.visible = f.visible[:0]
	for _, row := range f.rows {
		if strings.Contains(strings.ToLower(row.Username), f.query) {
			f.visible = append(f.visible, row)
		}
	}
	f.noResults = len(f.visible) == 0 && f.query != ""
}

// Clear empties the query and shows every row again.
func (f *Filter) Clear() {
	f.SetQuery("")
}

// Query returns the current, lower-cased query.
func (f *Filter) Query() string { return f.query }

// Visible returns the rows currently shown.
func (f *Filter) Visible() []Row {
	return append([]Row(nil), f.visible...)
}

// NoResults reports whether the "no results" indicator is shown.
func (f *Filter) NoResults() bool { return f.noResults }

// NoResultsMessage is the text of the indicator.
func (f *Filter) NoResultsMessage() string {
	if !f.noResults {
		return ""
	}
	return noResultsLabel
}
