package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mrjoshuak/followdiff/types"
)

func names(rows []Row) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.Username)
	}
	return out
}

func TestFilter(t *testing.T) {
	rows := Rows(types.UsernameMap{
		"a":          types.ProfileURL("a"),
		"c":          types.ProfileURL("c"),
		"Alice.Wong": types.ProfileURL("Alice.Wong"),
	})

	tests := []struct {
		name          string
		query         string
		wantVisible   []string
		wantNoResults bool
	}{
		{name: "empty query shows everything", query: "", wantVisible: []string{"Alice.Wong", "a", "c"}},
		{name: "substring match", query: "a", wantVisible: []string{"Alice.Wong", "a"}},
		{name: "case insensitive", query: "WONG", wantVisible: []string{"Alice.Wong"}},
		{name: "single row", query: "c", wantVisible: []string{"Alice.Wong", "c"}},
		{name: "no match", query: "zzz", wantNoResults: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(rows)
			f.SetQuery(tt.query)
			if diff := cmp.Diff(tt.wantVisible, names(f.Visible())); diff != "" {
				t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
			}
			if f.NoResults() != tt.wantNoResults {
				t.Errorf("NoResults() = %v, want %v", f.NoResults(), tt.wantNoResults)
			}
		})
	}
}

func TestFilterNoResultsLifecycle(t *testing.T) {
	f := NewFilter(Rows(types.UsernameMap{"a": "u/a", "c": "u/c"}))

	f.SetQuery("x")
	f.SetQuery("xy")
	if !f.NoResults() || f.NoResultsMessage() != noResultsLabel {
		t.Fatalf("expected the no results indicator, got %v %q", f.NoResults(), f.NoResultsMessage())
	}
	if len(f.Visible()) != 0 {
		t.Errorf("no rows should be visible")
	}

	f.Clear()
	if f.NoResults() || f.NoResultsMessage() != "" {
		t.Errorf("clearing the query should remove the indicator")
	}
	if f.Query() != "" {
		t.Errorf("Query() = %q after Clear", f.Query())
	}
	if diff := cmp.Diff([]string{"a", "c"}, names(f.Visible())); diff != "" {
		t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
	}

	f.SetQuery("zz")
	f.SetQuery("a")
	if f.NoResults() {
		t.Errorf("the indicator must go away as soon as something matches")
	}
}

func TestFilterWithoutRows(t *testing.T) {
	f := NewFilter(nil)
	if f.NoResults() {
		t.Errorf("an empty query never shows the indicator")
	}
	f.SetQuery("a")
	if !f.NoResults() {
		t.Errorf("a non-empty query over no rows shows the indicator")
	}
}
