package cascade

import (
	"fmt"
	"strings"

	"github.com/mrjoshuak/followdiff/types"
)

// Normalize strips a single leading "@" from a raw candidate. It reports
// false when nothing usable is left: an empty name or one that still starts
// with "@".
func Normalize(raw string) (string, bool) {
	name := strings.TrimPrefix(raw, "@")
	if name == "" || strings.HasPrefix(name, "@") {
		return "", false
	}
	return name, true
}

// aggregator builds a UsernameMap from raw candidates.
type aggregator struct {
	url   func(name string) string
	users types.UsernameMap
}

func newAggregator(format string) *aggregator {
	url := types.ProfileURL
	if format != "" && format != types.DefaultProfileURLFormat {
		url = func(name string) string { return fmt.Sprintf(format, name) }
	}
	return &aggregator{url: url, users: types.UsernameMap{}}
}

// add normalizes raw and records it, overwriting any previous entry.
func (a *aggregator) add(raw string) bool {
	name, ok := Normalize(raw)
	if !ok {
		return false
	}
	a.users[name] = a.url(name)
	return true
}

func (a *aggregator) addAll(raw []string) {
	for _, r := range raw {
		a.add(r)
	}
}

func (a *aggregator) result() types.UsernameMap {
	return a.users
}
