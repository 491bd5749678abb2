package cascade

import (
	"strings"
	"unicode/utf8"

	"github.com/mrjoshuak/followdiff/internal/markup"
)

// SelectorPattern queries a fixed list of selectors known from past export
// formats. The first selector that yields a username surviving
// normalization wins.
//
// A matched element whose text is longer than MaxCandidateLength and that
// has child elements is treated as a container: its first child with
// username-shaped text is used instead.
type SelectorPattern struct {
	Selectors []string
}

// Name returns the strategy name.
func (SelectorPattern) Name() string { return SelectorPatternScan }

// Extract returns the candidates of the first productive selector.
func (s SelectorPattern) Extract(doc *markup.Document) ([]string, error) {
	for _, selector := range s.Selectors {
		matches := doc.Find(selector)
		if len(matches) == 0 {
			continue
		}

		var found []string
		for _, el := range matches {
			text := elementUsername(el)
			if !isCellCandidate(text) {
				continue
			}
			if _, ok := Normalize(text); ok {
				found = append(found, text)
			}
		}
		if len(found) > 0 {
			return found, nil
		}
	}
	return nil, nil
}

func elementUsername(el *markup.Element) string {
	text := strings.TrimSpace(el.Text())
	children := el.Children()
	if utf8.RuneCountInString(text) <= MaxCandidateLength || len(children) == 0 {
		return text
	}
	for _, child := range children {
		childText := strings.TrimSpace(child.Text())
		if isCellCandidate(childText) {
			return childText
		}
	}
	return text
}
