package cascade

import (
	"github.com/mrjoshuak/followdiff/internal/markup"
)

// FreeText scans the document's text for handle-shaped tokens. It is the
// last resort and knows nothing about the markup structure.
type FreeText struct{}

// Name returns the strategy name.
func (FreeText) Name() string { return FreeTextScan }

// Extract returns the non-stopword tokens in the order they appear.
func (FreeText) Extract(doc *markup.Document) ([]string, error) {
	return scanTokens(doc.Text()), nil
}

func scanTokens(text string) []string {
	var found []string
	for _, m := range usernameTokenRegex.FindAllStringSubmatch(text, -1) {
		if !IsStopword(m[1]) {
			found = append(found, m[1])
		}
	}
	return found
}
