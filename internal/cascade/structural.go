package cascade

import (
	"strings"

	"github.com/mrjoshuak/followdiff/internal/markup"
)

// Structural accepts the text of any element whose whole trimmed text
// content is username-shaped. It ignores tag identity entirely, which
// catches exports that put each handle into its own leaf element.
type Structural struct{}

// Name returns the strategy name.
func (Structural) Name() string { return StructuralScan }

// Extract returns the candidate texts in document order.
func (Structural) Extract(doc *markup.Document) ([]string, error) {
	var found []string
	for _, el := range doc.Elements() {
		text := strings.TrimSpace(el.Text())
		if IsCandidate(text) {
			found = append(found, text)
		}
	}
	return found, nil
}
