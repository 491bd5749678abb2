package cascade

import (
	"strings"

	"github.com/mrjoshuak/followdiff/internal/markup"
)

// Tabular takes one username per table row: the first of the row's
// leading cells whose text passes the relaxed shape check.
type Tabular struct{}

// Name returns the strategy name.
func (Tabular) Name() string { return TabularScan }

// Extract returns at most one candidate per row, in document order.
func (Tabular) Extract(doc *markup.Document) ([]string, error) {
	rows, err := doc.XPath("//tr")
	if err != nil {
		return nil, err
	}

	var found []string
	for _, row := range rows {
		cells, err := row.XPath(".//td")
		if err != nil {
			return nil, err
		}
		if len(cells) > maxRowCells {
			cells = cells[:maxRowCells]
		}
		for _, cell := range cells {
			text := strings.TrimSpace(cell.Text())
			if isCellCandidate(text) {
				found = append(found, text)
				break
			}
		}
	}
	return found, nil
}
