package cascade

import (
	"github.com/mrjoshuak/followdiff/internal/markup"
)

// Strategy is a single extraction heuristic. Extract returns the raw
// candidates it accepted, which may be empty; an error is only returned
// when the document could not be inspected at all.
type Strategy interface {
	Name() string
	Extract(doc *markup.Document) ([]string, error)
}

// DefaultStrategies returns the four built-in strategies in priority order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		Structural{},
		Tabular{},
		SelectorPattern{Selectors: KnownSelectors()},
		FreeText{},
	}
}
