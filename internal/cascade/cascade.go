// Package cascade extracts usernames from exported markup by trying a fixed
// list of heuristics in priority order until one of them finds something.
//
// The built-in order is structural, tabular, selector-pattern and free-text.
// Each strategy sees the same read-only document and returns its own fresh
// candidates; only the first productive strategy's output is kept.
package cascade

import (
	"io"
	"log/slog"

	"github.com/mrjoshuak/followdiff/internal/markup"
	"github.com/mrjoshuak/followdiff/types"
)

// Cascade runs extraction strategies in order.
type Cascade struct {
	strategies []Strategy
	format     string
	logger     *slog.Logger
}

// Option configures a Cascade.
type Option func(*Cascade)

// WithStrategies replaces the built-in strategy list.
func WithStrategies(strategies ...Strategy) Option {
	return func(c *Cascade) { c.strategies = strategies }
}

// WithProfileURLFormat sets the template used to build profile URLs.
func WithProfileURLFormat(format string) Option {
	return func(c *Cascade) { c.format = format }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cascade) { c.logger = logger }
}

// New creates a Cascade with the built-in strategies.
func New(opts ...Option) *Cascade {
	c := &Cascade{
		strategies: DefaultStrategies(),
		format:     types.DefaultProfileURLFormat,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Outcome describes a successful extraction.
type Outcome struct {
	Users    types.UsernameMap
	Strategy string
}

// Extract parses markup and runs the cascade over it.
func (c *Cascade) Extract(text string) (*Outcome, error) {
	doc, err := markup.Parse(text)
	if err != nil {
		return nil, err
	}

	outcome, err := c.Run(doc)
	if err != nil {
		if types.IsEmptyResultError(err) {
			c.logger.Debug("markup sample for debugging", "sample", markup.Sample(text, 1000))
		}
		return nil, err
	}
	return outcome, nil
}

// Run tries each strategy in order and returns the usernames of the first
// one that yields at least one. It fails with an empty-result error when
// every strategy comes up empty.
func (c *Cascade) Run(doc *markup.Document) (*Outcome, error) {
	c.logger.Debug("document parsed", "title", doc.Title())

	for _, strategy := range c.strategies {
		raw, err := strategy.Extract(doc)
		if err != nil {
			return nil, types.WrapExtractionError(err, "Run", "strategy "+strategy.Name()+" failed")
		}

		agg := newAggregator(c.format)
		agg.addAll(raw)
		users := agg.result()

		c.logger.Debug("strategy finished", "strategy", strategy.Name(), "candidates", len(raw), "usernames", len(users))
		if len(users) == 0 {
			continue
		}

		c.logger.Info("usernames extracted", "strategy", strategy.Name(), "count", len(users), "sample", sample(users, 5))
		return &Outcome{Users: users, Strategy: strategy.Name()}, nil
	}

	c.logger.Debug("no strategy matched", describe(doc)...)
	return nil, types.WrapExtractionError(types.ErrEmptyResult, "Run",
		"no Instagram usernames found, check that the file is an Instagram export")
}

// describe summarizes a document nothing was found in: its element and
// table row counts and the first few distinct class names, which is usually
// enough to tell which selector a new export format needs.
func describe(doc *markup.Document) []any {
	var elements, rows int
	var classes []string
	seen := map[string]bool{}
	for _, el := range doc.Elements() {
		elements++
		if el.Tag() == "tr" {
			rows++
		}
		class, ok := el.Attr("class")
		if ok && class != "" && !seen[class] && len(classes) < 10 {
			seen[class] = true
			classes = append(classes, class)
		}
	}
	return []any{"elements", elements, "rows", rows, "classes", classes}
}

func sample(users types.UsernameMap, n int) []string {
	names := users.Usernames()
	if len(names) > n {
		names = names[:n]
	}
	return names
}
