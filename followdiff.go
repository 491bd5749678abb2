package followdiff

import (
	"context"
	"io"
	"log/slog"

	"github.com/mrjoshuak/followdiff/internal/cascade"
	"github.com/mrjoshuak/followdiff/internal/markup"
	"github.com/mrjoshuak/followdiff/types"
	"golang.org/x/sync/errgroup"
)

// Extractor defines the interface for username extraction.
// Each call returns a fresh map owned by the caller.
type Extractor interface {
	// Extract extracts usernames from an export's markup
	Extract(markup string) (UsernameMap, error)

	// ExtractFromReader extracts usernames from an io.Reader
	ExtractFromReader(r io.Reader) (UsernameMap, error)

	// Compare extracts both exports concurrently and diffs them
	Compare(ctx context.Context, following, followers io.Reader) (*Result, error)
}

// Result is the outcome of comparing a following export with a followers
// export.
type Result struct {
	Following   UsernameMap
	Followers   UsernameMap
	Unfollowers UsernameMap
}

// Option represents a function that modifies ExtractionOptions.
// This follows the functional options pattern for configuring the extractor.
type Option func(*ExtractionOptions)

// WithLogger sets the logger that receives extraction diagnostics.
// By default diagnostics are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *ExtractionOptions) {
		o.Logger = logger
	}
}

// WithProfileURLFormat sets the fmt template used to derive a profile URL
// from a username. It must contain exactly one %s verb.
func WithProfileURLFormat(format string) Option {
	return func(o *ExtractionOptions) {
		o.ProfileURLFormat = format
	}
}

// WithMaxInputSize limits how many bytes ExtractFromReader and Compare read
// from each input. Zero disables the limit.
func WithMaxInputSize(size int64) Option {
	return func(o *ExtractionOptions) {
		o.MaxInputSize = size
	}
}

// usernameExtractor is the concrete implementation of the Extractor interface.
type usernameExtractor struct {
	options ExtractionOptions
	cascade *cascade.Cascade
}

// New creates a new Extractor instance with the provided options.
//
// Example:
//
//	ext := followdiff.New(
//	    followdiff.WithLogger(slog.Default()),
//	)
func New(opts ...Option) Extractor {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = types.DefaultOptions().Logger
	}

	return &usernameExtractor{
		options: options,
		cascade: cascade.New(
			cascade.WithProfileURLFormat(options.ProfileURLFormat),
			cascade.WithLogger(options.Logger),
		),
	}
}

// Extract runs the extraction cascade over markup. It returns either a
// non-empty map or an error, never both.
func (e *usernameExtractor) Extract(text string) (UsernameMap, error) {
	outcome, err := e.cascade.Extract(text)
	if err != nil {
		return nil, err
	}
	return outcome.Users, nil
}

// ExtractFromReader reads and parses the entire content of the reader and
// runs the extraction cascade over it. Read failures are reported as I/O
// errors.
func (e *usernameExtractor) ExtractFromReader(r io.Reader) (UsernameMap, error) {
	doc, err := markup.ParseReader(r, e.options.MaxInputSize)
	if err != nil {
		return nil, err
	}
	outcome, err := e.cascade.Run(doc)
	if err != nil {
		return nil, err
	}
	return outcome.Users, nil
}

// Compare reads and extracts the two exports in parallel, waits for both,
// and returns the accounts in following that are absent from followers.
// The first failure is returned tagged with the role of the export at fault.
func (e *usernameExtractor) Compare(ctx context.Context, following, followers io.Reader) (*Result, error) {
	var result Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := e.extractRole(gctx, following, RoleFollowing)
		result.Following = users
		return err
	})
	g.Go(func() error {
		users, err := e.extractRole(gctx, followers, RoleFollowers)
		result.Followers = users
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.options.Logger.Info("username counts",
		"following", len(result.Following),
		"followers", len(result.Followers))

	result.Unfollowers = Diff(result.Following, result.Followers)
	e.options.Logger.Info("unfollowers found", "count", len(result.Unfollowers))
	return &result, nil
}

func (e *usernameExtractor) extractRole(ctx context.Context, r io.Reader, role Role) (UsernameMap, error) {
	logger := e.options.Logger.With("role", role.String())

	text, err := markup.ReadText(r, e.options.MaxInputSize)
	if err != nil {
		return nil, types.WithRole(err, role)
	}
	if err := ctx.Err(); err != nil {
		return nil, types.WithRole(types.WrapIOError(err, "Compare", "comparison abandoned"), role)
	}

	logger.Debug("extracting usernames", "bytes", len(text), "sample", markup.Sample(text, 200))
	users, err := e.Extract(text)
	if err != nil {
		logger.Warn("extraction failed", "error", err)
		return nil, types.WithRole(err, role)
	}
	return users, nil
}
