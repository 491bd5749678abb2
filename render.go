package followdiff

import (
	"io"

	"github.com/mrjoshuak/followdiff/internal/report"
)

// ReportOption configures a rendered report.
type ReportOption = report.Option

// Report options.
var (
	WithReportTitle = report.WithTitle
	WithGeneratedAt = report.WithGeneratedAt
	WithCountLocale = report.WithLanguage
)

// Render returns a self-contained HTML report listing unfollowers, with a
// count of entries and a search box that filters rows by username.
func Render(unfollowers UsernameMap, opts ...ReportOption) (string, error) {
	return report.RenderString(unfollowers, opts...)
}

// RenderTo writes the report to w.
func RenderTo(w io.Writer, unfollowers UsernameMap, opts ...ReportOption) error {
	return report.Render(w, unfollowers, opts...)
}
