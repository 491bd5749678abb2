// Package report renders an unfollowers map as a single self-contained,
// searchable HTML document, and reads such documents back.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrjoshuak/followdiff/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTitle is the heading of a rendered report.
const DefaultTitle = "Instagram Unfollowers"

var page = template.Must(template.New("report").Parse(pageTemplate))

// Options configures rendering.
type Options struct {
	Title       string
	GeneratedAt time.Time
	Language    language.Tag
}

// Option modifies Options.
type Option func(*Options)

// WithTitle sets the document title and heading.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithGeneratedAt sets the timestamp printed in the header. A zero time
// omits the line, which keeps the output byte-for-byte reproducible.
func WithGeneratedAt(t time.Time) Option {
	return func(o *Options) { o.GeneratedAt = t }
}

// WithLanguage sets the language used to format the entry count.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.Language = tag }
}

// Row is one rendered entry.
type Row struct {
	Username string
	URL      string
}

type pageData struct {
	Title       string
	Count       int
	CountLabel  string
	GeneratedOn string
	Generator   string
	Rows        []Row
}

// Render writes the report for users to w. Rows are ordered by username.
func Render(w io.Writer, users types.UsernameMap, opts ...Option) error {
	o := Options{
		Title:       DefaultTitle,
		GeneratedAt: time.Now(),
		Language:    language.English,
	}
	for _, opt := range opts {
		opt(&o)
	}

	data := pageData{
		Title:      o.Title,
		Count:      len(users),
		CountLabel: message.NewPrinter(o.Language).Sprintf("%d", len(users)),
		Generator:  fmt.Sprintf("%s %s", types.Name, types.Version),
		Rows:       Rows(users),
	}
	if !o.GeneratedAt.IsZero() {
		data.GeneratedOn = o.GeneratedAt.Format("January 2, 2006")
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// RenderString renders the report into a string.
func RenderString(users types.UsernameMap, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Render(&b, users, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Rows returns the display rows for users, ordered by username.
func Rows(users types.UsernameMap) []Row {
	rows := make([]Row, 0, len(users))
	for _, name := range users.Usernames() {
		rows = append(rows, Row{Username: name, URL: users[name]})
	}
	return rows
}

// Parse reads the rows of a previously rendered report.
func Parse(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, types.WrapParseError(err, "report.Parse", "failed to parse report")
	}
	list := doc.Find("#" + userListID)
	if list.Length() == 0 {
		return nil, types.WrapParseError(types.ErrParse, "report.Parse", "document is not an unfollowers report")
	}

	var rows []Row
	list.Find("." + rowClass).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Find("a").Attr("href")
		rows = append(rows, Row{
			Username: strings.TrimSpace(s.Find("." + nameClass).Text()),
			URL:      href,
		})
	})
	return rows, nil
}
