// Package markup parses exported markup into a traversable element tree.
//
// Parsing is lenient in the same way a browser is: unbalanced or unknown
// tags only degrade the resulting structure. Callers interact with the tree
// through Document and Element so that extraction code never depends on the
// underlying parser types.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/mrjoshuak/followdiff/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is a parsed markup document.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

// Parse parses markup text into a Document.
// It fails with a parse error when the input is empty, is not valid UTF-8
// or carries NUL bytes, which is how binary uploads show up.
func Parse(text string) (*Document, error) {
	if len(text) == 0 {
		return nil, types.WrapParseError(types.ErrParse, "Parse", "empty input")
	}
	if !utf8.ValidString(text) {
		return nil, types.WrapParseError(types.ErrParse, "Parse", "input is not valid UTF-8 text")
	}
	if strings.IndexByte(text, 0) >= 0 {
		return nil, types.WrapParseError(types.ErrParse, "Parse", "input looks like binary data")
	}

	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, types.WrapParseError(fmt.Errorf("%w: %w", types.ErrParse, err), "Parse", "failed to parse markup")
	}

	return &Document{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

// ParseReader reads at most limit bytes from r, decodes them to UTF-8 using
// the charset declared or sniffed from the content, and parses the result.
// A limit of zero or less disables the limit.
func ParseReader(r io.Reader, limit int64) (*Document, error) {
	data, err := ReadText(r, limit)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ReadText reads markup from r and returns it as UTF-8 text.
// Read failures are reported as I/O errors.
func ReadText(r io.Reader, limit int64) (string, error) {
	if r == nil {
		return "", types.WrapIOError(errors.New("nil reader"), "ReadText", "no input supplied")
	}
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", types.WrapIOError(err, "ReadText", "failed to read input")
	}
	if limit > 0 && int64(len(raw)) > limit {
		return "", types.WrapIOError(types.ErrInputLarge, "ReadText", fmt.Sprintf("input exceeds %d bytes", limit))
	}
	if len(raw) == 0 || utf8.Valid(raw) || bytes.IndexByte(raw, 0) >= 0 {
		return string(raw), nil
	}

	decoded, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return string(raw), nil
	}
	text, err := io.ReadAll(decoded)
	if err != nil {
		return "", types.WrapIOError(err, "ReadText", "failed to decode input")
	}
	return string(text), nil
}

// Title returns the trimmed text of the <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Elements returns every element reachable from the root in document order.
func (d *Document) Elements() []*Element {
	var elements []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			elements = append(elements, &Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return elements
}

// Find returns the elements matching a CSS selector.
// An invalid selector matches nothing.
func (d *Document) Find(selector string) []*Element {
	return fromSelection(d.doc.Find(selector))
}

// XPath returns the elements matching an XPath expression.
func (d *Document) XPath(expr string) ([]*Element, error) {
	return queryXPath(d.root, expr)
}

// Text returns the text content of the body, or of the whole document if
// it has no body.
func (d *Document) Text() string {
	if body := htmlquery.FindOne(d.root, "//body"); body != nil {
		return htmlquery.InnerText(body)
	}
	return htmlquery.InnerText(d.root)
}

// Element is a single element of a parsed Document.
type Element struct {
	node *html.Node
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text of the element and its descendants.
func (e *Element) Text() string {
	return htmlquery.InnerText(e.node)
}

// Children returns the direct child elements.
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Element{node: c})
		}
	}
	return children
}

// XPath evaluates an XPath expression relative to the element.
func (e *Element) XPath(expr string) ([]*Element, error) {
	return queryXPath(e.node, expr)
}

func fromSelection(sel *goquery.Selection) []*Element {
	elements := make([]*Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		elements = append(elements, &Element{node: n})
	}
	return elements
}

func queryXPath(top *html.Node, expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(top, expr)
	if err != nil {
		return nil, types.WrapParseError(err, "XPath", fmt.Sprintf("invalid expression %q", expr))
	}
	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, &Element{node: n})
		}
	}
	return elements, nil
}
