package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
	"github.com/google/go-cmp/cmp"
	"github.com/mrjoshuak/followdiff/types"
)

// domShim is the subset of the browser DOM the embedded script touches,
// built over a plain element tree.
const domShim = `
function makeElement(tag) {
  var el = {
    tagName: String(tag).toUpperCase(),
    id: '',
    className: '',
    textContent: '',
    value: '',
    style: { display: '' },
    children: [],
    parentNode: null,
    listeners: {},
    appendChild: function(child) {
      child.parentNode = el;
      el.children.push(child);
      return child;
    },
    remove: function() {
      if (el.parentNode) {
        var siblings = el.parentNode.children;
        siblings.splice(siblings.indexOf(el), 1);
        el.parentNode = null;
      }
    },
    addEventListener: function(type, fn) {
      (el.listeners[type] = el.listeners[type] || []).push(fn);
    },
    dispatch: function(type) {
      (el.listeners[type] || []).forEach(function(fn) {
        fn.call(el, { type: type, target: el });
      });
    },
    querySelector: function(selector) {
      return find(el, selector)[0] || null;
    }
  };
  return el;
}

function matches(el, selector) {
  if (selector.charAt(0) === '#') {
    return el.id === selector.slice(1);
  }
  return el.className.split(' ').indexOf(selector.slice(1)) !== -1;
}

function find(root, selector) {
  var out = [];
  root.children.forEach(function(child) {
    if (matches(child, selector)) {
      out.push(child);
    }
    out.push.apply(out, find(child, selector));
  });
  return out;
}

function build(node) {
  var el = makeElement(node.tag);
  el.id = node.id;
  el.className = node.class;
  el.textContent = node.text;
  node.children.forEach(function(child) {
    el.appendChild(build(child));
  });
  return el;
}

var body = makeElement('body');
var document = {
  createElement: makeElement,
  getElementById: function(id) { return find(body, '#' + id)[0] || null; },
  querySelectorAll: function(selector) { return find(body, selector); }
};
`

type domNode struct {
	Tag      string     `json:"tag"`
	ID       string     `json:"id"`
	Class    string     `json:"class"`
	Text     string     `json:"text"`
	Children []*domNode `json:"children"`
}

func snapshot(s *goquery.Selection) *domNode {
	n := &domNode{Tag: goquery.NodeName(s), Text: s.Text(), Children: []*domNode{}}
	n.ID, _ = s.Attr("id")
	n.Class, _ = s.Attr("class")
	s.Children().Each(func(_ int, c *goquery.Selection) {
		n.Children = append(n.Children, snapshot(c))
	})
	return n
}

// scriptPage is a rendered report with its embedded script running against
// domShim.
type scriptPage struct {
	t  *testing.T
	vm *goja.Runtime
}

func loadPage(t *testing.T, users types.UsernameMap) *scriptPage {
	t.Helper()
	out, err := RenderString(users, WithGeneratedAt(time.Time{}))
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("rendered report does not parse: %v", err)
	}
	tree, err := json.Marshal(snapshot(doc.Find("body")))
	if err != nil {
		t.Fatal(err)
	}

	p := &scriptPage{t: t, vm: goja.New()}
	p.run(domShim)
	p.run("body = build(" + string(tree) + ");")
	p.run(doc.Find("script").Text())
	return p
}

func (p *scriptPage) run(src string) goja.Value {
	p.t.Helper()
	v, err := p.vm.RunString(src)
	if err != nil {
		p.t.Fatalf("script error: %v", err)
	}
	return v
}

func (p *scriptPage) typeQuery(query string) {
	p.t.Helper()
	if err := p.vm.Set("query", query); err != nil {
		p.t.Fatal(err)
	}
	p.run(`var input = document.getElementById('searchInput'); input.value = query; input.dispatch('input');`)
}

func (p *scriptPage) clickClear() {
	p.t.Helper()
	p.run(`document.getElementById('clearSearch').dispatch('click');`)
}

func (p *scriptPage) visible() []string {
	p.t.Helper()
	v := p.run(`document.querySelectorAll('.user-item')
  .filter(function(item) { return item.style.display !== 'none'; })
  .map(function(item) { return item.querySelector('.user-name').textContent; })
  .join('\n')`)
	if v.String() == "" {
		return nil
	}
	return strings.Split(v.String(), "\n")
}

func (p *scriptPage) noResults() (count int64, text string) {
	p.t.Helper()
	count = p.run(`document.querySelectorAll('#noResults').length`).ToInteger()
	if count > 0 {
		text = p.run(`document.getElementById('noResults').textContent`).String()
	}
	return count, text
}

func (p *scriptPage) searchValue() string {
	p.t.Helper()
	return p.run(`document.getElementById('searchInput').value`).String()
}

func TestEmbeddedScriptFilters(t *testing.T) {
	p := loadPage(t, types.UsernameMap{"a": "u/a", "b": "u/b", "c": "u/c"})
	all := []string{"a", "b", "c"}

	if diff := cmp.Diff(all, p.visible()); diff != "" {
		t.Fatalf("rows before searching (-want +got):\n%s", diff)
	}

	p.typeQuery("a")
	if diff := cmp.Diff([]string{"a"}, p.visible()); diff != "" {
		t.Errorf("rows for %q (-want +got):\n%s", "a", diff)
	}
	if n, _ := p.noResults(); n != 0 {
		t.Errorf("indicator shown while rows match")
	}

	p.typeQuery("C")
	if diff := cmp.Diff([]string{"c"}, p.visible()); diff != "" {
		t.Errorf("matching should ignore case (-want +got):\n%s", diff)
	}

	p.typeQuery("zzz")
	if got := p.visible(); len(got) != 0 {
		t.Errorf("rows for an unmatched query = %v, want none", got)
	}
	n, text := p.noResults()
	if n != 1 || text != noResultsLabel {
		t.Errorf("indicator = %d x %q, want one %q", n, text, noResultsLabel)
	}

	p.typeQuery("zzzz")
	if n, _ := p.noResults(); n != 1 {
		t.Errorf("repeated misses must keep a single indicator, got %d", n)
	}

	p.clickClear()
	if n, _ := p.noResults(); n != 0 {
		t.Errorf("clearing must remove the indicator, got %d", n)
	}
	if diff := cmp.Diff(all, p.visible()); diff != "" {
		t.Errorf("rows after clearing (-want +got):\n%s", diff)
	}
	if got := p.searchValue(); got != "" {
		t.Errorf("search box after clearing = %q, want empty", got)
	}
}

func TestEmbeddedScriptMatchesFilter(t *testing.T) {
	users := types.UsernameMap{
		"Alice.Wong": "u/1",
		"bob_99":     "u/2",
		"carol":      "u/3",
		"dave.b":     "u/4",
	}
	p := loadPage(t, users)
	f := NewFilter(Rows(users))

	for _, query := range []string{"", "a", "WONG", ".", "_9", "b", "nobody", ""} {
		p.typeQuery(query)
		f.SetQuery(query)

		if diff := cmp.Diff(names(f.Visible()), p.visible()); diff != "" {
			t.Errorf("query %q: script and Filter disagree (-filter +script):\n%s", query, diff)
		}
		n, text := p.noResults()
		if (n == 1) != f.NoResults() || text != f.NoResultsMessage() {
			t.Errorf("query %q: indicator %d x %q, Filter says %v %q", query, n, text, f.NoResults(), f.NoResultsMessage())
		}
	}
}
