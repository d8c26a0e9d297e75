// Package dom provides the small slice of DOM behavior the byline injector
// needs on top of golang.org/x/net/html: parsing rendered pages (full
// documents or fragments), scoping a search to the content region, locating
// the primary heading, inserting a sibling and rendering the tree back.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultContentRoots lists the elements treated as the article container,
// in priority order.
var DefaultContentRoots = []string{"article", "main"}

// Tree is a parsed page. Fragment trees hang their top-level nodes off a
// synthetic document node and render without an <html><body> wrapper.
// BOM records a leading U+FEFF byte order mark, written back on Render.
type Tree struct {
	Root     *html.Node
	Fragment bool
	BOM      bool
}

// byteOrderMark is the UTF-8 encoded U+FEFF.
const byteOrderMark = "\ufeff"

// Parse parses HTML content. Content whose first markup after an optional
// BOM, whitespace and comments is a doctype or an <html> tag is parsed as a
// full document; anything else is parsed as a body fragment.
func Parse(content string) (*Tree, error) {
	hasBOM := strings.HasPrefix(content, byteOrderMark)
	if hasBOM && IsDocument(content) {
		// The parser treats a BOM as text and would drop the doctype after it.
		content = strings.TrimPrefix(content, byteOrderMark)
	}

	if IsDocument(content) {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &Tree{Root: doc, BOM: hasBOM}, nil
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return &Tree{Root: container, Fragment: true}, nil
}

// IsDocument reports whether content is a full HTML document: the first
// token that is not a BOM, whitespace or a comment is a doctype or <html>.
func IsDocument(content string) bool {
	z := html.NewTokenizer(strings.NewReader(strings.TrimPrefix(content, byteOrderMark)))
	for {
		switch z.Next() {
		case html.CommentToken:
			continue
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) == "" {
				continue
			}
			return false
		case html.DoctypeToken:
			return true
		case html.StartTagToken:
			name, _ := z.TagName()
			return string(name) == "html"
		default:
			return false
		}
	}
}

// Render writes the tree to w.
func (t *Tree) Render(w io.Writer) error {
	if t.BOM && !t.Fragment {
		if _, err := io.WriteString(w, byteOrderMark); err != nil {
			return err
		}
	}
	if !t.Fragment {
		return html.Render(w, t.Root)
	}
	for c := t.Root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// String renders the tree to a string.
func (t *Tree) String() (string, error) {
	var buf strings.Builder
	if err := t.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContentRoot returns the first element whose tag is listed in names,
// trying each name in order. Falls back to root itself when nothing matches.
func ContentRoot(root *html.Node, names []string) *html.Node {
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if n := FindFirst(root, name); n != nil {
			return n
		}
	}
	return root
}

// FirstHeading returns the first <h1> under root in document order, or the
// first <h2> when root holds no <h1>. Returns nil when neither exists.
func FirstHeading(root *html.Node) *html.Node {
	if h := FindFirst(root, "h1"); h != nil {
		return h
	}
	return FindFirst(root, "h2")
}

// FindFirst performs a depth-first, document-order search for the first
// element named tag below root (root itself excluded).
func FindFirst(root *html.Node, tag string) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if n := FindFirst(c, tag); n != nil {
			return n
		}
	}
	return nil
}

// FindAll returns every element below root for which match returns true.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// NextElementSibling skips text and comment nodes following n.
func NextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// InsertAfter places n as the immediate next sibling of ref.
// ref must have a parent; n must be detached.
func InsertAfter(ref, n *html.Node) {
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// Attr returns the value of attribute key and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries class in its class attribute.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Element creates a detached element. attrs alternate key and value.
func Element(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Text creates a detached text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// TextContent concatenates all text below n.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
