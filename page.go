package byline

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/alnah/go-byline/internal/dom"
)

// Page is one load of a rendered document. It stands in for the browser
// document: handlers registered with OnReady run, in registration order,
// every time Ready is called. Hosts normally call Ready once, but may call
// it again; handlers that must run once guard themselves (see Task).
//
// A Page is not safe for concurrent use.
type Page struct {
	tree     *dom.Tree
	origin   string
	handlers []func()
	fired    int
}

// LoadPage parses htmlContent into a Page. origin is the document origin
// (scheme and host, e.g. "https://example.org"); it may be empty when only
// relative paths are used.
func LoadPage(htmlContent, origin string) (*Page, error) {
	tree, err := dom.Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return &Page{tree: tree, origin: origin}, nil
}

// Origin returns the document origin the page was loaded with.
func (p *Page) Origin() string {
	return p.origin
}

// Document returns the root node of the parsed page.
func (p *Page) Document() *html.Node {
	return p.tree.Root
}

// OnReady registers fn to run when the page becomes ready.
func (p *Page) OnReady(fn func()) {
	p.handlers = append(p.handlers, fn)
}

// Ready dispatches the readiness event to all registered handlers.
func (p *Page) Ready() {
	p.fired++
	for _, fn := range p.handlers {
		fn()
	}
}

// ReadyCount reports how many times Ready has been called.
func (p *Page) ReadyCount() int {
	return p.fired
}

// Render writes the page back out. Fragments stay fragments.
func (p *Page) Render(w io.Writer) error {
	if err := p.tree.Render(w); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return nil
}

// HTML renders the page to a string.
func (p *Page) HTML() (string, error) {
	s, err := p.tree.String()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return s, nil
}
