package byline

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/net/html"

	"github.com/alnah/go-byline/internal/dom"
)

// bylineMarker is the attribute identifying an inserted byline block.
const bylineMarker = "data-byline"

// bylineClass is the class on the byline container. A <div> carrying it
// counts as a byline even without the marker, e.g. one written by hand.
const bylineClass = "byline"

// labelPrefix precedes the author name in the label.
const labelPrefix = "By "

// Injector inserts an author byline after the primary heading of a page.
// It is immutable after New and safe for concurrent use across pages.
type Injector struct {
	settings Settings
	logger   *slog.Logger
}

// New creates an Injector from DefaultSettings and the given options.
// Returns error if the resulting settings are invalid.
func New(opts ...Option) (*Injector, error) {
	i := &Injector{settings: DefaultSettings()}

	for _, opt := range opts {
		opt(i)
	}

	if err := i.settings.Validate(); err != nil {
		return nil, err
	}

	// Detach from caller-owned slice
	if len(i.settings.ContentRoots) > 0 {
		i.settings.ContentRoots = append([]string(nil), i.settings.ContentRoots...)
	}
	if i.logger == nil {
		i.logger = slog.New(slog.DiscardHandler)
	}

	return i, nil
}

// Settings returns a copy of the injector settings.
func (i *Injector) Settings() Settings {
	s := i.settings
	s.ContentRoots = append([]string(nil), i.settings.ContentRoots...)
	return s
}

// Schedule registers a single-shot injection task on the page's ready
// dispatch and returns it so callers can inspect the outcome.
func (i *Injector) Schedule(p *Page) *Task {
	t := &Task{injector: i, page: p}
	p.OnReady(t.Run)
	return t
}

// State is the lifecycle of a Task.
type State int32

const (
	StatePending State = iota
	StateDone
)

// String returns a lower-case name for the state.
func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "pending"
}

// Outcome records what a Task did when it ran.
type Outcome int

const (
	OutcomeNone           Outcome = iota // not run yet
	OutcomeInserted                      // byline inserted after the heading
	OutcomeNoHeading                     // no h1/h2 in the content root
	OutcomeAlreadyPresent                // heading already followed by a byline
	OutcomeFailed                        // contained failure, see Task.Err
)

// String returns a short human-readable description.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeInserted:
		return "inserted"
	case OutcomeNoHeading:
		return "no heading"
	case OutcomeAlreadyPresent:
		return "already present"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Task is one scheduled injection for one page load. It moves from
// StatePending to StateDone on its first Run; later runs do nothing.
type Task struct {
	injector *Injector
	page     *Page
	state    atomic.Int32
	outcome  Outcome
	err      error
}

// Run performs the injection once. It never panics and never returns an
// error: failures are recorded on the task and the page is left as it was.
func (t *Task) Run() {
	if !t.state.CompareAndSwap(int32(StatePending), int32(StateDone)) {
		return
	}

	t.outcome, t.err = t.injector.inject(t.page)
	if t.err != nil {
		t.injector.logger.Debug("byline not inserted", "outcome", t.outcome.String(), "error", t.err)
	}
}

// State returns the current lifecycle state.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Outcome returns what the task did; OutcomeNone before it has run.
func (t *Task) Outcome() Outcome {
	return t.outcome
}

// Err returns the contained failure when Outcome is OutcomeFailed.
func (t *Task) Err() error {
	return t.err
}

// inject runs locate -> resolve -> construct -> insert without yielding.
func (i *Injector) inject(p *Page) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomeFailed
			err = fmt.Errorf("%w: %v", ErrInjectionPanic, r)
		}
	}()

	root := dom.ContentRoot(p.Document(), i.settings.contentRoots())
	heading := dom.FirstHeading(root)
	if heading == nil {
		return OutcomeNoHeading, nil
	}

	if next := dom.NextElementSibling(heading); next != nil && isByline(next) {
		return OutcomeAlreadyPresent, nil
	}

	src, err := ResolveImagePath(i.settings, p.Origin())
	if err != nil {
		return OutcomeFailed, err
	}

	dom.InsertAfter(heading, i.buildByline(src))
	return OutcomeInserted, nil
}

// buildByline constructs the detached byline block:
//
//	<div class="byline" data-byline="" style="display:flex;...">
//	  <img class="byline-avatar" src="..." ...>
//	  <span class="byline-label" style="...">By Name</span>
//	</div>
func (i *Injector) buildByline(src string) *html.Node {
	s := i.settings
	author := strings.TrimSpace(s.Author)
	size := strconv.Itoa(s.IconSize)

	box := dom.Element("div",
		"class", bylineClass,
		bylineMarker, "",
		"style", fmt.Sprintf("display:flex;align-items:center;gap:%dpx;", s.Gap),
	)

	img := dom.Element("img",
		"class", "byline-avatar",
		"src", src,
		"alt", author,
		"width", size,
		"height", size,
		"style", fmt.Sprintf("width:%dpx;height:%dpx;border-radius:50%%;", s.IconSize, s.IconSize),
	)

	label := dom.Element("span",
		"class", "byline-label",
		"style", fmt.Sprintf("font-size:%sem;opacity:%s;", formatFloat(s.FontSize), formatFloat(s.Opacity)),
	)
	label.AppendChild(dom.Text(labelPrefix + author))

	box.AppendChild(img)
	box.AppendChild(label)
	return box
}

// isByline reports whether n is a byline block: one inserted by an
// Injector, or a <div class="byline"> already in the page.
func isByline(n *html.Node) bool {
	if _, ok := dom.Attr(n, bylineMarker); ok {
		return true
	}
	return n.Data == "div" && dom.HasClass(n, bylineClass)
}

// formatFloat prints the shortest decimal form (0.9, not 0.900000).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
