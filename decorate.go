package byline

import (
	"context"
)

// Result holds the outcome of decorating one page.
type Result struct {
	HTML    string  // Decorated HTML, or the input unchanged
	Outcome Outcome // What the injection task did
	Err     error   // Contained injection failure, if any
}

// Inserted reports whether a byline was added.
func (r *Result) Inserted() bool {
	return r.Outcome == OutcomeInserted
}

// Decorate performs one full page load: parse, schedule, fire ready and
// render. Injection failures never surface as the returned error; they are
// reported in Result and the input is returned byte-for-byte unchanged.
// The returned error covers cancellation and HTML parse/render failures.
func (i *Injector) Decorate(ctx context.Context, htmlContent, origin string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := LoadPage(htmlContent, origin)
	if err != nil {
		return nil, err
	}

	task := i.Schedule(page)
	page.Ready()

	result := &Result{
		HTML:    htmlContent,
		Outcome: task.Outcome(),
		Err:     task.Err(),
	}
	if !result.Inserted() {
		return result, nil
	}

	out, err := page.HTML()
	if err != nil {
		return nil, err
	}
	result.HTML = out
	return result, nil
}
