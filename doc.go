// Package byline adds an author byline to rendered documentation pages.
//
// The byline is a small block (round avatar image plus a "By <author>"
// label) inserted as the immediate next sibling of the first primary
// heading of the article: the first <h1> in the content root, or the first
// <h2> when there is no <h1>. Pages without such a heading are left alone.
//
// # Quick Start
//
//	inj, err := byline.New(byline.WithAuthor("Ada Lovelace"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := inj.Decorate(ctx, page, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.HTML), 0644)
//
// # Image Path Resolution
//
// Two modes share one configuration switch:
//
//   - ModeRelative: the image path (default "images/avatar.jpg") is used
//     unchanged and resolved by the browser against the page URL.
//   - ModeOrigin: the path is built as origin + base path + image path,
//     e.g. "https://example.org" + "/docs/" + "images/avatar.jpg", so it
//     stays correct at any directory depth.
//
//	inj, err := byline.New(
//	    byline.WithAuthor("Ada Lovelace"),
//	    byline.WithOriginMode("/docs/"),
//	)
//
// # Page Lifecycle
//
// Decorate is a convenience over the lower-level lifecycle, which mirrors a
// browser page load:
//
//	page, err := byline.LoadPage(html, "https://example.org")
//	task := inj.Schedule(page) // registers a single-shot ready handler
//	page.Ready()               // fires handlers; safe to call again
//	out, err := page.HTML()
//
// A Task runs at most once per page, so repeated Ready calls never produce
// a second byline. A heading already followed by a byline (for example when
// decorating a file twice) is left alone. Failures while resolving or
// building the byline are contained in the Task and never reach the caller.
package byline
