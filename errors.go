package byline

import "errors"

// Sentinel errors for library operations.
var (
	// Settings validation errors.
	ErrEmptyAuthor     = errors.New("author name cannot be empty")
	ErrEmptyImagePath  = errors.New("image path cannot be empty")
	ErrInvalidMode     = errors.New("invalid resolution mode")
	ErrInvalidIconSize = errors.New("invalid icon size")
	ErrInvalidGap      = errors.New("invalid gap")
	ErrInvalidFontSize = errors.New("invalid label font size")
	ErrInvalidOpacity  = errors.New("invalid label opacity")

	// Origin resolution errors.
	ErrMissingOrigin = errors.New("document origin is required in origin mode")
	ErrInvalidOrigin = errors.New("invalid document origin")

	// Page errors.
	ErrHTMLParse  = errors.New("failed to parse HTML")
	ErrHTMLRender = errors.New("failed to render HTML")

	// ErrInjectionPanic wraps a recovered panic from byline construction.
	ErrInjectionPanic = errors.New("byline injection panicked")
)
