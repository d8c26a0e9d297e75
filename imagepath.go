package byline

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ResolveImagePath returns the image source for a page with the given origin.
//
// In ModeRelative the configured path is returned unchanged and origin is
// ignored. In ModeOrigin the result is origin + base path + image path with
// exactly one slash between each part, e.g. "https://example.org" + "/docs/"
// + "images/avatar.jpg" gives "https://example.org/docs/images/avatar.jpg".
//
// An absolute image URL ("https://cdn.example.net/a.jpg", "//cdn/a.jpg",
// "data:...") is returned unchanged in both modes and needs no origin.
func ResolveImagePath(s Settings, origin string) (string, error) {
	if isAbsoluteURL(s.ImagePath) {
		return s.ImagePath, nil
	}
	switch s.Mode {
	case ModeRelative:
		return s.ImagePath, nil
	case ModeOrigin:
		o, err := NormalizeOrigin(origin)
		if err != nil {
			return "", err
		}
		return o + normalizeBasePath(s.BasePath) + strings.TrimLeft(s.ImagePath, "/"), nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidMode, int(s.Mode))
}

// NormalizeOrigin validates a document origin (scheme and host) and returns
// it without a trailing slash. Only http and https origins are accepted.
func NormalizeOrigin(origin string) (string, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "", ErrMissingOrigin
	}

	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidOrigin, origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q (scheme must be http or https)", ErrInvalidOrigin, origin)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q (missing host)", ErrInvalidOrigin, origin)
	}
	if strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return "", fmt.Errorf("%w: %q (must be scheme and host only)", ErrInvalidOrigin, origin)
	}

	return u.Scheme + "://" + u.Host, nil
}

// isAbsoluteURL reports whether p carries a scheme or is scheme-relative.
func isAbsoluteURL(p string) bool {
	if strings.HasPrefix(p, "//") {
		return true
	}
	u, err := url.Parse(p)
	return err == nil && u.IsAbs()
}

// normalizeBasePath forces a leading and a trailing slash.
// Empty or slash-only input collapses to "/"; repeated slashes are merged.
func normalizeBasePath(p string) string {
	p = path.Clean("/" + strings.TrimSpace(p))
	if p == "/" {
		return p
	}
	return p + "/"
}
