package urlx

import "strings"

// Absolutize turns a possibly-relative path into a fully-qualified https URL
// rooted at base. Base may itself carry a scheme or trailing slash; both are
// stripped before composing. Already-absolute inputs are returned unchanged,
// which makes the function idempotent.
func Absolutize(path, base string) string {
	if path == "" || base == "" {
		return path
	}
	if HasScheme(path) {
		return path
	}

	host := strings.TrimSuffix(stripScheme(base), "/")
	return "https://" + host + "/" + strings.TrimPrefix(path, "/")
}

// HasScheme reports whether raw already starts with a URL scheme.
func HasScheme(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func stripScheme(raw string) string {
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	return raw
}
