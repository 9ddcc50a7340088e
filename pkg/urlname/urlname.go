package urlname

import (
	"net/url"
	"strings"
)

// Fallback is returned whenever no usable name can be derived.
const Fallback = "qrcode"

// Derive extracts a filesystem-safe base name from a URL-like string.
// See the package documentation for the exact derivation rules.
func Derive(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Fallback
	}

	name := u.Host
	if name == "" {
		name = u.Path
	}

	name = strings.TrimPrefix(name, "www.")
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[:i]
	}

	name = strings.TrimRight(sanitize(name), ".")
	if name == "" {
		return Fallback
	}
	return name
}

// sanitize replaces every rune outside [A-Za-z0-9_.-] with an underscore.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
