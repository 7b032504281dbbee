package catalog

import "strings"

// WithBasePath maps a logical asset path onto the served base URL.
// The base always gains a trailing slash and leading slashes on path are dropped.
func WithBasePath(base, path string) string {
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimLeft(path, "/")
}
