package tools

import "strings"

// FullURL joins an API base URL, which may carry a gateway path prefix, with
// an endpoint path. Repeated slashes at the seam collapse to one.
func FullURL(baseURL, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return ""
	}
	if path = strings.TrimLeft(path, "/"); path == "" {
		return base
	}
	return base + "/" + path
}
