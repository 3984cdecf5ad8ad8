// Package imageproxy rewrites upstream image URLs so the storefront loads
// them through the site's own relay instead of hotlinking.
package imageproxy

import (
	"net/url"
	"strings"
)

// Path is where the relay is mounted.
const Path = "/api/image"

// URL returns the proxied form of raw. Site-relative paths and URLs that
// already point at the relay come back unchanged.
func URL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, Path+"?") {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw
	}
	return Path + "?url=" + url.QueryEscape(raw)
}
