package scraper

import (
	"fmt"
	"hash/fnv"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// IDFor derives a product id from its detail URL. The same URL always
// yields the same id. Without a URL the id falls back to the position on
// the page and is not stable across fetches.
func IDFor(tag, detailURL string, fallbackIndex int) string {
	detailURL = strings.TrimSpace(detailURL)
	if detailURL == "" {
		return fmt.Sprintf("%s_p_%d", tag, fallbackIndex)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(detailURL))
	return tag + "_" + strconv.FormatUint(h.Sum64(), 36)
}

// SourceTag derives an id prefix from a listing URL's host:
// "https://www.drstuning.com/kategori/x" -> "drstuning",
// "https://shop.example.com" -> "shop-example".
func SourceTag(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return "ext"
	}
	host := strings.ToLower(u.Hostname())
	if net.ParseIP(host) != nil {
		return strings.NewReplacer(".", "-", ":", "-").Replace(host)
	}
	host = strings.TrimPrefix(host, "www.")
	labels := strings.Split(host, ".")
	if len(labels) > 1 {
		labels = labels[:len(labels)-1]
	}
	return strings.Join(labels, "-")
}

// hostLabel is the display name for a source without an explicit label.
func hostLabel(u *url.URL) string {
	if u == nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
