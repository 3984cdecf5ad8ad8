package scraper

import (
	"net/url"
	"strings"
)

// ImageScorer picks the real product photo out of the images found in a
// listing card. Cards often carry ribbons, badges and lazy-load spinners
// ahead of the photo in DOM order.
type ImageScorer struct {
	// Denylist markers reject a candidate outright.
	Denylist []string
	// ProductAssetPath is where the upstream serves product photos.
	ProductAssetPath string
	// ThumbMarker identifies the listing-size variant.
	ThumbMarker string
	// SecondaryMarkers must all be present for the secondary asset tier.
	SecondaryMarkers []string
}

func NewImageScorer() *ImageScorer {
	return &ImageScorer{
		Denylist:         []string{"placeholder", "loading", "spinner", "1x1", "blank", "icon", "badge", "logo"},
		ProductAssetPath: "myassets/products",
		ThumbMarker:      "_min",
		SecondaryMarkers: []string{"/idea/", "/products/"},
	}
}

// Score ranks an absolute or relative image URL; 0 means rejected.
func (s *ImageScorer) Score(raw string) int {
	u := strings.ToLower(strings.TrimSpace(raw))
	if u == "" || strings.HasPrefix(u, "data:") {
		return 0
	}
	for _, marker := range s.Denylist {
		if strings.Contains(u, marker) {
			return 0
		}
	}

	inAssets := s.ProductAssetPath != "" && strings.Contains(u, s.ProductAssetPath)
	switch {
	case inAssets && s.ThumbMarker != "" && strings.Contains(u, s.ThumbMarker):
		return 10
	case inAssets:
		return 5
	case s.secondary(u):
		return 3
	default:
		return 1
	}
}

func (s *ImageScorer) secondary(u string) bool {
	if len(s.SecondaryMarkers) == 0 {
		return false
	}
	for _, m := range s.SecondaryMarkers {
		if !strings.Contains(u, m) {
			return false
		}
	}
	return true
}

// SelectBest normalizes every candidate against base and returns the
// highest scoring one. Ties keep the first seen. ok is false when every
// candidate was rejected.
func (s *ImageScorer) SelectBest(base *url.URL, candidates []string) (best string, ok bool) {
	bestScore := 0
	for _, c := range candidates {
		abs := NormalizeURL(base, c)
		if abs == "" {
			continue
		}
		if score := s.Score(abs); score > bestScore {
			best, bestScore = abs, score
		}
	}
	return best, bestScore > 0
}

// NormalizeURL makes raw absolute: protocol-relative gets https,
// everything relative is resolved against base. Returns "" when raw is
// empty or unusable.
func NormalizeURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "data:"):
		return raw
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	}
	if base == nil {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
