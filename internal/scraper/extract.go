package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RawListingCandidate is one product card as found on a listing page,
// before image validation.
type RawListingCandidate struct {
	Name            string
	DetailURL       string
	ImageCandidates []string
}

// Strategy pulls candidates out of a parsed page. Strategies must not
// keep state between calls.
type Strategy interface {
	Name() string
	Extract(root *goquery.Selection, base *url.URL) []RawListingCandidate
}

// Extractor runs its strategies in order and keeps the first non-empty
// result.
type Extractor struct {
	// DetailPattern is the href substring that marks a product page.
	DetailPattern string
	// ContainerSelectors are product-card selectors, most specific first.
	ContainerSelectors []string
	// FallbackContainer is what the anchor scan walks up to.
	FallbackContainer string
	MinNameLength     int
	// ImageAttrs are read off every <img> in this order.
	ImageAttrs []string
}

func NewExtractor() *Extractor {
	return &Extractor{
		DetailPattern: "/urun/",
		ContainerSelectors: []string{
			".product",
			".product-item",
			`[class*="product-box"]`,
			`[class*="productItem"]`,
		},
		FallbackContainer: `[class*="product"], .item, tr, li`,
		MinNameLength:     3,
		ImageAttrs:        []string{"data-src", "data-original", "data-lazy-src", "data-zoom-image", "data-srcset", "src"},
	}
}

// Strategies lists the cascade: one container strategy per selector, then
// the anchor scan.
func (e *Extractor) Strategies() []Strategy {
	out := make([]Strategy, 0, len(e.ContainerSelectors)+1)
	for _, sel := range e.ContainerSelectors {
		out = append(out, containerStrategy{e: e, selector: sel})
	}
	return append(out, anchorScanStrategy{e: e})
}

// Extract parses page and returns candidates from the first strategy that
// finds any. An empty result is not an error.
func (e *Extractor) Extract(page string, base *url.URL) ([]RawListingCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	for _, s := range e.Strategies() {
		if found := s.Extract(doc.Selection, base); len(found) > 0 {
			return found, nil
		}
	}
	return nil, nil
}

func (e *Extractor) anchorSelector() string {
	return fmt.Sprintf(`a[href*=%q]`, e.DetailPattern)
}

// candidate builds one record from a detail anchor and the element whose
// images belong to it. seen holds detail URLs already taken on this page.
func (e *Extractor) candidate(a, imgScope *goquery.Selection, base *url.URL, seen map[string]struct{}) (RawListingCandidate, bool) {
	href, _ := a.Attr("href")
	detail := NormalizeURL(base, href)
	if detail == "" {
		return RawListingCandidate{}, false
	}
	if _, dup := seen[detail]; dup {
		return RawListingCandidate{}, false
	}

	name := strings.TrimSpace(a.AttrOr("title", ""))
	if name == "" {
		name = collapseSpace(a.Text())
	}
	if utf8.RuneCountInString(name) < e.MinNameLength {
		return RawListingCandidate{}, false
	}

	seen[detail] = struct{}{}
	return RawListingCandidate{
		Name:            name,
		DetailURL:       detail,
		ImageCandidates: e.imageCandidates(imgScope.Find("img")),
	}, true
}

func (e *Extractor) imageCandidates(imgs *goquery.Selection) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, n := range imgs.Nodes {
		if n.DataAtom != atom.Img {
			continue
		}
		for _, name := range e.ImageAttrs {
			v := strings.TrimSpace(nodeAttr(n, name))
			if strings.HasSuffix(name, "srcset") {
				v = firstSrcsetURL(v)
			}
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

type containerStrategy struct {
	e        *Extractor
	selector string
}

func (s containerStrategy) Name() string { return "container " + s.selector }

func (s containerStrategy) Extract(root *goquery.Selection, base *url.URL) []RawListingCandidate {
	var out []RawListingCandidate
	seen := make(map[string]struct{})
	anchors := s.e.anchorSelector()

	root.Find(s.selector).Each(func(_ int, card *goquery.Selection) {
		a := card.Find(anchors).First()
		if a.Length() == 0 {
			return
		}
		if c, ok := s.e.candidate(a, card, base, seen); ok {
			out = append(out, c)
		}
	})
	return out
}

// anchorScanStrategy is the fallback when no card selector matches: every
// detail anchor on the page, with images taken from its nearest list-ish
// ancestor.
type anchorScanStrategy struct {
	e *Extractor
}

func (anchorScanStrategy) Name() string { return "anchor scan" }

func (s anchorScanStrategy) Extract(root *goquery.Selection, base *url.URL) []RawListingCandidate {
	var out []RawListingCandidate
	seen := make(map[string]struct{})

	root.Find(s.e.anchorSelector()).Each(func(_ int, a *goquery.Selection) {
		scope := a.Closest(s.e.FallbackContainer)
		if scope.Length() == 0 {
			scope = a
		}
		if c, ok := s.e.candidate(a, scope, base, seen); ok {
			out = append(out, c)
		}
	})
	return out
}

func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// firstSrcsetURL returns the URL of the first srcset entry.
func firstSrcsetURL(srcset string) string {
	first, _, _ := strings.Cut(srcset, ",")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
