package scraper

import (
	"net/url"
	"strconv"
	"strings"

	"tuninghub/internal/catalog"
)

const (
	DefaultUpstreamBase = "https://www.drstuning.com"
	// DefaultExternalSlug is used when the category path is blank.
	DefaultExternalSlug = "body-kitler"
	// PageParam is the upstream's pagination query parameter.
	PageParam = "tp"
)

// slugOverrides maps our leaf slugs to the upstream's slugs where they
// differ. Anything missing maps to itself.
var slugOverrides = map[string]string{
	"body-kit-setler":                     "body-kitler",
	"body-kit-urunleri":                   "body-kitler",
	"on-tampon-diger-urunler":             "on-tampon-cita",
	"spoiler":                             "spoyler",
	"on-lip-ve-flap":                      "on-lip",
	"kaput-ve-kaput-aksesuarlari":         "kaput-kaput-aksesuarlari",
	"kaput-amortisor":                     "kaput-amortisoru",
	"kaput-kaplama-ve-havalandirma":       "kaput-havalandirma",
	"tuning-shop":                         "tuning-performans",
	"emniyet-ve-guvenlik":                 "emniyet-guvenlik",
	"far-ve-stop-cercevesi":               "far-cercevesi",
	"motosiklet-brandasi":                 "motorsiklet-brandasi",
	"egzoz-ve-egzoz-uclari":               "egzoz-egzoz-uclari",
	"pacalik":                             "pacalik-1",
	"atv-brandasi":                        "atv-brandasi-modelleri-cesitleri",
	"universal-basamakliklar":             "universal-basamaklar",
	"oto-paspas-ve-bagaj-urunleri":        "oto-paspas-bagaj-urunleri",
	"araca-ozel-hali-paspas":              "hali-paspaslar",
	"3d-arac-ozel-bagaj-havuzu":           "bagaj-havuzu",
	"vites-topuzu-kaplama":                "vites-topuzu",
	"oto-koltuk-ve-branda":                "oto-koltuk-branda",
	"far-ve-diger-ampuller":               "far-ampulleri",
	"kapi-kolu-kaplama":                   "kapi-kolu",
	"ayna-alti-cita-kaplama":              "ayna-alt-cita",
	"bagaj-citasi-kaplama":                "bagaj-citasi",
	"ceki-demiri-ve-aksesuarlari":         "ceki-demiri-1",
	"marspiyel-kaplamasi-ve-aksesuarlari": "marspiyel-kaplamasi",
	"on-arka-tampon-braket-bakalit":       "on-tampon-braket",
	"tampon-alt-muhafaza-urunleri":        "tampon-alt-muhafaza-kapagi",
	"on-arka-koruma-difuzor":              "on-arka-koruma",
}

// Resolver turns a category path into the upstream listing URL.
type Resolver struct {
	Base        string
	DefaultSlug string
	Overrides   map[string]string
}

func NewResolver(base string) *Resolver {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultUpstreamBase
	}
	return &Resolver{
		Base:        base,
		DefaultSlug: DefaultExternalSlug,
		Overrides:   slugOverrides,
	}
}

// ExternalSlug maps the leaf of categoryPath through the override table.
func (r *Resolver) ExternalSlug(categoryPath string) string {
	leaf := catalog.LastSegment(categoryPath)
	if leaf == "" {
		return r.DefaultSlug
	}
	if s, ok := r.Overrides[leaf]; ok {
		return s
	}
	return leaf
}

// Resolve returns {base}/kategori/{slug}, plus ?tp={page} for page > 1.
func (r *Resolver) Resolve(categoryPath string, page int) string {
	u := r.Base + "/kategori/" + url.PathEscape(r.ExternalSlug(categoryPath))
	return WithPage(u, page)
}

// WithPage sets the pagination parameter on an arbitrary listing URL.
// Page 1 (or less) leaves the URL untouched.
func WithPage(rawURL string, page int) string {
	if page <= 1 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set(PageParam, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
