package scraper

import (
	"context"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"tuninghub/internal/catalog"
	"tuninghub/pkg/models"
)

const (
	DefaultPrimaryLabel = "DRS Tuning"
	LocalSourceName     = "local"

	defaultMaxPages    = 100
	defaultMaxProducts = 100
	defaultMaxDuration = 60 * time.Second
	defaultConcurrency = 4
)

// SourceLister returns the admin-registered extra sources of a category.
type SourceLister interface {
	ListByCategory(ctx context.Context, categoryPath string) ([]models.ExternalSource, error)
}

// OverrideReader returns stock/price overrides keyed by product id.
type OverrideReader interface {
	Map(ctx context.Context) (map[string]models.ProductOverride, error)
}

// LocalCatalog returns first-party products filed under a category.
type LocalCatalog interface {
	ListByCategory(ctx context.Context, categoryPath string) ([]models.Product, error)
}

type Options struct {
	Page         int
	AllPages     bool
	IncludeLocal bool
}

type SourceReport struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Pages    int    `json:"pages"`
	Products int    `json:"products"`
	Error    string `json:"error,omitempty"`
}

type Result struct {
	Products   []models.CanonicalProduct
	TotalCount int
	Source     string
	Sources    []SourceReport
	// Err is set only when nothing could be fetched from any source.
	Err string
}

// Aggregator collects the products of one category from the primary
// upstream and every registered source, then overlays stock overrides.
// Failures of individual sources or pages never fail the whole call.
type Aggregator struct {
	Resolver  *Resolver
	Fetcher   Fetcher
	Extractor *Extractor
	Scorer    *ImageScorer

	Sources   SourceLister
	Overrides OverrideReader
	Local     LocalCatalog
	// LocalBase resolves relative first-party image paths.
	LocalBase *url.URL

	PrimaryLabel string
	MaxPages     int
	MaxProducts  int
	MaxDuration  time.Duration
	// Concurrency caps how many sources are crawled at once. Pages of a
	// single source are always fetched one after another.
	Concurrency int
}

func NewAggregator(resolver *Resolver, fetcher Fetcher) *Aggregator {
	return &Aggregator{
		Resolver:     resolver,
		Fetcher:      fetcher,
		Extractor:    NewExtractor(),
		Scorer:       NewImageScorer(),
		PrimaryLabel: DefaultPrimaryLabel,
		MaxPages:     defaultMaxPages,
		MaxProducts:  defaultMaxProducts,
		MaxDuration:  defaultMaxDuration,
		Concurrency:  defaultConcurrency,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, categoryPath string, opts Options) Result {
	crawlCtx := ctx
	if a.MaxDuration > 0 {
		var cancel context.CancelFunc
		crawlCtx, cancel = context.WithTimeout(ctx, a.MaxDuration)
		defer cancel()
	}

	path := catalog.CleanPath(categoryPath)
	page := opts.Page
	if page < 1 {
		page = 1
	}

	res := Result{Source: a.primaryLabel()}
	srcs := a.sourcesFor(ctx, path)
	if len(srcs) == 0 {
		res.Err = "no resolvable source for category"
		res.Products = []models.CanonicalProduct{}
		return res
	}

	type crawl struct {
		products []models.CanonicalProduct
		report   SourceReport
	}
	crawls := make([]crawl, len(srcs))

	var g errgroup.Group
	g.SetLimit(a.concurrency())
	for i, src := range srcs {
		g.Go(func() error {
			products, report := a.crawlSource(crawlCtx, src, page, opts.AllPages)
			crawls[i] = crawl{products: products, report: report}
			return nil
		})
	}
	_ = g.Wait()

	// Sources are merged in registration order so the result does not
	// depend on which crawl finished first.
	seen := make(map[string]struct{})
	external := make([]models.CanonicalProduct, 0)
	for _, c := range crawls {
		res.Sources = append(res.Sources, c.report)
		for _, p := range c.products {
			if _, dup := seen[p.ProductURL]; dup {
				continue
			}
			seen[p.ProductURL] = struct{}{}
			external = append(external, p)
		}
	}
	if !opts.AllPages && a.maxProducts() > 0 && len(external) > a.maxProducts() {
		external = external[:a.maxProducts()]
	}

	products := make([]models.CanonicalProduct, 0, len(external))
	if opts.IncludeLocal && a.Local != nil && path != "" {
		products = append(products, a.localProducts(ctx, path)...)
	}
	products = append(products, external...)

	a.applyOverrides(ctx, products)

	res.Products = products
	res.TotalCount = len(products)
	if len(products) == 0 && allFailed(res.Sources) {
		res.Err = "no products could be fetched: " + res.Sources[0].Error
	}
	return res
}

func (a *Aggregator) sourcesFor(ctx context.Context, path string) []Source {
	var out []Source

	primary, err := NewCategorySource(a.Resolver, path, a.primaryLabel())
	if err != nil {
		log.WithError(err).WithField("category", path).Error("[scraper] primary source unavailable")
	} else {
		out = append(out, primary)
	}

	if a.Sources == nil || path == "" {
		return out
	}
	registered, err := a.Sources.ListByCategory(ctx, path)
	if err != nil {
		log.WithError(err).WithField("category", path).Warn("[scraper] listing registered sources failed")
		return out
	}
	for _, es := range registered {
		src, err := NewRegisteredSource(es)
		if err != nil {
			log.WithError(err).WithField("source_id", es.ID).Warn("[scraper] skipping registered source")
			continue
		}
		out = append(out, src)
	}
	return out
}

// crawlSource walks the pages of one source in order, starting at
// startPage. It stops on the first failed fetch, on a page without new
// products, after one page unless allPages is set, or at MaxPages.
func (a *Aggregator) crawlSource(ctx context.Context, src Source, startPage int, allPages bool) ([]models.CanonicalProduct, SourceReport) {
	report := SourceReport{Name: src.Name(), URL: src.PageURL(startPage)}
	logger := log.WithFields(log.Fields{"source": src.Name(), "tag": src.Tag()})

	seen := make(map[string]struct{})
	var out []models.CanonicalProduct

	for page := startPage; page < startPage+a.maxPages(); page++ {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).WithField("page", page).Warn("[scraper] stopping crawl")
			if report.Pages == 0 {
				report.Error = err.Error()
			}
			break
		}

		pageURL := src.PageURL(page)
		body, err := a.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger.WithError(err).WithField("page", page).Warn("[scraper] page fetch failed")
			if report.Pages == 0 {
				report.Error = err.Error()
			}
			break
		}
		report.Pages++

		fresh := a.pageProducts(body, src, seen, len(out))
		logger.WithFields(log.Fields{"page": page, "new": len(fresh)}).Debug("[scraper] page parsed")
		if len(fresh) == 0 {
			break
		}
		out = append(out, fresh...)

		if !allPages {
			break
		}
	}

	report.Products = len(out)
	return out, report
}

// pageProducts turns one page into products, skipping detail URLs already
// in seen and cards without a usable photo. Accepted URLs are added to
// seen.
func (a *Aggregator) pageProducts(body string, src Source, seen map[string]struct{}, offset int) []models.CanonicalProduct {
	cands, err := a.Extractor.Extract(body, src.Base())
	if err != nil {
		log.WithError(err).WithField("source", src.Name()).Warn("[scraper] extract failed")
		return nil
	}

	var out []models.CanonicalProduct
	for i, c := range cands {
		if _, dup := seen[c.DetailURL]; dup {
			continue
		}
		img, ok := a.Scorer.SelectBest(src.Base(), c.ImageCandidates)
		if !ok {
			continue
		}
		seen[c.DetailURL] = struct{}{}
		out = append(out, models.CanonicalProduct{
			ID:         IDFor(src.Tag(), c.DetailURL, offset+i),
			Name:       c.Name,
			ImageURL:   img,
			ProductURL: c.DetailURL,
			Source:     src.Name(),
		})
	}
	return out
}

func (a *Aggregator) localProducts(ctx context.Context, path string) []models.CanonicalProduct {
	items, err := a.Local.ListByCategory(ctx, path)
	if err != nil {
		log.WithError(err).WithField("category", path).Warn("[scraper] local catalog read failed")
		return nil
	}
	out := make([]models.CanonicalProduct, 0, len(items))
	for _, p := range items {
		img := localImageURL(a.LocalBase, p.ImageURL)
		if img == "" {
			log.WithFields(log.Fields{"product_id": p.ID, "image": p.ImageURL}).Debug("[scraper] skipping local product without usable image")
			continue
		}
		out = append(out, models.CanonicalProduct{
			ID:       p.ID,
			Name:     p.Name,
			ImageURL: img,
			Source:   LocalSourceName,
			Price:    p.Price,
		})
	}
	return out
}

// applyOverrides flags products in place. Out-of-stock products stay in
// the list.
func (a *Aggregator) applyOverrides(ctx context.Context, products []models.CanonicalProduct) {
	if a.Overrides == nil || len(products) == 0 {
		return
	}
	overrides, err := a.Overrides.Map(ctx)
	if err != nil {
		log.WithError(err).Warn("[scraper] override read failed, returning products unflagged")
		return
	}
	for i := range products {
		o, ok := overrides[products[i].ID]
		if !ok {
			continue
		}
		products[i].OutOfStock = o.OutOfStock
		if o.Price != nil {
			products[i].Price = o.Price
		}
	}
}

// localImageURL makes a first-party image absolute against base. Only
// http(s) results are kept.
func localImageURL(base *url.URL, raw string) string {
	abs := NormalizeURL(base, raw)
	if strings.HasPrefix(abs, "http://") || strings.HasPrefix(abs, "https://") {
		return abs
	}
	return ""
}

func allFailed(reports []SourceReport) bool {
	if len(reports) == 0 {
		return true
	}
	for _, r := range reports {
		if r.Error == "" {
			return false
		}
	}
	return true
}

func (a *Aggregator) primaryLabel() string {
	if a.PrimaryLabel != "" {
		return a.PrimaryLabel
	}
	return DefaultPrimaryLabel
}

func (a *Aggregator) maxPages() int {
	if a.MaxPages > 0 {
		return a.MaxPages
	}
	return defaultMaxPages
}

func (a *Aggregator) maxProducts() int {
	if a.MaxProducts > 0 {
		return a.MaxProducts
	}
	return defaultMaxProducts
}

func (a *Aggregator) concurrency() int {
	if a.Concurrency > 0 {
		return a.Concurrency
	}
	return defaultConcurrency
}
