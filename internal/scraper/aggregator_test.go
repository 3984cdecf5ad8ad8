package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuninghub/pkg/models"
)

// listingServer serves pages[n-1] for ?tp=n and an empty listing past the
// last page.
type listingServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newListingServer(t *testing.T, pages ...[]string) *listingServer {
	t.Helper()
	ls := &listingServer{}
	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.hits.Add(1)
		page := 1
		if tp := r.URL.Query().Get(PageParam); tp != "" {
			page, _ = strconv.Atoi(tp)
		}
		var items []string
		if page >= 1 && page <= len(pages) {
			items = pages[page-1]
		}
		_, _ = w.Write([]byte(listingHTML(items)))
	}))
	t.Cleanup(ls.Close)
	return ls
}

func listingHTML(slugs []string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="list">`)
	for _, s := range slugs {
		fmt.Fprintf(&b, `<div class="product"><img src="/themes/badge-sale.png">`+
			`<a href="/urun/%[1]s" title="Ürün %[1]s"><img data-src="/myassets/products/%[1]s_min.jpg"></a></div>`, s)
	}
	if len(slugs) == 0 {
		b.WriteString(`<p>Bu kategoride ürün bulunamadı.</p>`)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type stubSources []models.ExternalSource

func (s stubSources) ListByCategory(_ context.Context, path string) ([]models.ExternalSource, error) {
	var out []models.ExternalSource
	for _, es := range s {
		if es.CategoryPath == path {
			out = append(out, es)
		}
	}
	return out, nil
}

type stubOverrides struct {
	m   map[string]models.ProductOverride
	err error
}

func (s stubOverrides) Map(context.Context) (map[string]models.ProductOverride, error) {
	return s.m, s.err
}

type stubLocal []models.Product

func (s stubLocal) ListByCategory(context.Context, string) ([]models.Product, error) {
	return s, nil
}

func newTestAggregator(base string) *Aggregator {
	a := NewAggregator(NewResolver(base), NewHTTPFetcher(2*time.Second, 0))
	a.MaxDuration = 10 * time.Second
	return a
}

func productNames(ps []models.CanonicalProduct) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestAggregateSinglePage(t *testing.T) {
	srv := newListingServer(t, []string{"a", "b"}, []string{"c"})
	a := newTestAggregator(srv.URL)

	res := a.Aggregate(context.Background(), "body-kit-urunleri/body-kit-setler", Options{Page: 1})
	require.Empty(t, res.Err)
	assert.Equal(t, []string{"Ürün a", "Ürün b"}, productNames(res.Products))
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, DefaultPrimaryLabel, res.Source)
	assert.EqualValues(t, 1, srv.hits.Load())

	p := res.Products[0]
	assert.Equal(t, srv.URL+"/urun/a", p.ProductURL)
	assert.Equal(t, srv.URL+"/myassets/products/a_min.jpg", p.ImageURL)
	assert.Equal(t, DefaultPrimaryLabel, p.Source)
	assert.Equal(t, IDFor(SourceTag(srv.URL), p.ProductURL, 0), p.ID)
	assert.False(t, p.OutOfStock)

	res = a.Aggregate(context.Background(), "body-kit-urunleri/body-kit-setler", Options{Page: 2})
	assert.Equal(t, []string{"Ürün c"}, productNames(res.Products))
}

func TestAggregateAllPagesStopsAtEmptyPage(t *testing.T) {
	srv := newListingServer(t, []string{"a", "b"}, []string{"c", "d"}, []string{"e"})
	a := newTestAggregator(srv.URL)

	res := a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	require.Empty(t, res.Err)
	assert.Equal(t, []string{"Ürün a", "Ürün b", "Ürün c", "Ürün d", "Ürün e"}, productNames(res.Products))
	// three product pages plus the empty one that ends the walk
	assert.EqualValues(t, 4, srv.hits.Load())
	require.Len(t, res.Sources, 1)
	assert.Equal(t, 4, res.Sources[0].Pages)
	assert.Equal(t, 5, res.Sources[0].Products)
}

func TestAggregateDedupsAcrossPages(t *testing.T) {
	srv := newListingServer(t, []string{"p1", "p2"}, []string{"p2", "p3"}, []string{"p3"})
	a := newTestAggregator(srv.URL)

	res := a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	assert.Equal(t, []string{"Ürün p1", "Ürün p2", "Ürün p3"}, productNames(res.Products))
	// the page holding only already-seen products ends the walk
	assert.EqualValues(t, 3, srv.hits.Load())

	ids := map[string]bool{}
	for _, p := range res.Products {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
}

func TestAggregateHonorsMaxPages(t *testing.T) {
	pages := make([][]string, 10)
	for i := range pages {
		pages[i] = []string{"x" + strconv.Itoa(i)}
	}
	srv := newListingServer(t, pages...)
	a := newTestAggregator(srv.URL)
	a.MaxPages = 3

	res := a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	assert.Len(t, res.Products, 3)
	assert.EqualValues(t, 3, srv.hits.Load())
}

func TestAggregateCapsSinglePage(t *testing.T) {
	srv := newListingServer(t, []string{"a", "b", "c", "d", "e"})
	a := newTestAggregator(srv.URL)
	a.MaxProducts = 3

	res := a.Aggregate(context.Background(), "spoiler", Options{})
	assert.Len(t, res.Products, 3)
	assert.Equal(t, 3, res.TotalCount)

	res = a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	assert.Len(t, res.Products, 5)
}

func TestAggregateSkipsProductsWithoutPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="product"><a href="/urun/ok" title="Has Photo"><img src="/myassets/products/ok.jpg"></a></div>
<div class="product"><a href="/urun/bad" title="Only Badge"><img src="/img/badge.png"><img src="data:image/png;base64,AA"></a></div>`))
	}))
	defer srv.Close()

	res := newTestAggregator(srv.URL).Aggregate(context.Background(), "spoiler", Options{})
	assert.Equal(t, []string{"Has Photo"}, productNames(res.Products))
}

func TestAggregateToleratesFailingRegisteredSource(t *testing.T) {
	primary := newListingServer(t, []string{"a", "b"})
	broken := failingServer(t)
	extra := newListingServer(t, []string{"b", "z"})

	a := newTestAggregator(primary.URL)
	a.Sources = stubSources{
		{ID: "1", CategoryPath: "spoiler", URL: broken.URL + "/list", Label: "Broken Shop"},
		{ID: "2", CategoryPath: "spoiler", URL: extra.URL + "/list"},
		{ID: "3", CategoryPath: "other", URL: extra.URL + "/other"},
	}

	res := a.Aggregate(context.Background(), "spoiler", Options{})
	require.Empty(t, res.Err)
	require.Len(t, res.Sources, 3)
	assert.Empty(t, res.Sources[0].Error)
	assert.Equal(t, "Broken Shop", res.Sources[1].Name)
	assert.NotEmpty(t, res.Sources[1].Error)
	assert.Equal(t, "127.0.0.1", res.Sources[2].Name)

	// primary first, then the registered source in order
	assert.Equal(t, []string{"Ürün a", "Ürün b", "Ürün b", "Ürün z"}, productNames(res.Products))
	assert.Equal(t, "127.0.0.1", res.Products[3].Source)
}

func TestAggregateDedupsAcrossSources(t *testing.T) {
	primary := newListingServer(t, []string{"a", "b"})
	// A reseller page linking to the same detail pages as the primary.
	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<div class="product"><a href="%[1]s/urun/b" title="Bayi b"><img src="/myassets/products/bb_min.jpg"></a></div>`+
			`<div class="product"><a href="%[1]s/urun/y" title="Bayi y"><img src="/myassets/products/y_min.jpg"></a></div>`, primary.URL)
	}))
	t.Cleanup(mirror.Close)

	a := newTestAggregator(primary.URL)
	a.Sources = stubSources{{ID: "1", CategoryPath: "spoiler", URL: mirror.URL + "/list", Label: "Bayi"}}

	for _, opts := range []Options{{}, {AllPages: true}} {
		res := a.Aggregate(context.Background(), "spoiler", opts)
		require.Empty(t, res.Err)
		assert.Equal(t, []string{"Ürün a", "Ürün b", "Bayi y"}, productNames(res.Products))

		seen := make(map[string]bool)
		for _, p := range res.Products {
			assert.False(t, seen[p.ProductURL], p.ProductURL)
			seen[p.ProductURL] = true
		}
		assert.Equal(t, DefaultPrimaryLabel, res.Products[1].Source)
		assert.Equal(t, primary.URL+"/urun/b", res.Products[1].ProductURL)
		assert.Equal(t, "Bayi", res.Products[2].Source)
	}
}

func TestAggregateTotalFailure(t *testing.T) {
	broken := failingServer(t)
	a := newTestAggregator(broken.URL)

	res := a.Aggregate(context.Background(), "spoiler", Options{})
	assert.NotEmpty(t, res.Err)
	assert.Contains(t, res.Err, "500")
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.Zero(t, res.TotalCount)
}

func TestAggregateEmptyCategoryIsNotFailure(t *testing.T) {
	srv := newListingServer(t)
	res := newTestAggregator(srv.URL).Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	assert.Empty(t, res.Err)
	assert.Empty(t, res.Products)
}

func TestAggregateAppliesOverrides(t *testing.T) {
	srv := newListingServer(t, []string{"a", "b"})
	a := newTestAggregator(srv.URL)

	idB := IDFor(SourceTag(srv.URL), srv.URL+"/urun/b", 1)
	price := 1499.9
	a.Overrides = stubOverrides{m: map[string]models.ProductOverride{
		idB:         {ProductID: idB, OutOfStock: true, Price: &price},
		"unrelated": {ProductID: "unrelated", OutOfStock: true},
	}}

	res := a.Aggregate(context.Background(), "spoiler", Options{})
	require.Len(t, res.Products, 2)
	assert.False(t, res.Products[0].OutOfStock)
	assert.Nil(t, res.Products[0].Price)
	assert.True(t, res.Products[1].OutOfStock)
	require.NotNil(t, res.Products[1].Price)
	assert.InDelta(t, 1499.9, *res.Products[1].Price, 0.001)
}

func TestAggregateOverrideReadFailureKeepsProducts(t *testing.T) {
	srv := newListingServer(t, []string{"a"})
	a := newTestAggregator(srv.URL)
	a.Overrides = stubOverrides{err: errors.New("db down")}

	res := a.Aggregate(context.Background(), "spoiler", Options{})
	require.Empty(t, res.Err)
	require.Len(t, res.Products, 1)
	assert.False(t, res.Products[0].OutOfStock)
}

func TestAggregateIsIdempotent(t *testing.T) {
	srv := newListingServer(t, []string{"a", "b", "c"}, []string{"d"})
	a := newTestAggregator(srv.URL)

	first := a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	second := a.Aggregate(context.Background(), "spoiler", Options{AllPages: true})
	assert.Equal(t, first.Products, second.Products)
}

func TestAggregatePrependsLocalProducts(t *testing.T) {
	srv := newListingServer(t, []string{"a"})
	a := newTestAggregator(srv.URL)
	a.LocalBase = mustURL(t, "https://tuninghub.example")
	price := 250.0
	a.Local = stubLocal{{ID: "local-1", Name: "Atölye Spoiler", ImageURL: "/uploads/s.jpg", Category: "spoiler", Price: &price}}

	res := a.Aggregate(context.Background(), "spoiler", Options{IncludeLocal: true})
	require.Len(t, res.Products, 2)
	assert.Equal(t, "local-1", res.Products[0].ID)
	assert.Equal(t, LocalSourceName, res.Products[0].Source)
	assert.Equal(t, "https://tuninghub.example/uploads/s.jpg", res.Products[0].ImageURL)
	assert.Equal(t, "Ürün a", res.Products[1].Name)

	res = a.Aggregate(context.Background(), "spoiler", Options{})
	assert.Len(t, res.Products, 1)
}

func TestAggregateLocalImagesAreAbsolute(t *testing.T) {
	srv := newListingServer(t, []string{"a"})
	a := newTestAggregator(srv.URL)
	a.LocalBase = mustURL(t, "https://tuninghub.example/")
	a.Local = stubLocal{
		{ID: "l1", Name: "Yerel Spoiler", ImageURL: "/uploads/s.jpg", Category: "spoiler"},
		{ID: "l2", Name: "Fotoğrafsız", ImageURL: "", Category: "spoiler"},
		{ID: "l3", Name: "CDN Difüzör", ImageURL: "//cdn.tuninghub.example/d.jpg", Category: "spoiler"},
		{ID: "l4", Name: "Gömülü", ImageURL: "data:image/png;base64,AAAA", Category: "spoiler"},
	}

	res := a.Aggregate(context.Background(), "spoiler", Options{IncludeLocal: true})
	ids := make([]string, 0, len(res.Products))
	for _, p := range res.Products {
		ids = append(ids, p.ID)
		assert.Regexp(t, `^https?://`, p.ImageURL, p.ID)
	}
	assert.Contains(t, ids, "l1")
	assert.Contains(t, ids, "l3")
	assert.NotContains(t, ids, "l2")
	assert.NotContains(t, ids, "l4")

	// Without a site origin relative paths cannot be resolved.
	a.LocalBase = nil
	res = a.Aggregate(context.Background(), "spoiler", Options{IncludeLocal: true})
	for _, p := range res.Products {
		assert.NotEqual(t, "l1", p.ID)
		assert.Regexp(t, `^https?://`, p.ImageURL, p.ID)
	}
}

func TestAggregateStopsWhenDeadlinePasses(t *testing.T) {
	srv := newListingServer(t, []string{"a"}, []string{"b"})
	a := newTestAggregator(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := a.Aggregate(ctx, "spoiler", Options{AllPages: true})
	assert.Empty(t, res.Products)
	assert.NotEmpty(t, res.Err)
	assert.Zero(t, srv.hits.Load())
}
