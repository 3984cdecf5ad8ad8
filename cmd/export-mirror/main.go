package main

import (
	"context"
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tuninghub/internal/catalog"
	"tuninghub/internal/scraper"
	"tuninghub/pkg/utils"
)

// export-mirror saves upstream listing pages in the layout mirror-server
// reads, so crawls can be replayed offline.
func main() {
	var (
		outDir     = flag.String("out", "data/mirror", "mirror directory")
		categories = flag.String("categories", "body-kit-urunleri/body-kit-setler", "comma separated category paths")
		maxPages   = flag.Int("max-pages", 5, "pages to save per category")
	)
	flag.Parse()

	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	m := &mirror{
		Resolver:  scraper.NewResolver(cfg.UpstreamBase),
		Fetcher:   scraper.NewHTTPFetcher(cfg.FetchTimeout, cfg.UpstreamRPS),
		Extractor: scraper.NewExtractor(),
		Dir:       *outDir,
		MaxPages:  *maxPages,
	}

	saved := 0
	for _, p := range strings.Split(*categories, ",") {
		if p = catalog.CleanPath(p); p == "" {
			continue
		}
		n, err := m.save(ctx, p)
		if err != nil {
			log.WithError(err).WithField("category", p).Warn("mirror incomplete")
		}
		saved += n
	}
	log.Printf("saved %d pages to %s", saved, *outDir)
}

type mirror struct {
	Resolver  *scraper.Resolver
	Fetcher   scraper.Fetcher
	Extractor *scraper.Extractor
	Dir       string
	MaxPages  int
}

// save writes pages of one category until a page has no products.
func (m *mirror) save(ctx context.Context, categoryPath string) (int, error) {
	slug := m.Resolver.ExternalSlug(categoryPath)
	base, err := url.Parse(m.Resolver.Base)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Join(m.Dir, "kategori"), 0o755); err != nil {
		return 0, err
	}

	saved := 0
	for page := 1; page <= m.MaxPages; page++ {
		body, err := m.Fetcher.Fetch(ctx, m.Resolver.Resolve(categoryPath, page))
		if err != nil {
			return saved, err
		}
		cands, err := m.Extractor.Extract(body, base)
		if err != nil || len(cands) == 0 {
			break
		}
		name := filepath.Join(m.Dir, "kategori", slug+"_"+strconv.Itoa(page)+".html")
		if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
			return saved, err
		}
		saved++
		log.WithFields(log.Fields{"slug": slug, "page": page, "products": len(cands)}).Info("page saved")
	}
	return saved, nil
}
