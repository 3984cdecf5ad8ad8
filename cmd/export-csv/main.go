package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"tuninghub/internal/catalog"
	"tuninghub/internal/scraper"
	"tuninghub/pkg/models"
	"tuninghub/pkg/utils"
)

var header = []string{"category", "id", "name", "source", "product_url", "image_url", "out_of_stock", "price"}

func main() {
	var (
		out        = flag.String("out", "data/products.csv", "output CSV path")
		categories = flag.String("categories", "", "comma separated category paths (default: every taxonomy path)")
		all        = flag.Bool("all", true, "walk every page of each category")
	)
	flag.Parse()

	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	paths := splitPaths(*categories)
	if len(paths) == 0 {
		paths = catalog.Default().Paths()
	}

	agg := scraper.NewAggregatorFromConfig(cfg)

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("create output dir failed: %v", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s failed: %v", *out, err)
	}
	defer f.Close()

	ctx := context.Background()
	total := 0
	err = writeCSV(f, paths, func(path string) []models.CanonicalProduct {
		res := agg.Aggregate(ctx, path, scraper.Options{AllPages: *all})
		if res.Err != "" {
			log.WithField("category", path).Warn(res.Err)
		}
		total += len(res.Products)
		log.WithFields(log.Fields{"category": path, "products": len(res.Products)}).Info("category exported")
		return res.Products
	})
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	log.Printf("exported %d products from %d categories to %s", total, len(paths), *out)
}

// writeCSV writes one row per product of every category, in the order the
// crawl returns them.
func writeCSV(w io.Writer, paths []string, crawl func(path string) []models.CanonicalProduct) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, path := range paths {
		for _, p := range crawl(path) {
			price := ""
			if p.Price != nil {
				price = strconv.FormatFloat(*p.Price, 'f', 2, 64)
			}
			if err := cw.Write([]string{
				path,
				p.ID,
				p.Name,
				p.Source,
				p.ProductURL,
				p.ImageURL,
				strconv.FormatBool(p.OutOfStock),
				price,
			}); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = catalog.CleanPath(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
