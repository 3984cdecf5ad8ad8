package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"tuninghub/internal/docstore"
	"tuninghub/internal/overrides"
	"tuninghub/internal/scraper"
	"tuninghub/internal/sources"
	"tuninghub/pkg/utils"
)

func main() {
	var (
		category = flag.String("category", "body-kit-urunleri/body-kit-setler", "category path to crawl")
		page     = flag.Int("page", 1, "page to fetch (ignored with -all)")
		all      = flag.Bool("all", false, "walk every page")
		withDB   = flag.Bool("db", false, "include registered sources and stock overrides from the store")
	)
	flag.Parse()

	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AggregateTimeout+cfg.FetchTimeout)
	defer cancel()

	agg := scraper.NewAggregatorFromConfig(cfg)
	if *withDB {
		store, closeStore, err := docstore.Open(ctx, cfg)
		if err != nil {
			log.Fatalf("store open failed: %v", err)
		}
		defer closeStore()
		agg.Sources = sources.NewRepo(store)
		agg.Overrides = overrides.NewRepo(store)
	}

	res := agg.Aggregate(ctx, *category, scraper.Options{Page: *page, AllPages: *all})
	for _, s := range res.Sources {
		log.WithFields(log.Fields{"pages": s.Pages, "products": s.Products, "error": s.Error}).Infof("source %s", s.Name)
	}
	if res.Err != "" {
		log.Fatalf("crawl failed: %s", res.Err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Products); err != nil {
		log.Fatalf("encode failed: %v", err)
	}
	log.Printf("crawled %d products from %s", res.TotalCount, *category)
}
