package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tuninghub/internal/catalog"
	"tuninghub/internal/docstore"
	"tuninghub/internal/products"
	"tuninghub/pkg/models"
	"tuninghub/pkg/utils"
)

func main() {
	var (
		in     = flag.String("in", "data/products.csv", "input CSV of first-party products")
		strict = flag.Bool("strict", false, "reject categories missing from the taxonomy")
	)
	flag.Parse()

	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, closeStore, err := docstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	defer closeStore()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open %s failed: %v", *in, err)
	}
	defer f.Close()

	items, err := readProducts(f)
	if err != nil {
		log.Fatalf("read %s failed: %v", *in, err)
	}

	tax := catalog.Default()
	repo := products.NewRepo(store)
	imported := 0
	for _, p := range items {
		if _, ok := tax.Lookup(p.Category); !ok {
			if *strict {
				log.WithField("category", p.Category).Warnf("skipping %q: unknown category", p.Name)
				continue
			}
			log.WithField("category", p.Category).Debugf("%q filed under a category outside the taxonomy", p.Name)
		}
		if _, err := repo.Create(ctx, p); err != nil {
			log.WithError(err).Warnf("skipping %q", p.Name)
			continue
		}
		imported++
	}

	log.Printf("imported %d of %d products from %s", imported, len(items), *in)
}

// readProducts parses rows with the columns name, category, description,
// image_url, price and features ("|" separated). Rows without a name or
// category are skipped.
func readProducts(src io.Reader) ([]models.Product, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	var out []models.Product
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		name := valueAt(header, row, "name")
		category := catalog.CleanPath(valueAt(header, row, "category"))
		if name == "" || category == "" {
			continue
		}

		price, err := parsePrice(valueAt(header, row, "price"))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse price: %w", line, err)
		}

		out = append(out, models.Product{
			Name:        name,
			Category:    category,
			Description: valueAt(header, row, "description"),
			ImageURL:    valueAt(header, row, "image_url"),
			Features:    splitFeatures(valueAt(header, row, "features")),
			Price:       price,
		})
	}
	return out, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePrice accepts "1250.50" and the Turkish "1.250,50".
func parsePrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func splitFeatures(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, "|") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
