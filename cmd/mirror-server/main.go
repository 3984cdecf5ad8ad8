package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"tuninghub/internal/scraper"
)

const emptyListing = `<html><body><p>Bu kategoride ürün bulunamadı.</p></body></html>`

func main() {
	var (
		addr = flag.String("addr", ":9000", "listen address")
		dir  = flag.String("dir", "data/mirror", "directory of saved listing pages")
	)
	flag.Parse()

	// Point TUNINGHUB_UPSTREAM_BASE at this server to crawl offline.
	log.Printf("mirror-server serving %s on http://localhost%s", *dir, *addr)
	log.Fatal(http.ListenAndServe(*addr, newMirror(*dir)))
}

// newMirror serves saved upstream pages. A listing page is looked up as
// {dir}/kategori/{slug}_{page}.html, with {slug}.html also accepted for
// page 1. Missing pages answer with an empty listing so crawls terminate
// the way they do upstream. Everything else under dir is served as-is.
func newMirror(dir string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /kategori/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := filepath.Base(r.PathValue("slug"))
		page := 1
		if tp, err := strconv.Atoi(r.URL.Query().Get(scraper.PageParam)); err == nil && tp > 1 {
			page = tp
		}

		candidates := []string{filepath.Join(dir, "kategori", slug+"_"+strconv.Itoa(page)+".html")}
		if page == 1 {
			candidates = append(candidates, filepath.Join(dir, "kategori", slug+".html"))
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		for _, p := range candidates {
			b, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			_, _ = w.Write(b)
			return
		}
		log.WithFields(log.Fields{"slug": slug, "page": page}).Debug("[mirror] no saved page")
		_, _ = w.Write([]byte(emptyListing))
	})

	mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	return mux
}
