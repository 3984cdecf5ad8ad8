package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("tuninghub", flag.ExitOnError)
	baseURL := global.String("api", envOr("TUNINGHUB_API", defaultBaseURL), "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}
	rest := []string{}
	if len(args) > 2 {
		rest = args[2:]
	}

	// by-category can take a while with allPages
	client := &http.Client{Timeout: 90 * time.Second}

	switch cmd {
	case "products":
		handleProducts(ctx, client, *baseURL, sub, rest)
	case "sources":
		handleSources(ctx, client, *baseURL, sub, rest)
	case "overrides":
		handleOverrides(ctx, client, *baseURL, sub, rest)
	case "categories":
		handleCategories(ctx, client, *baseURL, sub, rest)
	case "feed":
		handleFeed(*baseURL, sub, rest)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleProducts(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "by-category":
		fs := flag.NewFlagSet("products by-category", flag.ExitOnError)
		path := fs.String("path", "", "category path")
		page := fs.Int("page", 1, "page number")
		all := fs.Bool("all", false, "walk every page")
		local := fs.Bool("local", false, "include first-party products")
		_ = fs.Parse(args)

		qv := url.Values{}
		if *path != "" {
			qv.Set("categoryPath", *path)
		}
		qv.Set("page", strconv.Itoa(*page))
		qv.Set("allPages", strconv.FormatBool(*all))
		qv.Set("includeLocal", strconv.FormatBool(*local))

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/products/by-category?"+qv.Encode(), nil, &resp); err != nil {
			log.Fatalf("by-category failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("products show", flag.ExitOnError)
		id := fs.String("id", "", "first-party product id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/products/"+url.PathEscape(*id), nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	case "out-of-stock":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/products/out-of-stock-ids", nil, &resp); err != nil {
			log.Fatalf("out-of-stock failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: tuninghub products <by-category|show|out-of-stock>")
	}
}

func handleSources(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	endpoint := baseURL + "/api/admin/category-external-sources"
	switch sub {
	case "list":
		fs := flag.NewFlagSet("sources list", flag.ExitOnError)
		path := fs.String("path", "", "only sources of this category path")
		_ = fs.Parse(args)

		target := endpoint
		if *path != "" {
			target += "?categoryPath=" + url.QueryEscape(*path)
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, target, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "add":
		fs := flag.NewFlagSet("sources add", flag.ExitOnError)
		path := fs.String("path", "", "category path")
		rawURL := fs.String("url", "", "listing URL")
		label := fs.String("label", "", "display label")
		_ = fs.Parse(args)
		if *path == "" || *rawURL == "" {
			log.Fatal("path and url are required")
		}

		payload := map[string]string{"categoryPath": *path, "url": *rawURL, "label": *label}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, endpoint, payload, &resp); err != nil {
			log.Fatalf("add failed: %v", err)
		}
		printJSON(resp)
	case "rm":
		fs := flag.NewFlagSet("sources rm", flag.ExitOnError)
		id := fs.String("id", "", "source id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, endpoint+"?id="+url.QueryEscape(*id), nil, &resp); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		fmt.Println("✅ removed")
	default:
		log.Fatal("usage: tuninghub sources <list|add|rm>")
	}
}

func handleOverrides(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	endpoint := baseURL + "/api/admin/products/overrides"
	switch sub {
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, endpoint, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "set":
		fs := flag.NewFlagSet("overrides set", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		oos := fs.Bool("oos", false, "mark out of stock")
		price := fs.Float64("price", -1, "override price (negative keeps the stored one)")
		clearPrice := fs.Bool("clear-price", false, "drop the stored override price")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("id is required")
		}

		payload := map[string]any{"productId": *id, "outOfStock": *oos}
		if *price >= 0 {
			payload["price"] = *price
		}
		if *clearPrice {
			payload["clearPrice"] = true
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, endpoint, payload, &resp); err != nil {
			log.Fatalf("set failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: tuninghub overrides <list|set>")
	}
}

func handleCategories(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "search":
		fs := flag.NewFlagSet("categories search", flag.ExitOnError)
		q := fs.String("q", "", "search text")
		_ = fs.Parse(args)

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/categories/search?q="+url.QueryEscape(*q), nil, &resp); err != nil {
			log.Fatalf("search failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: tuninghub categories search")
	}
}

func handleFeed(baseURL, sub string, args []string) {
	switch sub {
	case "listen":
		fs := flag.NewFlagSet("feed listen", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			endpoint, err = websocketURL(baseURL, "/ws")
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		for {
			if err := runWebSocket(endpoint); err != nil {
				log.Printf("[feed] disconnected: %v", err)
			}
			time.Sleep(1 * time.Second) // auto reconnect
		}
	default:
		log.Fatal("usage: tuninghub feed listen")
	}
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[feed] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

// doJSON sends payload as JSON and decodes the reply into out. Admin
// endpoints answer 200 with success:false on failure, so that is turned
// into an error too.
func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}

	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err == nil && env.Success != nil && !*env.Success {
		return fmt.Errorf("%s %s: %s", method, endpoint, env.Error)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func printUsage() {
	fmt.Println("tuninghub <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  products by-category|show|out-of-stock")
	fmt.Println("  sources list|add|rm")
	fmt.Println("  overrides list|set")
	fmt.Println("  categories search")
	fmt.Println("  feed listen")
}
