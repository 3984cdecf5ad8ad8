package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHTML       = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage   = "tr-TR,tr;q=0.9,en;q=0.8"

	maxBodyBytes = 8 << 20
)

// Fetcher returns the raw HTML of a listing page.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// FetchError reports a non-2xx upstream response.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
}

// HTTPFetcher fetches pages the way a desktop browser navigating the
// upstream site would. Responses are never cached.
type HTTPFetcher struct {
	Client         *http.Client
	UserAgent      string
	AcceptLanguage string
	Limiter        *HostLimiter
}

func NewHTTPFetcher(timeout time.Duration, rps float64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		Client:         &http.Client{Timeout: timeout},
		UserAgent:      desktopUserAgent,
		AcceptLanguage: acceptLanguage,
		Limiter:        NewHostLimiter(rps, 1),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("fetch %s: invalid url", rawURL)
	}

	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx, u.Host); err != nil {
			return "", fmt.Errorf("fetch %s: %w", rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: build request: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", acceptHTML)
	req.Header.Set("Accept-Language", f.AcceptLanguage)
	req.Header.Set("Referer", u.Scheme+"://"+u.Host+"/")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", &FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return string(body), nil
}

// HostLimiter keeps one token bucket per upstream host.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewHostLimiter allows rps requests per second per host. rps <= 0
// disables limiting.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      limit,
		burst:    burst,
	}
}

func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(h.rps, h.burst)
		h.limiters[host] = l
	}
	h.mu.Unlock()
	return l.Wait(ctx)
}
