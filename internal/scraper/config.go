package scraper

import (
	"net/url"

	log "github.com/sirupsen/logrus"

	"tuninghub/pkg/utils"
)

// NewAggregatorFromConfig builds an aggregator against cfg's upstream with
// the configured limits. Collaborators (sources, overrides, local catalog)
// are left for the caller to attach.
func NewAggregatorFromConfig(cfg utils.AppConfig) *Aggregator {
	a := NewAggregator(NewResolver(cfg.UpstreamBase), NewHTTPFetcher(cfg.FetchTimeout, cfg.UpstreamRPS))
	a.MaxDuration = cfg.AggregateTimeout
	a.MaxPages = cfg.MaxPages
	a.MaxProducts = cfg.MaxProducts
	a.Concurrency = cfg.SourceConcurrency

	if cfg.SiteBase != "" {
		u, err := url.Parse(cfg.SiteBase)
		if err != nil || !u.IsAbs() {
			log.WithField("site_base", cfg.SiteBase).Warn("[scraper] site base is not an absolute url, relative local images will be dropped")
		} else {
			a.LocalBase = u
		}
	}
	return a
}
