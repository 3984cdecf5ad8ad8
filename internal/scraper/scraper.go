package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"tuninghub/pkg/models"
)

// Source is one pageable upstream listing. The aggregator runs the same
// fetch/extract/score pipeline against every source of a category.
type Source interface {
	// Name is the label put on each product's Source field.
	Name() string
	// Tag prefixes product ids from this source.
	Tag() string
	// Base resolves relative links and images.
	Base() *url.URL
	PageURL(page int) string
}

type categorySource struct {
	resolver *Resolver
	path     string
	label    string
	base     *url.URL
}

// NewCategorySource is the primary source of a category: the upstream
// listing the resolver maps the path to.
func NewCategorySource(r *Resolver, categoryPath, label string) (Source, error) {
	base, err := url.Parse(r.Base)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid upstream base %q", r.Base)
	}
	return &categorySource{resolver: r, path: categoryPath, label: label, base: base}, nil
}

func (s *categorySource) Name() string { return s.label }

func (s *categorySource) Tag() string { return SourceTag(s.resolver.Base) }

func (s *categorySource) Base() *url.URL { return s.base }

func (s *categorySource) PageURL(page int) string { return s.resolver.Resolve(s.path, page) }

type registeredSource struct {
	src  models.ExternalSource
	base *url.URL
}

// NewRegisteredSource wraps an admin-registered listing URL.
func NewRegisteredSource(es models.ExternalSource) (Source, error) {
	u, err := url.Parse(strings.TrimSpace(es.URL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid source url %q", es.URL)
	}
	return &registeredSource{src: es, base: u}, nil
}

func (s *registeredSource) Name() string {
	if l := strings.TrimSpace(s.src.Label); l != "" {
		return l
	}
	return hostLabel(s.base)
}

func (s *registeredSource) Tag() string { return SourceTag(s.src.URL) }

func (s *registeredSource) Base() *url.URL { return s.base }

func (s *registeredSource) PageURL(page int) string { return WithPage(s.base.String(), page) }
