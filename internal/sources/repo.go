package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"tuninghub/internal/catalog"
	"tuninghub/internal/docstore"
	"tuninghub/pkg/models"
)

// Collection holds one document per registered source.
const Collection = "categoryExternalSources"

var ErrInvalid = errors.New("invalid source")

type Repo struct {
	Store docstore.Store
}

func NewRepo(store docstore.Store) *Repo {
	return &Repo{Store: store}
}

func (r *Repo) List(ctx context.Context) ([]models.ExternalSource, error) {
	out, err := docstore.ListAs[models.ExternalSource](ctx, r.Store, Collection)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return out, nil
}

// ListByCategory returns the sources registered for exactly categoryPath,
// oldest first.
func (r *Repo) ListByCategory(ctx context.Context, categoryPath string) ([]models.ExternalSource, error) {
	path := catalog.CleanPath(categoryPath)
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ExternalSource, 0)
	for _, s := range all {
		if catalog.CleanPath(s.CategoryPath) == path {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *Repo) Add(ctx context.Context, categoryPath, rawURL, label string) (models.ExternalSource, error) {
	path := catalog.CleanPath(categoryPath)
	if path == "" {
		return models.ExternalSource{}, fmt.Errorf("%w: categoryPath required", ErrInvalid)
	}
	clean, err := ValidateURL(rawURL)
	if err != nil {
		return models.ExternalSource{}, err
	}

	src := models.ExternalSource{
		ID:           uuid.NewString(),
		CategoryPath: path,
		URL:          clean,
		Label:        strings.TrimSpace(label),
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.Store.Add(ctx, Collection, src.ID, src); err != nil {
		return models.ExternalSource{}, fmt.Errorf("add source: %w", err)
	}
	return src, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id required", ErrInvalid)
	}
	if err := r.Store.Delete(ctx, Collection, id); err != nil {
		return fmt.Errorf("delete source %s: %w", id, err)
	}
	return nil
}

// ValidateURL accepts absolute http(s) listing URLs only.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: url required", ErrInvalid)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: url must be an absolute http(s) address", ErrInvalid)
	}
	return u.String(), nil
}
