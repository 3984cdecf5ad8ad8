package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tuninghub/internal/catalog"
	"tuninghub/internal/docstore"
	"tuninghub/pkg/models"
)

// Collection holds first-party catalog products.
const Collection = "products"

var ErrInvalid = errors.New("invalid product")

type Repo struct {
	Store docstore.Store
}

func NewRepo(store docstore.Store) *Repo {
	return &Repo{Store: store}
}

// GetByID returns nil, nil when the product does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	p, err := docstore.GetAs[models.Product](ctx, r.Store, Collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

// List returns every product, or only those filed under category when it
// is set.
func (r *Repo) List(ctx context.Context, category string) ([]models.Product, error) {
	all, err := docstore.ListAs[models.Product](ctx, r.Store, Collection)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if catalog.CleanPath(category) == "" {
		return all, nil
	}
	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if catalog.IsUnder(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Repo) ListByCategory(ctx context.Context, categoryPath string) ([]models.Product, error) {
	return r.List(ctx, categoryPath)
}

// Create assigns a fresh id and creation time and stores p.
func (r *Repo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = catalog.CleanPath(p.Category)
	if p.Name == "" {
		return models.Product{}, fmt.Errorf("%w: name required", ErrInvalid)
	}
	if p.Category == "" {
		return models.Product{}, fmt.Errorf("%w: category required", ErrInvalid)
	}
	if p.Price != nil && *p.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil
	if err := r.Store.Add(ctx, Collection, p.ID, p); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.Store.Delete(ctx, Collection, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
