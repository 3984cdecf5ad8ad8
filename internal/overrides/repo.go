package overrides

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tuninghub/internal/docstore"
	"tuninghub/pkg/models"
)

// Collection holds one document per product id.
const Collection = "productOverrides"

var ErrInvalid = errors.New("invalid override")

type Repo struct {
	Store docstore.Store
}

func NewRepo(store docstore.Store) *Repo {
	return &Repo{Store: store}
}

func (r *Repo) List(ctx context.Context) ([]models.ProductOverride, error) {
	out, err := docstore.ListAs[models.ProductOverride](ctx, r.Store, Collection)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return out, nil
}

// Map keys every override by product id. The aggregator reads it once per
// request.
func (r *Repo) Map(ctx context.Context) (map[string]models.ProductOverride, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.ProductOverride, len(list))
	for _, o := range list {
		out[o.ProductID] = o
	}
	return out, nil
}

// Upsert sets the stock flag of productID. A nil price keeps the price
// stored earlier unless clearPrice is set.
func (r *Repo) Upsert(ctx context.Context, productID string, outOfStock bool, price *float64, clearPrice bool) (models.ProductOverride, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return models.ProductOverride{}, fmt.Errorf("%w: productId required", ErrInvalid)
	}
	if price != nil && *price < 0 {
		return models.ProductOverride{}, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	if price == nil && !clearPrice {
		prev, err := docstore.GetAs[models.ProductOverride](ctx, r.Store, Collection, productID)
		switch {
		case err == nil:
			price = prev.Price
		case !errors.Is(err, docstore.ErrNotFound):
			return models.ProductOverride{}, fmt.Errorf("get override %s: %w", productID, err)
		}
	}

	o := models.ProductOverride{
		ProductID:  productID,
		OutOfStock: outOfStock,
		Price:      price,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := r.Store.Put(ctx, Collection, productID, o); err != nil {
		return models.ProductOverride{}, fmt.Errorf("put override %s: %w", productID, err)
	}
	return o, nil
}

// OutOfStockIDs lists flagged product ids in sorted order.
func (r *Repo) OutOfStockIDs(ctx context.Context) ([]string, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, o := range list {
		if o.OutOfStock {
			ids = append(ids, o.ProductID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
