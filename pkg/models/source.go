package models

import "time"

// ExternalSource binds an extra upstream listing URL to a category path.
type ExternalSource struct {
	ID           string    `json:"id"`
	CategoryPath string    `json:"categoryPath"`
	URL          string    `json:"url"`
	Label        string    `json:"label,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProductOverride carries admin-set stock and price flags. ProductID uses
// the same namespace as CanonicalProduct.ID.
type ProductOverride struct {
	ProductID  string    `json:"productId"`
	OutOfStock bool      `json:"outOfStock"`
	Price      *float64  `json:"price,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
