package models

import "time"

// CanonicalProduct is the normalized listing entry returned by the
// aggregation layer. External products get a hash-derived ID so the same
// detail page always maps to the same entry.
type CanonicalProduct struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	ProductURL string   `json:"productUrl,omitempty"`
	Source     string   `json:"source,omitempty"`
	OutOfStock bool     `json:"outOfStock"`
	Price      *float64 `json:"price,omitempty"`

	// DisplayImageURL is ImageURL routed through the site's image proxy.
	// Only set when the caller asks for it.
	DisplayImageURL string `json:"displayImageUrl,omitempty"`
}

// Product is a first-party catalog entry managed from the admin panel.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"` // category path, e.g. "body-kit-urunleri/spoiler"
	ImageURL    string     `json:"imageUrl,omitempty"`
	Features    []string   `json:"features,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
