package feed

import "time"

const (
	TypeOverrideUpdate = "override.update"
	TypeSourceAdd      = "source.add"
	TypeSourceDelete   = "source.delete"
	TypeProductAdd     = "product.add"
	TypeProductDelete  = "product.delete"
)

// Event is one admin change pushed to connected clients. Storefront pages
// use override events to refresh stock badges without reloading.
type Event struct {
	Type         string    `json:"type"`
	ProductID    string    `json:"productId,omitempty"`
	SourceID     string    `json:"sourceId,omitempty"`
	CategoryPath string    `json:"categoryPath,omitempty"`
	OutOfStock   *bool     `json:"outOfStock,omitempty"`
	At           time.Time `json:"at"`
}

// Publisher is what handlers need from the hub. A nil Publisher is valid
// for handlers and means no feed.
type Publisher interface {
	Publish(ev Event)
}
