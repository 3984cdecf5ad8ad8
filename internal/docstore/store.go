// Package docstore is a small collection/id document store. Documents are
// JSON blobs; callers decode them into their own types.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("docstore: not found")
	ErrExists   = errors.New("docstore: already exists")
)

type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is implemented by SQLite and Postgres.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	// Add inserts a new document and fails with ErrExists on id clash.
	Add(ctx context.Context, collection, id string, v any) error
	// Put inserts or replaces.
	Put(ctx context.Context, collection, id string, v any) error
	// Update replaces an existing document and fails with ErrNotFound.
	Update(ctx context.Context, collection, id string, v any) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}

// GetAs loads one document and decodes it into T.
func GetAs[T any](ctx context.Context, s Store, collection, id string) (T, error) {
	var out T
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(doc.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return out, nil
}

// ListAs decodes every document of a collection, oldest first. Documents
// that fail to decode are skipped.
func ListAs[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Data, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func encode(collection, id string, v any) ([]byte, error) {
	if collection == "" || id == "" {
		return nil, fmt.Errorf("docstore: collection and id required")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}
	return b, nil
}
