package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{Pool: pool}
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	var (
		doc  Document
		data []byte
	)
	err := p.Pool.QueryRow(ctx, `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&doc.ID, &data, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc.Data = data
	return doc, nil
}

func (p *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC, id ASC
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var (
			doc  Document
			data []byte
		)
		if err := rows.Scan(&doc.ID, &data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list %s scan: %w", collection, err)
		}
		doc.Data = data
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s rows: %w", collection, err)
	}
	return out, nil
}

func (p *Postgres) Add(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	_, err = p.Pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
	`, collection, id, b)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrExists
		}
		return fmt.Errorf("add %s/%s: %w", collection, id, err)
	}
	return nil
}

func (p *Postgres) Put(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	_, err = p.Pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET
		  data = EXCLUDED.data,
		  updated_at = now()
	`, collection, id, b)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (p *Postgres) Update(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	tag, err := p.Pool.Exec(ctx, `
		UPDATE documents SET data = $3, updated_at = now()
		WHERE collection = $1 AND id = $2
	`, collection, id, b)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	tag, err := p.Pool.Exec(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}
