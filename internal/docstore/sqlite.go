package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

type SQLite struct {
	DB *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{DB: db}
}

func (s *SQLite) Get(ctx context.Context, collection, id string) (Document, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = ? AND id = ?
	`, collection, id)

	doc, err := scanSQLiteDoc(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *SQLite) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = ?
		ORDER BY created_at ASC, id ASC
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanSQLiteDoc(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s scan: %w", collection, err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s rows: %w", collection, err)
	}
	return out, nil
}

func (s *SQLite) Add(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	now := formatTime(time.Now())
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, collection, id, string(b), now, now)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
			return ErrExists
		}
		return fmt.Errorf("add %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLite) Put(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	now := formatTime(time.Now())
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET
		  data = excluded.data,
		  updated_at = excluded.updated_at
	`, collection, id, string(b), now, now)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, collection, id string, v any) error {
	b, err := encode(collection, id, v)
	if err != nil {
		return err
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE documents SET data = ?, updated_at = ?
		WHERE collection = ? AND id = ?
	`, string(b), formatTime(time.Now()), collection, id)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, collection, id string) error {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = ? AND id = ?
	`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteDoc(r rowScanner) (Document, error) {
	var (
		doc              Document
		data             string
		created, updated string
	)
	if err := r.Scan(&doc.ID, &data, &created, &updated); err != nil {
		return Document{}, err
	}
	doc.Data = []byte(data)
	doc.CreatedAt = parseTime(created)
	doc.UpdatedAt = parseTime(updated)
	return doc, nil
}

// timeLayout keeps every fraction digit so stored values sort in time
// order as plain text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime also accepts rows written with the variable-width RFC 3339
// layout.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
