package docstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuninghub/internal/docstore"
	"tuninghub/pkg/database"
)

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *docstore.SQLite {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return docstore.NewSQLite(db)
}

func TestSQLiteAddGetList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Add(ctx, "widgets", "a", widget{Name: "alpha", Count: 1}))
	require.NoError(t, s.Add(ctx, "widgets", "b", widget{Name: "beta", Count: 2}))
	require.NoError(t, s.Add(ctx, "other", "a", widget{Name: "elsewhere"}))

	got, err := docstore.GetAs[widget](ctx, s, "widgets", "a")
	require.NoError(t, err)
	assert.Equal(t, widget{Name: "alpha", Count: 1}, got)

	all, err := docstore.ListAs[widget](ctx, s, "widgets")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "beta", all[1].Name)
}

func TestSQLiteAddDuplicate(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Add(ctx, "widgets", "a", widget{Name: "alpha"}))
	err := s.Add(ctx, "widgets", "a", widget{Name: "again"})
	assert.ErrorIs(t, err, docstore.ErrExists)
}

func TestSQLitePutUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, "widgets", "a", widget{Name: "alpha", Count: 1}))
	require.NoError(t, s.Put(ctx, "widgets", "a", widget{Name: "alpha", Count: 5}))

	got, err := docstore.GetAs[widget](ctx, s, "widgets", "a")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count)

	require.NoError(t, s.Update(ctx, "widgets", "a", widget{Name: "renamed"}))
	assert.ErrorIs(t, s.Update(ctx, "widgets", "missing", widget{}), docstore.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "widgets", "a"))
	assert.ErrorIs(t, s.Delete(ctx, "widgets", "a"), docstore.ErrNotFound)

	_, err = s.Get(ctx, "widgets", "a")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestSQLiteRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Put(context.Background(), "widgets", "", widget{}))
}
