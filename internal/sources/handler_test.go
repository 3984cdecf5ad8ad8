package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuninghub/internal/docstore"
	"tuninghub/internal/feed"
	"tuninghub/pkg/database"
	"tuninghub/pkg/models"
)

type recorder struct{ events []feed.Event }

func (r *recorder) Publish(ev feed.Event) { r.events = append(r.events, ev) }

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "sources.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewRepo(docstore.NewSQLite(db))
}

func newTestRouter(t *testing.T) (*gin.Engine, *Repo, *recorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := newTestRepo(t)
	rec := &recorder{}
	r := gin.New()
	NewHandler(repo, rec).RegisterRoutes(r.Group("/api/admin/category-external-sources"))
	return r, repo, rec
}

type apiResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Source  models.ExternalSource   `json:"source"`
	Sources []models.ExternalSource `json:"sources"`
}

func do(t *testing.T, r http.Handler, method, target string, body any) apiResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateListDeleteSource(t *testing.T) {
	r, _, rec := newTestRouter(t)
	const base = "/api/admin/category-external-sources"

	res := do(t, r, http.MethodPost, base, createReq{
		CategoryPath: "body-kit-urunleri/spoiler/",
		URL:          " https://www.example-tuning.com/spoilers ",
		Label:        "Example",
	})
	require.True(t, res.Success, res.Error)
	assert.NotEmpty(t, res.Source.ID)
	assert.Equal(t, "body-kit-urunleri/spoiler", res.Source.CategoryPath)
	assert.Equal(t, "https://www.example-tuning.com/spoilers", res.Source.URL)
	id := res.Source.ID

	res = do(t, r, http.MethodPost, base, createReq{CategoryPath: "dis-aksesuarlar/pacalik", URL: "http://other.test/p"})
	require.True(t, res.Success)

	res = do(t, r, http.MethodGet, base+"?categoryPath=body-kit-urunleri/spoiler", nil)
	require.True(t, res.Success)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "Example", res.Sources[0].Label)

	res = do(t, r, http.MethodGet, base, nil)
	assert.Len(t, res.Sources, 2)

	res = do(t, r, http.MethodDelete, base+"?id="+id, nil)
	assert.True(t, res.Success)

	res = do(t, r, http.MethodDelete, base+"?id="+id, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "not found", res.Error)

	require.Len(t, rec.events, 3)
	assert.Equal(t, feed.TypeSourceAdd, rec.events[0].Type)
	assert.Equal(t, feed.TypeSourceDelete, rec.events[2].Type)
	assert.Equal(t, id, rec.events[2].SourceID)
}

func TestCreateSourceValidation(t *testing.T) {
	r, _, rec := newTestRouter(t)
	const base = "/api/admin/category-external-sources"

	tests := []struct {
		name string
		body createReq
	}{
		{"missing category", createReq{URL: "https://x.test/a"}},
		{"missing url", createReq{CategoryPath: "spoiler"}},
		{"relative url", createReq{CategoryPath: "spoiler", URL: "/kategori/spoyler"}},
		{"ftp url", createReq{CategoryPath: "spoiler", URL: "ftp://x.test/a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, r, http.MethodPost, base, tt.body)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
		})
	}

	req := httptest.NewRequest(http.MethodPost, base, bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	res := do(t, r, http.MethodDelete, base, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "id required", res.Error)

	assert.Empty(t, rec.events)
}

func TestListByCategoryIsExact(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Add(ctx, "body-kit-urunleri", "https://a.test/", "")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "body-kit-urunleri/spoiler", "https://b.test/", "")
	require.NoError(t, err)

	got, err := repo.ListByCategory(ctx, "body-kit-urunleri")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://a.test/", got[0].URL)

	got, err = repo.ListByCategory(ctx, "nothing-here")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
