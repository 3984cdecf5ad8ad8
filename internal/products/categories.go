package products

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tuninghub/internal/catalog"
)

// CategoryHandler exposes the static taxonomy for menus and admin
// selectors.
type CategoryHandler struct {
	Taxonomy *catalog.Taxonomy
}

func NewCategoryHandler(t *catalog.Taxonomy) *CategoryHandler {
	return &CategoryHandler{Taxonomy: t}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.tree)
	rg.GET("/search", h.search)
}

func (h *CategoryHandler) tree(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tree":    h.Taxonomy.Roots(),
		"groups":  h.Taxonomy.GroupedPaths(),
	})
}

func (h *CategoryHandler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "results": []catalog.PathOption{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": h.Taxonomy.Search(q)})
}
