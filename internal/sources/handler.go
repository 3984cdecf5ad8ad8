package sources

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tuninghub/internal/docstore"
	"tuninghub/internal/feed"
)

// Handler serves the admin endpoints for extra category sources. Errors
// come back as {success:false} with status 200, which is what the admin
// panel expects.
type Handler struct {
	Repo *Repo
	Feed feed.Publisher
}

func NewHandler(repo *Repo, pub feed.Publisher) *Handler {
	return &Handler{Repo: repo, Feed: pub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)      // GET /api/admin/category-external-sources?categoryPath=
	rg.POST("", h.create)   // POST /api/admin/category-external-sources
	rg.DELETE("", h.delete) // DELETE /api/admin/category-external-sources?id=
}

type createReq struct {
	CategoryPath string `json:"categoryPath"`
	URL          string `json:"url"`
	Label        string `json:"label"`
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	path := strings.TrimSpace(c.Query("categoryPath"))

	var (
		items any
		err   error
	)
	if path != "" {
		items, err = h.Repo.ListByCategory(ctx, path)
	} else {
		items, err = h.Repo.List(ctx)
	}
	if err != nil {
		log.WithError(err).Error("[sources] list failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sources": items})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid json"})
		return
	}

	src, err := h.Repo.Add(c.Request.Context(), req.CategoryPath, req.URL, req.Label)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.WithError(err).Error("[sources] add failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "add failed"})
		return
	}

	h.publish(feed.Event{Type: feed.TypeSourceAdd, SourceID: src.ID, CategoryPath: src.CategoryPath})
	c.JSON(http.StatusOK, gin.H{"success": true, "source": src})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "id required"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "not found"})
			return
		}
		log.WithError(err).WithField("id", id).Error("[sources] delete failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "delete failed"})
		return
	}

	h.publish(feed.Event{Type: feed.TypeSourceDelete, SourceID: id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) publish(ev feed.Event) {
	if h.Feed != nil {
		h.Feed.Publish(ev)
	}
}
