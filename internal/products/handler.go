package products

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tuninghub/internal/docstore"
	"tuninghub/internal/feed"
	"tuninghub/internal/imageproxy"
	"tuninghub/internal/scraper"
	"tuninghub/pkg/models"
)

// DefaultCategoryPath is used when by-category gets no categoryPath.
const DefaultCategoryPath = "body-kit-setler"

type Aggregator interface {
	Aggregate(ctx context.Context, categoryPath string, opts scraper.Options) scraper.Result
}

type Handler struct {
	Repo       *Repo
	Aggregator Aggregator
	Feed       feed.Publisher
}

func NewHandler(repo *Repo, agg Aggregator, pub feed.Publisher) *Handler {
	return &Handler{Repo: repo, Aggregator: agg, Feed: pub}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/by-category", h.byCategory) // GET /api/products/by-category
	rg.GET("", h.list)                   // GET /api/products?category=
	rg.GET("/:id", h.getByID)            // GET /api/products/:id
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)       // POST /api/admin/products
	rg.DELETE("/:id", h.delete) // DELETE /api/admin/products/:id
}

// byCategory always answers 200. Failures are reported in the body.
func (h *Handler) byCategory(c *gin.Context) {
	path := strings.TrimSpace(c.Query("categoryPath"))
	if path == "" {
		path = DefaultCategoryPath
	}

	// tp is the upstream's own name for the page number.
	pageRaw := c.Query("page")
	if pageRaw == "" {
		pageRaw = c.Query("tp")
	}
	opts := scraper.Options{
		Page:         parseInt(pageRaw, 1),
		AllPages:     parseBool(c.Query("allPages")),
		IncludeLocal: parseBool(c.Query("includeLocal")),
	}

	res := h.Aggregator.Aggregate(c.Request.Context(), path, opts)
	products := res.Products
	if products == nil {
		products = []models.CanonicalProduct{}
	}
	if parseBool(c.Query("proxyImages")) {
		for i := range products {
			products[i].DisplayImageURL = imageproxy.URL(products[i].ImageURL)
		}
	}

	body := gin.H{
		"success":    res.Err == "",
		"products":   products,
		"totalCount": len(products),
		"source":     res.Source,
		"sources":    res.Sources,
	}
	if res.Err != "" {
		body["error"] = res.Err
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.WithError(err).Error("[products] list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Error("[products] get failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid json"})
		return
	}

	p, err := h.Repo.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.WithError(err).Error("[products] create failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "create failed"})
		return
	}

	h.publish(feed.Event{Type: feed.TypeProductAdd, ProductID: p.ID, CategoryPath: p.Category})
	c.JSON(http.StatusOK, gin.H{"success": true, "id": p.ID})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "not found"})
			return
		}
		log.WithError(err).WithField("id", id).Error("[products] delete failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "delete failed"})
		return
	}

	h.publish(feed.Event{Type: feed.TypeProductDelete, ProductID: id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) publish(ev feed.Event) {
	if h.Feed != nil {
		h.Feed.Publish(ev)
	}
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
