package overrides

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tuninghub/internal/feed"
)

type Handler struct {
	Repo *Repo
	Feed feed.Publisher
}

func NewHandler(repo *Repo, pub feed.Publisher) *Handler {
	return &Handler{Repo: repo, Feed: pub}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/out-of-stock-ids", h.outOfStockIDs) // GET /api/products/out-of-stock-ids
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)    // GET /api/admin/products/overrides
	rg.POST("", h.upsert) // POST /api/admin/products/overrides
}

type upsertReq struct {
	ProductID  string   `json:"productId"`
	OutOfStock bool     `json:"outOfStock"`
	Price      *float64 `json:"price"`
	ClearPrice bool     `json:"clearPrice"`
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[overrides] list failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "overrides": items})
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid json"})
		return
	}

	o, err := h.Repo.Upsert(c.Request.Context(), req.ProductID, req.OutOfStock, req.Price, req.ClearPrice)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.WithError(err).WithField("product_id", req.ProductID).Error("[overrides] upsert failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "save failed"})
		return
	}

	if h.Feed != nil {
		out := o.OutOfStock
		h.Feed.Publish(feed.Event{Type: feed.TypeOverrideUpdate, ProductID: o.ProductID, OutOfStock: &out})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "override": o})
}

func (h *Handler) outOfStockIDs(c *gin.Context) {
	ids, err := h.Repo.OutOfStockIDs(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[overrides] out-of-stock ids failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "list failed", "ids": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ids": ids})
}
