package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tuninghub/internal/catalog"
	"tuninghub/internal/docstore"
	"tuninghub/internal/feed"
	"tuninghub/internal/overrides"
	"tuninghub/internal/products"
	"tuninghub/internal/scraper"
	"tuninghub/internal/sources"
	"tuninghub/pkg/utils"
)

func main() {
	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	openCtx, cancelOpen := context.WithTimeout(context.Background(), 15*time.Second)
	store, closeStore, err := docstore.Open(openCtx, cfg)
	cancelOpen()
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	defer closeStore()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := feed.NewHub(50)
	router.GET("/ws", feed.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "upstream": cfg.UpstreamBase})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": stats.WSClients,
		})
	})

	sourceRepo := sources.NewRepo(store)
	overrideRepo := overrides.NewRepo(store)
	productRepo := products.NewRepo(store)

	agg := scraper.NewAggregatorFromConfig(cfg)
	agg.Sources = sourceRepo
	agg.Overrides = overrideRepo
	agg.Local = productRepo

	api := router.Group("/api")
	admin := api.Group("/admin")

	// Products (public) and first-party catalog (admin)
	productHandler := products.NewHandler(productRepo, agg, hub)
	productHandler.RegisterPublicRoutes(api.Group("/products"))
	productHandler.RegisterAdminRoutes(admin.Group("/products"))

	overrideHandler := overrides.NewHandler(overrideRepo, hub)
	overrideHandler.RegisterPublicRoutes(api.Group("/products"))
	overrideHandler.RegisterAdminRoutes(admin.Group("/products/overrides"))

	sourceHandler := sources.NewHandler(sourceRepo, hub)
	sourceHandler.RegisterRoutes(admin.Group("/category-external-sources"))

	products.NewCategoryHandler(catalog.Default()).RegisterRoutes(api.Group("/categories"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Errorf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("server stopped")
}
