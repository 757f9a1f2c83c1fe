package main

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/adapters/cache"
	"delivery-cost-service/internal/adapters/catalog"
	"delivery-cost-service/internal/api"
	"delivery-cost-service/internal/buildinfo"
	"delivery-cost-service/internal/config"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/metrics"
	"delivery-cost-service/internal/platform/db"
	"delivery-cost-service/internal/ports"
	"delivery-cost-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the catalog source and optional cost cache behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := buildinfo.Info()
	log.Printf("starting delivery cost service version=%s commit=%s", info["version"], info["commit"])

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf(
		"catalog loaded: location=%s centers=%v fingerprint=%s",
		cat.Location(), cat.Centers(), cat.Fingerprint(),
	)

	var costCache ports.CostCache
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCostCacheFromURL(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		costCache = rc
		log.Printf("cost cache enabled: ttl=%s", cfg.CacheTTL)
	}

	optimizer := services.NewRouteOptimizer(cat, cfg.MaxRouteCenters)
	costs := services.NewCostService(optimizer, costCache, cfg.CacheTTL)

	limiter := api.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	metrics.RegisterDefault()
	router := api.NewRouter(costs, cat, limiter)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

// loadCatalog picks the catalog source: DATABASE_URL, then CATALOG_PATH,
// then the embedded default.
func loadCatalog(ctx context.Context, cfg *config.Config) (*domain.Catalog, error) {
	var src ports.CatalogSource
	var conn *sql.DB
	switch {
	case cfg.DatabaseURL != "":
		var err error
		conn, err = db.Open(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		src = catalog.NewSQLSource(conn)
		log.Println("catalog source: database")
	case cfg.CatalogPath != "":
		src = catalog.NewFileSource(cfg.CatalogPath)
		log.Printf("catalog source: file path=%s", cfg.CatalogPath)
	default:
		src = catalog.DefaultSource{}
		log.Println("catalog source: embedded default")
	}

	cat, err := catalog.Build(ctx, src)
	if conn != nil {
		// The catalog is immutable once built; the connection is not needed afterwards.
		if cerr := conn.Close(); cerr != nil {
			log.Printf("close catalog database: %v", cerr)
		}
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}
