package services

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/metrics"
	"delivery-cost-service/internal/platform/obs"
	"delivery-cost-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// CostService answers minimum-cost queries for orders.
//
// It fronts a RouteOptimizer with an optional cost cache and collapses
// concurrent computations of the same order into one. Cache failures degrade
// to a direct computation and are never returned to the caller.
type CostService struct {
	Optimizer *RouteOptimizer
	Cache     ports.CostCache
	CacheTTL  time.Duration

	group singleflight.Group
}

func NewCostService(optimizer *RouteOptimizer, cache ports.CostCache, ttl time.Duration) *CostService {
	return &CostService{Optimizer: optimizer, Cache: cache, CacheTTL: ttl}
}

// MinimumCost returns the lowest total transportation cost for order.
func (s *CostService) MinimumCost(ctx context.Context, order domain.Order) (float64, error) {
	if s.Optimizer == nil || s.Optimizer.Catalog == nil {
		return 0, errors.New("minimum cost: optimizer is not configured")
	}

	key := s.cacheKey(order)

	if s.Cache != nil {
		cost, ok, err := s.Cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			log.Printf("req_id=%s cost cache get failed: key=%s err=%v", obs.RequestID(ctx), key, err)
		case ok:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cost, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	// The result is shared with every waiter, so the first caller going away
	// must not cancel the cache write-back.
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.compute(context.WithoutCancel(ctx), key, order)
	})
	if shared {
		log.Printf("req_id=%s cost computation shared: key=%s", obs.RequestID(ctx), key)
	}
	if err != nil {
		return 0, fmt.Errorf("minimum cost: %w", err)
	}

	return v.(float64), nil
}

func (s *CostService) compute(ctx context.Context, key string, order domain.Order) (float64, error) {
	quote, err := s.Optimizer.Optimize(ctx, order)
	if err != nil {
		if errors.Is(err, ErrTooManyCenters) {
			metrics.Optimizations.WithLabelValues("too_many_centers").Inc()
		} else {
			metrics.Optimizations.WithLabelValues("error").Inc()
		}
		return 0, err
	}

	metrics.RoutesEvaluated.Observe(float64(quote.RoutesEvaluated))
	if len(quote.RequiredCenters) == 0 {
		metrics.Optimizations.WithLabelValues("empty").Inc()
	} else {
		metrics.Optimizations.WithLabelValues("ok").Inc()
		log.Printf(
			"req_id=%s route selected: origin=%s stops=%v cost=%v evaluated=%d",
			obs.RequestID(ctx), quote.Best.Origin, quote.Best.Stops, quote.MinimumCost, quote.RoutesEvaluated,
		)
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, key, quote.MinimumCost, s.CacheTTL); err != nil {
			log.Printf("req_id=%s cost cache put failed: key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return quote.MinimumCost, nil
}

// cacheKey scopes the canonical order key to the catalog contents so a
// catalog change never serves stale costs.
func (s *CostService) cacheKey(order domain.Order) string {
	return "cost:" + s.Optimizer.Catalog.Fingerprint() + ":" + order.Key()
}
