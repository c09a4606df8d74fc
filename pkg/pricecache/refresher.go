package pricecache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/internal/metrics"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// Source provides the latest fetched token prices.
type Source interface {
	ListTokenPrices(ctx context.Context) ([]sponsorship.TokenPriceRecord, error)
}

// Refresher copies prices from a Source into a Cache on a fixed interval
type Refresher struct {
	source Source
	cache  *Cache
	logger *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRefresher creates a new Refresher
func NewRefresher(source Source, cache *Cache, logger *zap.Logger) *Refresher {
	return &Refresher{
		source: source,
		cache:  cache,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// RefreshOnce loads all prices from the source into the cache.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	records, err := r.source.ListTokenPrices(ctx)
	if err != nil {
		metrics.PriceRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to list token prices: %w", err)
	}

	valid := records[:0:0]
	for _, rec := range records {
		if !rec.USDPrice.IsPositive() {
			r.logger.Warn("Skipping invalid token price",
				zap.String("token", rec.Token.Hex()),
				zap.Uint64("chain_id", rec.ChainID),
				zap.String("usd_price", rec.USDPrice.String()))
			continue
		}
		valid = append(valid, rec)
	}

	if err := r.cache.Update(valid...); err != nil {
		metrics.PriceRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to update price cache: %w", err)
	}

	metrics.PriceRefreshes.WithLabelValues("success").Inc()
	r.logger.Debug("Refreshed token prices", zap.Int("count", len(valid)))
	return nil
}

// Start refreshes once and then keeps refreshing in the background every interval.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) {
	if err := r.RefreshOnce(ctx); err != nil {
		r.logger.Error("Initial price refresh failed", zap.Error(err))
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic price refresh", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				refreshCtx, cancel := context.WithTimeout(ctx, interval)
				if err := r.RefreshOnce(refreshCtx); err != nil {
					r.logger.Error("Periodic price refresh failed", zap.Error(err))
				}
				cancel()
			case <-ctx.Done():
				r.logger.Info("Stopping periodic price refresh", zap.Error(ctx.Err()))
				return
			case <-r.stopCh:
				r.logger.Info("Stopping periodic price refresh")
				return
			}
		}
	}()
}

// Stop stops the periodic refresh and waits for the loop to exit
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
