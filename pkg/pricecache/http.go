package pricecache

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

type priceResponse struct {
	Token     common.Address `json:"token"`
	ChainID   uint64         `json:"chain_id"`
	USDPrice  string         `json:"usd_price"`
	Decimals  uint8          `json:"decimals"`
	FetchedAt time.Time      `json:"fetched_at"`
	TTL       string         `json:"ttl"`
	Status    string         `json:"status"`
}

type pricesResponse struct {
	Prices []priceResponse `json:"prices"`
}

// HTTP exposes the cache contents to administrators
type HTTP struct {
	cache     *Cache
	refresher *Refresher
	logger    *zap.Logger
}

// RegisterRoutes registers price listing and manual refresh endpoints on the given chi router
func RegisterRoutes(r chi.Router, cache *Cache, refresher *Refresher, logger *zap.Logger) {
	h := &HTTP{cache: cache, refresher: refresher, logger: logger}

	r.Get("/prices", apphttp.HandleError(h.list))
	r.Post("/prices/refresh", apphttp.HandleError(h.refresh))
}

func (h *HTTP) list(w http.ResponseWriter, _ *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, h.snapshot())
	return nil
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	if err := h.refresher.RefreshOnce(r.Context()); err != nil {
		return apperrors.DependencyFailureError(err, "price refresh failed")
	}
	h.logger.Info("Prices refreshed by admin", zap.Int("count", len(h.cache.Snapshot())))
	apphttp.WriteJSON(w, http.StatusOK, h.snapshot())
	return nil
}

func (h *HTTP) snapshot() pricesResponse {
	records := h.cache.Snapshot()
	out := pricesResponse{Prices: make([]priceResponse, 0, len(records))}
	for _, rec := range records {
		out.Prices = append(out.Prices, h.toResponse(rec))
	}
	return out
}

func (h *HTTP) toResponse(rec sponsorship.TokenPriceRecord) priceResponse {
	_, status := h.cache.PriceOf(rec.Token, rec.ChainID)
	return priceResponse{
		Token:     rec.Token,
		ChainID:   rec.ChainID,
		USDPrice:  rec.USDPrice.String(),
		Decimals:  rec.Decimals,
		FetchedAt: rec.FetchedAt,
		TTL:       rec.TTL.String(),
		Status:    status.String(),
	}
}
