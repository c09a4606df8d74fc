// Package pricecache holds fetched token spot prices and converts token amounts
// between token units and USD using fixed-point arithmetic.
package pricecache

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/etherspot/arka-sub001/internal/metrics"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

const defaultTTL = 5 * time.Minute

var (
	ErrUnknownPrice = errors.New("token price unknown")
	ErrStalePrice   = errors.New("token price is stale")
	ErrInvalidPrice = errors.New("invalid token price")
)

// Status is the freshness of a cached price.
type Status int

const (
	StatusUnknown Status = iota
	StatusOK
	StatusStale
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Denomination is the target unit of a conversion.
type Denomination string

const (
	DenomUSD    Denomination = "usd"
	DenomNative Denomination = "native"
)

// Price is a cached spot price.
type Price struct {
	USD       decimal.Decimal
	Decimals  uint8
	FetchedAt time.Time
	TTL       time.Duration
}

type priceKey struct {
	token   common.Address
	chainID uint64
}

// Cache is a concurrency-safe token price cache. It never fetches prices itself;
// callers push records through Update.
type Cache struct {
	mu         sync.RWMutex
	prices     map[priceKey]sponsorship.TokenPriceRecord
	defaultTTL time.Duration
	now        func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the clock used for staleness checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithDefaultTTL sets the TTL applied to records that carry none.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		prices:     make(map[priceKey]sponsorship.TokenPriceRecord),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update stores records. A record older than the cached one for the same token is ignored.
func (c *Cache) Update(records ...sponsorship.TokenPriceRecord) error {
	for _, r := range records {
		if !r.USDPrice.IsPositive() {
			return fmt.Errorf("%w: %s on chain %d has price %s", ErrInvalidPrice, r.Token.Hex(), r.ChainID, r.USDPrice)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		if r.TTL <= 0 {
			r.TTL = c.defaultTTL
		}
		k := priceKey{token: r.Token, chainID: r.ChainID}
		if cur, ok := c.prices[k]; ok && cur.FetchedAt.After(r.FetchedAt) {
			continue
		}
		c.prices[k] = r
	}
	metrics.CachedPrices.Set(float64(len(c.prices)))
	return nil
}

// PriceOf returns the cached price of token on chainID and its freshness.
func (c *Cache) PriceOf(token common.Address, chainID uint64) (Price, Status) {
	c.mu.RLock()
	r, ok := c.prices[priceKey{token: token, chainID: chainID}]
	c.mu.RUnlock()

	if !ok {
		metrics.PriceLookups.WithLabelValues(StatusUnknown.String()).Inc()
		return Price{}, StatusUnknown
	}

	p := Price{USD: r.USDPrice, Decimals: r.Decimals, FetchedAt: r.FetchedAt, TTL: r.TTL}
	status := StatusOK
	if c.now().Sub(r.FetchedAt) > r.TTL {
		status = StatusStale
	}
	metrics.PriceLookups.WithLabelValues(status.String()).Inc()
	return p, status
}

// usable returns the price or the error describing why it cannot be used.
func (c *Cache) usable(token common.Address, chainID uint64, allowStale bool) (Price, error) {
	p, status := c.PriceOf(token, chainID)
	switch status {
	case StatusUnknown:
		return Price{}, fmt.Errorf("%w: %s on chain %d", ErrUnknownPrice, token.Hex(), chainID)
	case StatusStale:
		if !allowStale {
			return Price{}, fmt.Errorf("%w: %s on chain %d fetched at %s", ErrStalePrice, token.Hex(), chainID,
				p.FetchedAt.UTC().Format(time.RFC3339))
		}
	}
	return p, nil
}

// ToUSD converts amount (in the token's minimal units) to USD. The result is exact.
func (c *Cache) ToUSD(amount *big.Int, token common.Address, chainID uint64, allowStale bool) (decimal.Decimal, error) {
	p, err := c.usable(token, chainID, allowStale)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(amount, -int32(p.Decimals)).Mul(p.USD), nil
}

// ConvertFromUSD converts a USD value to the token's minimal units, rounding half up.
func (c *Cache) ConvertFromUSD(usd decimal.Decimal, token common.Address, chainID uint64, allowStale bool) (*big.Int, error) {
	p, err := c.usable(token, chainID, allowStale)
	if err != nil {
		return nil, err
	}
	return usd.Shift(int32(p.Decimals)).DivRound(p.USD, 0).BigInt(), nil
}

// Convert converts amount of token into the target denomination. USD results are returned as
// dollars, native results as wei of the chain native coin.
func (c *Cache) Convert(
	amount *big.Int,
	token common.Address,
	chainID uint64,
	target Denomination,
	allowStale bool,
) (decimal.Decimal, error) {
	usd, err := c.ToUSD(amount, token, chainID, allowStale)
	if err != nil {
		return decimal.Zero, err
	}
	switch target {
	case DenomUSD:
		return usd, nil
	case DenomNative:
		wei, err := c.ConvertFromUSD(usd, sponsorship.NativeToken, chainID, allowStale)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromBigInt(wei, 0), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown denomination %q", target)
	}
}

// Snapshot returns all cached records ordered by chain and token.
func (c *Cache) Snapshot() []sponsorship.TokenPriceRecord {
	c.mu.RLock()
	out := make([]sponsorship.TokenPriceRecord, 0, len(c.prices))
	for _, r := range c.prices {
		out = append(out, r)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ChainID != out[j].ChainID {
			return out[i].ChainID < out[j].ChainID
		}
		return out[i].Token.Cmp(out[j].Token) < 0
	})
	return out
}
