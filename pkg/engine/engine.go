// Package engine decides whether a user operation is sponsored.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/internal/metrics"
	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/contractcall"
	"github.com/etherspot/arka-sub001/pkg/ledger"
	"github.com/etherspot/arka-sub001/pkg/policy"
	"github.com/etherspot/arka-sub001/pkg/pricecache"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
	"github.com/etherspot/arka-sub001/pkg/whitelist"
)

// AccountStore loads the account an API key belongs to.
type AccountStore interface {
	// GetAPIKey returns sponsorship.ErrAPIKeyNotFound for unknown keys.
	GetAPIKey(ctx context.Context, apiKey string) (*sponsorship.APIKeyAccount, error)
}

// Service decides sponsorship requests
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Decide evaluates req. Denials are returned as a Decision; errors are reserved for invalid
	// input, unknown API keys and infrastructure failures.
	Decide(ctx context.Context, req *sponsorship.Request) (*sponsorship.Decision, error)
}

// Deps are the collaborators of the engine.
type Deps struct {
	Accounts  AccountStore
	Resolver  *policy.Resolver
	Whitelist *whitelist.Guard
	Contracts *contractcall.Guard
	Prices    *pricecache.Cache
	Ledger    *ledger.Ledger
}

// Option customizes the engine.
type Option func(*engine)

// WithClock sets the clock used when a request carries no evaluation time.
func WithClock(now func() time.Time) Option {
	return func(e *engine) { e.now = now }
}

// WithAllowStalePrices lets every request use expired prices.
func WithAllowStalePrices(allow bool) Option {
	return func(e *engine) { e.allowStale = allow }
}

type engine struct {
	Deps
	logger     *zap.Logger
	now        func() time.Time
	allowStale bool
}

// New creates the decision engine.
func New(deps Deps, logger *zap.Logger, opts ...Option) Service {
	e := &engine{Deps: deps, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engine) Decide(ctx context.Context, req *sponsorship.Request) (d *sponsorship.Decision, err error) {
	start := time.Now()
	defer func() { observe(d, err, time.Since(start)) }()

	if req.CostNative == nil || req.CostNative.Sign() < 0 {
		return nil, apperrors.BadRequestError(ledger.ErrInvalidCost, "cost_native must be a non-negative amount of wei")
	}
	now := req.Now
	if now.IsZero() {
		now = e.now()
	}
	now = now.UTC()

	account, err := e.Accounts.GetAPIKey(ctx, req.APIKey)
	if errors.Is(err, sponsorship.ErrAPIKeyNotFound) {
		return nil, apperrors.UnAuthorizedError(err, "unknown api key")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load api key: %w", err)
	}

	p, err := e.Resolver.Resolve(ctx, account.WalletAddress, req.ChainID, req.EPVersion, now)
	if reason, ok := policy.ReasonFor(err); ok {
		return sponsorship.Denied(reason, nil, now), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve policy: %w", err)
	}
	deny := func(reason sponsorship.Reason) *sponsorship.Decision {
		return sponsorship.Denied(reason, &p.ID, now)
	}

	if !account.SupportsChain(req.ChainID) {
		return deny(sponsorship.ReasonUnsupportedChain), nil
	}

	allowed, err := e.Whitelist.IsAllowed(ctx, req.APIKey, p, req.EndUser)
	if err != nil {
		return nil, fmt.Errorf("failed to check whitelist: %w", err)
	}
	if !allowed {
		return deny(sponsorship.ReasonAddressNotWhitelisted), nil
	}
	if e.Whitelist.IsBlocked(p, req.EndUser) {
		return deny(sponsorship.ReasonAddressBlocked), nil
	}

	if account.ContractWhitelistMode {
		permitted, err := e.checkCall(ctx, account, req)
		if err != nil {
			return nil, err
		}
		if !permitted {
			return deny(sponsorship.ReasonContractCallNotPermitted), nil
		}
	}

	gasToken := gasTokenOf(req)
	if gasToken != nil {
		if _, ok := account.TokenPaymaster(req.ChainID, *gasToken); !ok {
			return nil, apperrors.BadRequestError(nil,
				fmt.Sprintf("gas token %s is not configured for chain %d", gasToken.Hex(), req.ChainID))
		}
	}

	var costUSD *decimal.Decimal
	if p.RequiresUSD() || gasToken != nil {
		usd, err := e.Prices.ToUSD(req.CostNative, sponsorship.NativeToken, req.ChainID, e.allowStale)
		if isPriceError(err) {
			e.logPriceUnavailable(p, err)
			return deny(sponsorship.ReasonPriceUnavailable), nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to convert cost: %w", err)
		}
		costUSD = &usd
	}

	var costToken *decimal.Decimal
	if gasToken != nil {
		amount, err := e.Prices.ConvertFromUSD(*costUSD, *gasToken, req.ChainID, e.allowStale)
		if isPriceError(err) {
			e.logPriceUnavailable(p, err)
			return deny(sponsorship.ReasonPriceUnavailable), nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to quote gas token: %w", err)
		}
		quoted := decimal.NewFromBigInt(amount, 0)
		costToken = &quoted
	}

	cost := ledger.Cost{Native: req.CostNative}
	if p.RequiresUSD() {
		cost.USD = costUSD
	}
	res, err := e.Ledger.CheckAndReserve(ctx, p, req.EndUser, cost,
		ledger.WithMonthlyQuota(account.APIKey, account.MonthlyTxQuota, now))
	if errors.Is(err, ledger.ErrUSDCostRequired) {
		return deny(sponsorship.ReasonPriceUnavailable), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reserve usage: %w", err)
	}
	if !res.Admitted {
		d := deny(res.Limit.Reason())
		d.Limit = res.Limit
		return d, nil
	}

	d = sponsorship.Admitted(p.ID, costUSD, now)
	d.Remaining = res.Remaining
	if costToken != nil {
		d.CostToken = costToken.BigInt()
	}
	return d, nil
}

// checkCall gates the called contract function. Operations without a call target are not
// permitted in contract whitelist mode.
func (e *engine) checkCall(ctx context.Context, account *sponsorship.APIKeyAccount, req *sponsorship.Request) (bool, error) {
	if req.Target == nil {
		return false, nil
	}
	selector, err := contractcall.ExtractSelector(req.CallData)
	if err != nil {
		return false, apperrors.BadRequestError(err, "call_data must start with a 4 byte function selector")
	}
	permitted, err := e.Contracts.IsPermitted(ctx, account, *req.Target, selector, req.ChainID)
	if err != nil {
		return false, fmt.Errorf("failed to check contract call: %w", err)
	}
	return permitted, nil
}

func (e *engine) logPriceUnavailable(p *sponsorship.Policy, err error) {
	e.logger.Warn("Sponsorship denied: price unavailable",
		zap.Int64("policy_id", p.ID),
		zap.Error(err))
}

func gasTokenOf(req *sponsorship.Request) *common.Address {
	if req.GasToken == nil || *req.GasToken == sponsorship.NativeToken {
		return nil
	}
	return req.GasToken
}

func isPriceError(err error) bool {
	return errors.Is(err, pricecache.ErrUnknownPrice) || errors.Is(err, pricecache.ErrStalePrice)
}

func observe(d *sponsorship.Decision, err error, elapsed time.Duration) {
	outcome, reason := "error", ""
	switch {
	case err != nil:
		metrics.ErrorsTotal.WithLabelValues("engine", errorType(err)).Inc()
	case d.Admit:
		outcome = "admit"
	default:
		outcome, reason = "deny", string(d.Reason)
	}
	metrics.DecisionsTotal.WithLabelValues(outcome, reason).Inc()
	metrics.DecisionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func errorType(err error) string {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category.String()
	}
	return "internal"
}
