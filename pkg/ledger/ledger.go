package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/internal/metrics"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

var (
	ErrUSDCostRequired = errors.New("usd cost required by an active usd ceiling")
	ErrInvalidCost     = errors.New("invalid operation cost")
)

// errDenied aborts a store update without persisting anything.
var errDenied = errors.New("limit exceeded")

// Cost is the price of one operation. USD is nil when no price was needed.
type Cost struct {
	Native *big.Int
	USD    *decimal.Decimal
}

// Result is the outcome of CheckAndReserve.
type Result struct {
	Admitted bool
	// Limit is the ceiling that denied the operation.
	Limit *sponsorship.LimitKind
	// Global and User hold the counters after the reservation, or the current ones on denial.
	Global Usage
	User   Usage
	// Remaining is the budget left under the tightest ceiling per dimension after admission.
	Remaining *sponsorship.Budget
}

type reserveOptions struct {
	apiKey string
	quota  *int64
	at     time.Time
}

// ReserveOption customizes CheckAndReserve.
type ReserveOption func(*reserveOptions)

// WithMonthlyQuota also counts the operation against the API key calendar month quota. A nil
// limit disables the quota.
func WithMonthlyQuota(apiKey string, limit *int64, at time.Time) ReserveOption {
	return func(o *reserveOptions) {
		o.apiKey = apiKey
		o.quota = limit
		o.at = at
	}
}

// Ledger checks policy ceilings and records consumption atomically.
type Ledger struct {
	store  UsageStore
	logger *zap.Logger
}

// New creates a Ledger over store.
func New(store UsageStore, logger *zap.Logger) *Ledger {
	return &Ledger{store: store, logger: logger}
}

// CheckAndReserve admits the operation and adds its cost to every active counter, or denies it
// and leaves all counters untouched. Ceilings are checked per operation first, then per user,
// then globally, then against the monthly API key quota. An operation that brings a counter
// exactly to its ceiling is admitted.
func (l *Ledger) CheckAndReserve(
	ctx context.Context,
	policy *sponsorship.Policy,
	endUser common.Address,
	cost Cost,
	opts ...ReserveOption,
) (*Result, error) {
	var o reserveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if cost.Native == nil || cost.Native.Sign() < 0 {
		return nil, fmt.Errorf("%w: native cost must be a non-negative amount", ErrInvalidCost)
	}
	if cost.USD != nil && cost.USD.IsNegative() {
		return nil, fmt.Errorf("%w: usd cost must not be negative", ErrInvalidCost)
	}
	if policy.RequiresUSD() && cost.USD == nil {
		return nil, ErrUSDCostRequired
	}

	if kind := checkPerOp(policy.PerOp, cost); kind != nil {
		return l.deny(policy, kind, Usage{}, Usage{}), nil
	}

	var keys []Key
	globalKey, userKey := GlobalKey(policy.ID), UserKey(policy.ID, endUser)
	if policy.Global.Active() {
		keys = append(keys, globalKey)
	}
	if policy.PerUser.Active() {
		keys = append(keys, userKey)
	}
	var monthKey Key
	if o.quota != nil {
		monthKey = MonthlyKey(o.apiKey, o.at)
		keys = append(keys, monthKey)
	}

	if len(keys) == 0 {
		metrics.LedgerReservations.WithLabelValues("unmetered").Inc()
		return &Result{Admitted: true}, nil
	}

	var (
		denial *sponsorship.LimitKind
		after  map[Key]Usage
	)
	err := l.store.Update(ctx, keys, func(current map[Key]Usage) (map[Key]Usage, error) {
		after = current
		if policy.PerUser.Active() {
			if kind := exceeds(sponsorship.ScopePerUser, policy.PerUser, current[userKey], cost); kind != nil {
				denial = kind
				return nil, errDenied
			}
		}
		if policy.Global.Active() {
			if kind := exceeds(sponsorship.ScopeGlobal, policy.Global, current[globalKey], cost); kind != nil {
				denial = kind
				return nil, errDenied
			}
		}
		if o.quota != nil && current[monthKey].Ops+1 > *o.quota {
			denial = &sponsorship.LimitKind{Scope: sponsorship.ScopeMonthly, Dimension: sponsorship.DimensionOps}
			return nil, errDenied
		}

		next := make(map[Key]Usage, len(current))
		for k, u := range current {
			next[k] = u.add(cost)
		}
		after = next
		return next, nil
	})
	if errors.Is(err, errDenied) {
		return l.deny(policy, denial, after[globalKey], after[userKey]), nil
	}
	if err != nil {
		metrics.LedgerReservations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to reserve usage: %w", err)
	}

	metrics.LedgerReservations.WithLabelValues("admitted").Inc()
	return &Result{
		Admitted:  true,
		Global:    after[globalKey],
		User:      after[userKey],
		Remaining: remaining(policy, after[globalKey], after[userKey]),
	}, nil
}

func (l *Ledger) deny(policy *sponsorship.Policy, kind *sponsorship.LimitKind, global, user Usage) *Result {
	metrics.LedgerReservations.WithLabelValues("denied").Inc()
	l.logger.Info("Sponsorship limit exceeded",
		zap.Int64("policy_id", policy.ID),
		zap.String("scope", string(kind.Scope)),
		zap.String("dimension", string(kind.Dimension)))
	return &Result{Limit: kind, Global: global, User: user}
}

// Usage returns the current global and per-user counters of a policy.
func (l *Ledger) Usage(ctx context.Context, policyID int64, endUser common.Address) (global, user Usage, err error) {
	gk, uk := GlobalKey(policyID), UserKey(policyID, endUser)
	got, err := l.store.Get(ctx, []Key{gk, uk})
	if err != nil {
		return Usage{}, Usage{}, fmt.Errorf("failed to read usage: %w", err)
	}
	return got[gk], got[uk], nil
}

// Reset clears every counter of a policy.
func (l *Ledger) Reset(ctx context.Context, policyID int64) error {
	if err := l.store.Reset(ctx, policyID); err != nil {
		return fmt.Errorf("failed to reset usage: %w", err)
	}
	return nil
}

func checkPerOp(limits sponsorship.ScopeLimits, cost Cost) *sponsorship.LimitKind {
	if !limits.Active() {
		return nil
	}
	if limits.MaxUSD != nil && cost.USD.GreaterThan(*limits.MaxUSD) {
		return &sponsorship.LimitKind{Scope: sponsorship.ScopePerOp, Dimension: sponsorship.DimensionUSD}
	}
	if limits.MaxNative != nil && cost.Native.Cmp(limits.MaxNative) > 0 {
		return &sponsorship.LimitKind{Scope: sponsorship.ScopePerOp, Dimension: sponsorship.DimensionNative}
	}
	return nil
}

// exceeds reports the first dimension of limits that cur plus one operation of cost would pass.
func exceeds(scope sponsorship.LimitScope, limits sponsorship.ScopeLimits, cur Usage, cost Cost) *sponsorship.LimitKind {
	next := cur.add(cost)
	if limits.MaxUSD != nil && next.USD.GreaterThan(*limits.MaxUSD) {
		return &sponsorship.LimitKind{Scope: scope, Dimension: sponsorship.DimensionUSD}
	}
	if limits.MaxNative != nil && next.Native.Cmp(limits.MaxNative) > 0 {
		return &sponsorship.LimitKind{Scope: scope, Dimension: sponsorship.DimensionNative}
	}
	if limits.MaxOps != nil && next.Ops > *limits.MaxOps {
		return &sponsorship.LimitKind{Scope: scope, Dimension: sponsorship.DimensionOps}
	}
	return nil
}

func remaining(policy *sponsorship.Policy, global, user Usage) *sponsorship.Budget {
	var b sponsorship.Budget
	track := func(limits sponsorship.ScopeLimits, u Usage) {
		if !limits.Active() {
			return
		}
		if limits.MaxUSD != nil {
			left := limits.MaxUSD.Sub(u.USD)
			if b.USD == nil || left.LessThan(*b.USD) {
				b.USD = &left
			}
		}
		if limits.MaxNative != nil {
			left := new(big.Int).Sub(limits.MaxNative, u.native())
			if b.Native == nil || left.Cmp(b.Native) < 0 {
				b.Native = left
			}
		}
		if limits.MaxOps != nil {
			left := *limits.MaxOps - u.Ops
			if b.Ops == nil || left < *b.Ops {
				b.Ops = &left
			}
		}
	}
	track(policy.PerUser, user)
	track(policy.Global, global)

	if b.USD == nil && b.Native == nil && b.Ops == nil {
		return nil
	}
	return &b
}
