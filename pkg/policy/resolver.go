// Package policy selects the sponsorship policy governing a request and validates new policies.
package policy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

var (
	ErrNoPolicyDefined       = errors.New("no sponsorship policy defined")
	ErrPolicyDisabled        = errors.New("sponsorship policy disabled")
	ErrPolicyNotInTimeWindow = errors.New("sponsorship policy not in time window")
)

// ReasonFor maps a resolution error to its denial reason.
func ReasonFor(err error) (sponsorship.Reason, bool) {
	switch {
	case errors.Is(err, ErrNoPolicyDefined):
		return sponsorship.ReasonNoPolicyDefined, true
	case errors.Is(err, ErrPolicyDisabled):
		return sponsorship.ReasonPolicyDisabled, true
	case errors.Is(err, ErrPolicyNotInTimeWindow):
		return sponsorship.ReasonPolicyNotInTimeWindow, true
	default:
		return "", false
	}
}

// Store lists the policies owned by a wallet.
type Store interface {
	ListPoliciesByWallet(ctx context.Context, wallet common.Address) ([]*sponsorship.Policy, error)
}

// Resolver picks the policy that governs a request.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the policy of wallet governing chainID and epVersion at now.
func (r *Resolver) Resolve(
	ctx context.Context,
	wallet common.Address,
	chainID uint64,
	epVersion sponsorship.EPVersion,
	now time.Time,
) (*sponsorship.Policy, error) {
	policies, err := r.store.ListPoliciesByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return Select(policies, chainID, epVersion, now)
}

// Select applies the resolution rules to an in-memory policy set. A policy qualifies when it is
// enabled, covers chainID (explicitly or as a universal policy), lists epVersion and is active at
// now. Among qualifying policies a chain-specific one beats a universal one, then the most
// recently created wins, then the highest ID.
//
// When nothing qualifies the error explains the closest miss: a matching enabled policy outside
// its window yields ErrPolicyNotInTimeWindow, otherwise a matching disabled policy yields
// ErrPolicyDisabled, otherwise ErrNoPolicyDefined.
func Select(
	policies []*sponsorship.Policy,
	chainID uint64,
	epVersion sponsorship.EPVersion,
	now time.Time,
) (*sponsorship.Policy, error) {
	var (
		candidates    []*sponsorship.Policy
		outsideWindow bool
		disabled      bool
	)

	for _, p := range policies {
		if !p.SupportsChain(chainID) || !p.SupportsEPVersion(epVersion) {
			continue
		}
		if !p.Enabled {
			disabled = true
			continue
		}
		if !p.ActiveAt(now) {
			outsideWindow = true
			continue
		}
		candidates = append(candidates, p)
	}

	if len(candidates) == 0 {
		switch {
		case outsideWindow:
			return nil, ErrPolicyNotInTimeWindow
		case disabled:
			return nil, ErrPolicyDisabled
		default:
			return nil, ErrNoPolicyDefined
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return precedes(candidates[i], candidates[j])
	})
	return candidates[0], nil
}

func precedes(a, b *sponsorship.Policy) bool {
	if a.AllChains != b.AllChains {
		return !a.AllChains
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
