package whitelist

import (
	"context"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// Guard answers allow list and block list questions for the decision pipeline.
type Guard struct {
	store  Store
	logger *zap.Logger
}

// NewGuard creates a Guard.
func NewGuard(store Store, logger *zap.Logger) *Guard {
	return &Guard{store: store, logger: logger}
}

// IsAllowed reports whether address may be sponsored under apiKey and policy. When the key level
// list, the policy level list and the policy allow list are all empty, every address is allowed.
// policy may be nil.
func (g *Guard) IsAllowed(
	ctx context.Context,
	apiKey string,
	policy *sponsorship.Policy,
	address common.Address,
) (bool, error) {
	keyLevel, err := g.store.ListWhitelist(ctx, apiKey, nil)
	if err != nil {
		return false, fmt.Errorf("failed to list key whitelist: %w", err)
	}

	var policyLevel, allowList []common.Address
	if policy != nil {
		policyLevel, err = g.store.ListWhitelist(ctx, apiKey, &policy.ID)
		if err != nil {
			return false, fmt.Errorf("failed to list policy whitelist: %w", err)
		}
		allowList = policy.AllowList
	}

	if len(keyLevel) == 0 && len(policyLevel) == 0 && len(allowList) == 0 {
		return true, nil
	}

	if slices.Contains(keyLevel, address) ||
		slices.Contains(policyLevel, address) ||
		slices.Contains(allowList, address) {
		return true, nil
	}

	g.logger.Info("Sponsorship denied: address not whitelisted",
		zap.String("address", address.Hex()),
		zap.Int64p("policy_id", policyIDOf(policy)))
	return false, nil
}

// IsBlocked reports whether address is on the block list of policy. A block list entry wins over
// any whitelist membership.
func (g *Guard) IsBlocked(policy *sponsorship.Policy, address common.Address) bool {
	if policy == nil || !policy.IsBlocked(address) {
		return false
	}
	g.logger.Info("Sponsorship denied: address blocked",
		zap.String("address", address.Hex()),
		zap.Int64("policy_id", policy.ID))
	return true
}

func policyIDOf(p *sponsorship.Policy) *int64 {
	if p == nil {
		return nil
	}
	return &p.ID
}
