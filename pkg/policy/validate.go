package policy

import (
	"errors"
	"fmt"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// ErrInvalidPolicy is wrapped by every creation rule violation.
var ErrInvalidPolicy = errors.New("invalid policy")

// ValidateNew checks the rules a policy must satisfy before it is stored for account.
func ValidateNew(account *sponsorship.APIKeyAccount, p *sponsorship.Policy) error {
	if p.Name == "" {
		return invalid("name is required")
	}
	if len(p.EPVersions) == 0 {
		return invalid("at least one entry point version is required")
	}
	if !p.AllChains && len(p.EnabledChains) == 0 {
		return invalid("enabled chains are required unless the policy applies to all chains")
	}
	if !p.AllChains {
		for _, c := range p.EnabledChains {
			if !account.SupportsChain(c) {
				return invalid("chain %d is not supported by the api key", c)
			}
		}
	}

	if !p.Perpetual {
		if p.StartTime == nil || p.EndTime == nil {
			return invalid("start and end time are required for non-perpetual policies")
		}
		if p.StartTime.After(*p.EndTime) {
			return invalid("start time must not be after end time")
		}
	}

	if err := validateLimits("global", p.Global); err != nil {
		return err
	}
	if err := validateLimits("per_user", p.PerUser); err != nil {
		return err
	}
	if err := validateLimits("per_op", p.PerOp); err != nil {
		return err
	}
	if p.PerOp.MaxOps != nil {
		return invalid("per_op limits have no operation count")
	}

	return nil
}

func validateLimits(scope string, l sponsorship.ScopeLimits) error {
	if l.MaxUSD != nil && l.MaxUSD.IsNegative() {
		return invalid("%s usd limit must not be negative", scope)
	}
	if l.MaxNative != nil && l.MaxNative.Sign() < 0 {
		return invalid("%s native limit must not be negative", scope)
	}
	if l.MaxOps != nil && *l.MaxOps < 0 {
		return invalid("%s operation limit must not be negative", scope)
	}
	if l.Applicable && l.MaxUSD == nil && l.MaxNative == nil && l.MaxOps == nil {
		return invalid("%s limits are applicable but define no ceiling", scope)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPolicy, fmt.Sprintf(format, args...))
}
