package sponsorship

import (
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// EPVersion identifies an ERC-4337 EntryPoint version family.
type EPVersion string

const (
	EPV06 EPVersion = "EPV_06"
	EPV07 EPVersion = "EPV_07"
	EPV08 EPVersion = "EPV_08"
)

// ParseEPVersion validates s as a known EntryPoint version.
func ParseEPVersion(s string) (EPVersion, error) {
	switch v := EPVersion(s); v {
	case EPV06, EPV07, EPV08:
		return v, nil
	default:
		return "", fmt.Errorf("unknown entry point version %q", s)
	}
}

// ScopeLimits holds the ceilings of one limit scope (global, per-user or per-operation).
// A nil ceiling means the dimension is not enforced.
type ScopeLimits struct {
	Applicable bool
	MaxUSD     *decimal.Decimal
	MaxNative  *big.Int // wei
	MaxOps     *int64
}

// Active reports whether the scope enforces at least one dimension.
func (l ScopeLimits) Active() bool {
	return l.Applicable && (l.MaxUSD != nil || l.MaxNative != nil || l.MaxOps != nil)
}

// HasUSD reports whether the scope enforces a USD ceiling.
func (l ScopeLimits) HasUSD() bool {
	return l.Applicable && l.MaxUSD != nil
}

// Policy is an immutable snapshot of a sponsorship policy.
type Policy struct {
	ID            int64
	WalletAddress common.Address
	Name          string
	Description   string
	Enabled       bool

	AllChains     bool
	EnabledChains []uint64
	EPVersions    []EPVersion

	Perpetual bool
	StartTime *time.Time
	EndTime   *time.Time

	Global  ScopeLimits
	PerUser ScopeLimits
	PerOp   ScopeLimits

	AllowList []common.Address
	BlockList []common.Address

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportsChain reports whether the policy applies to chainID.
func (p *Policy) SupportsChain(chainID uint64) bool {
	return p.AllChains || slices.Contains(p.EnabledChains, chainID)
}

// SupportsEPVersion reports whether the policy applies to EntryPoint version v.
func (p *Policy) SupportsEPVersion(v EPVersion) bool {
	return slices.Contains(p.EPVersions, v)
}

// ActiveAt reports whether now falls inside the policy window. Bounds are inclusive.
func (p *Policy) ActiveAt(now time.Time) bool {
	if p.Perpetual {
		return true
	}
	if p.StartTime != nil && now.Before(*p.StartTime) {
		return false
	}
	if p.EndTime != nil && now.After(*p.EndTime) {
		return false
	}
	return true
}

// HasLimits reports whether any scope enforces a ceiling.
func (p *Policy) HasLimits() bool {
	return p.Global.Active() || p.PerUser.Active() || p.PerOp.Active()
}

// RequiresUSD reports whether evaluating the policy needs a USD cost.
func (p *Policy) RequiresUSD() bool {
	return p.Global.HasUSD() || p.PerUser.HasUSD() || p.PerOp.HasUSD()
}

// IsBlocked reports whether addr is on the policy block list.
func (p *Policy) IsBlocked(addr common.Address) bool {
	return slices.Contains(p.BlockList, addr)
}

// InAllowList reports whether addr is on the policy allow list.
func (p *Policy) InAllowList(addr common.Address) bool {
	return slices.Contains(p.AllowList, addr)
}
