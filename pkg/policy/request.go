package policy

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/etherspot/arka-sub001/pkg/auth"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// LimitsRequest describes the ceilings of one scope. Amounts are decimal strings: dollars for
// MaxUSD and wei for MaxNative.
type LimitsRequest struct {
	MaxUSD    *string `json:"max_usd,omitempty" validate:"omitempty,numeric"`
	MaxNative *string `json:"max_native,omitempty" validate:"omitempty,numeric"`
	MaxOps    *int64  `json:"max_ops,omitempty"`
}

// CreateRequest is the admin payload for a new policy
type CreateRequest struct {
	APIKey        string         `json:"api_key" validate:"required"`
	Name          string         `json:"name" validate:"required,max=255"`
	Description   string         `json:"description" validate:"max=1024"`
	Enabled       bool           `json:"enabled"`
	AllChains     bool           `json:"all_chains"`
	EnabledChains []uint64       `json:"enabled_chains" validate:"dive,gt=0"`
	EPVersions    []string       `json:"ep_versions" validate:"min=1,dive,oneof=EPV_06 EPV_07 EPV_08"`
	Perpetual     bool           `json:"perpetual"`
	StartTime     *time.Time     `json:"start_time,omitempty"`
	EndTime       *time.Time     `json:"end_time,omitempty"`
	Global        *LimitsRequest `json:"global_limits,omitempty"`
	PerUser       *LimitsRequest `json:"per_user_limits,omitempty"`
	PerOp         *LimitsRequest `json:"per_op_limits,omitempty"`
	AllowList     []string       `json:"allow_list"`
	BlockList     []string       `json:"block_list"`
}

// ToPolicy converts the request into a policy owned by wallet.
func (r *CreateRequest) ToPolicy(wallet common.Address) (*sponsorship.Policy, error) {
	p := &sponsorship.Policy{
		WalletAddress: wallet,
		Name:          r.Name,
		Description:   r.Description,
		Enabled:       r.Enabled,
		AllChains:     r.AllChains,
		EnabledChains: r.EnabledChains,
		Perpetual:     r.Perpetual,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}

	for _, v := range r.EPVersions {
		ep, err := sponsorship.ParseEPVersion(v)
		if err != nil {
			return nil, err
		}
		p.EPVersions = append(p.EPVersions, ep)
	}

	var err error
	if p.Global, err = r.Global.toScope(); err != nil {
		return nil, fmt.Errorf("global_limits: %w", err)
	}
	if p.PerUser, err = r.PerUser.toScope(); err != nil {
		return nil, fmt.Errorf("per_user_limits: %w", err)
	}
	if p.PerOp, err = r.PerOp.toScope(); err != nil {
		return nil, fmt.Errorf("per_op_limits: %w", err)
	}

	if p.AllowList, err = auth.ParseAddresses(r.AllowList); err != nil {
		return nil, fmt.Errorf("allow_list: %w", err)
	}
	if p.BlockList, err = auth.ParseAddresses(r.BlockList); err != nil {
		return nil, fmt.Errorf("block_list: %w", err)
	}
	return p, nil
}

func (l *LimitsRequest) toScope() (sponsorship.ScopeLimits, error) {
	if l == nil {
		return sponsorship.ScopeLimits{}, nil
	}
	s := sponsorship.ScopeLimits{Applicable: true, MaxOps: l.MaxOps}
	if l.MaxUSD != nil {
		usd, err := decimal.NewFromString(*l.MaxUSD)
		if err != nil {
			return s, fmt.Errorf("invalid max_usd %q: %w", *l.MaxUSD, err)
		}
		s.MaxUSD = &usd
	}
	if l.MaxNative != nil {
		wei, ok := new(big.Int).SetString(*l.MaxNative, 10)
		if !ok {
			return s, fmt.Errorf("invalid max_native %q: expected an integer amount of wei", *l.MaxNative)
		}
		s.MaxNative = wei
	}
	return s, nil
}
