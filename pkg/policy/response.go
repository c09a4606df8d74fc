package policy

import (
	"time"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// LimitsResponse mirrors LimitsRequest.
type LimitsResponse struct {
	MaxUSD    *string `json:"max_usd,omitempty"`
	MaxNative *string `json:"max_native,omitempty"`
	MaxOps    *int64  `json:"max_ops,omitempty"`
}

// Response is the admin API view of a policy
type Response struct {
	ID            int64           `json:"id"`
	WalletAddress string          `json:"wallet_address"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Enabled       bool            `json:"enabled"`
	AllChains     bool            `json:"all_chains"`
	EnabledChains []uint64        `json:"enabled_chains"`
	EPVersions    []string        `json:"ep_versions"`
	Perpetual     bool            `json:"perpetual"`
	StartTime     *time.Time      `json:"start_time,omitempty"`
	EndTime       *time.Time      `json:"end_time,omitempty"`
	Global        *LimitsResponse `json:"global_limits,omitempty"`
	PerUser       *LimitsResponse `json:"per_user_limits,omitempty"`
	PerOp         *LimitsResponse `json:"per_op_limits,omitempty"`
	AllowList     []string        `json:"allow_list"`
	BlockList     []string        `json:"block_list"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toResponse(p *sponsorship.Policy) *Response {
	resp := &Response{
		ID:            p.ID,
		WalletAddress: p.WalletAddress.Hex(),
		Name:          p.Name,
		Description:   p.Description,
		Enabled:       p.Enabled,
		AllChains:     p.AllChains,
		EnabledChains: p.EnabledChains,
		Perpetual:     p.Perpetual,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Global:        limitsResponse(p.Global),
		PerUser:       limitsResponse(p.PerUser),
		PerOp:         limitsResponse(p.PerOp),
		AllowList:     make([]string, 0, len(p.AllowList)),
		BlockList:     make([]string, 0, len(p.BlockList)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if resp.EnabledChains == nil {
		resp.EnabledChains = []uint64{}
	}
	for _, v := range p.EPVersions {
		resp.EPVersions = append(resp.EPVersions, string(v))
	}
	for _, a := range p.AllowList {
		resp.AllowList = append(resp.AllowList, a.Hex())
	}
	for _, a := range p.BlockList {
		resp.BlockList = append(resp.BlockList, a.Hex())
	}
	return resp
}

func limitsResponse(l sponsorship.ScopeLimits) *LimitsResponse {
	if !l.Applicable {
		return nil
	}
	out := &LimitsResponse{MaxOps: l.MaxOps}
	if l.MaxUSD != nil {
		s := l.MaxUSD.String()
		out.MaxUSD = &s
	}
	if l.MaxNative != nil {
		s := l.MaxNative.String()
		out.MaxNative = &s
	}
	return out
}
