package sponsorstore

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// APIKeyDao maps to the 'api_keys' table.
type APIKeyDao struct {
	bun.BaseModel         `bun:"table:api_keys,alias:ak"`
	APIKey                string                       `bun:"api_key,pk,type:varchar(128)"`
	WalletAddress         string                       `bun:"wallet_address,notnull,type:varchar(42)"`
	SigningKeyRef         string                       `bun:"signing_key_ref,notnull,type:text"`
	SupportedChains       []int64                      `bun:"supported_chains,array"`
	MonthlyTxQuota        *int64                       `bun:"monthly_tx_quota"`
	TokenPaymasters       map[string]map[string]string `bun:"token_paymasters,type:jsonb"`
	ContractWhitelistMode bool                         `bun:"contract_whitelist_mode,notnull,default:false"`
	CreatedAt             time.Time                    `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// PolicyDao maps to the 'sponsorship_policies' table. Limit ceilings are numeric strings, NULL
// when the dimension is not enforced.
type PolicyDao struct {
	bun.BaseModel `bun:"table:sponsorship_policies,alias:sp"`
	ID            int64      `bun:"id,pk,autoincrement"`
	WalletAddress string     `bun:"wallet_address,notnull,type:varchar(42)"`
	Name          string     `bun:"name,notnull,type:varchar(255)"`
	Description   string     `bun:"description,type:text"`
	Enabled       bool       `bun:"is_enabled,notnull,default:true"`
	AllChains     bool       `bun:"is_applicable_to_all_networks,notnull,default:false"`
	EnabledChains []int64    `bun:"enabled_chains,array"`
	EPVersions    []string   `bun:"supported_ep_versions,array"`
	Perpetual     bool       `bun:"is_perpetual,notnull,default:false"`
	StartTime     *time.Time `bun:"start_time"`
	EndTime       *time.Time `bun:"end_time"`

	GlobalApplicable bool    `bun:"global_limits_applicable,notnull,default:false"`
	GlobalMaxUSD     *string `bun:"global_max_usd,type:numeric(38,18)"`
	GlobalMaxNative  *string `bun:"global_max_native,type:numeric(78,0)"`
	GlobalMaxOps     *int64  `bun:"global_max_ops"`

	PerUserApplicable bool    `bun:"per_user_limits_applicable,notnull,default:false"`
	PerUserMaxUSD     *string `bun:"per_user_max_usd,type:numeric(38,18)"`
	PerUserMaxNative  *string `bun:"per_user_max_native,type:numeric(78,0)"`
	PerUserMaxOps     *int64  `bun:"per_user_max_ops"`

	PerOpApplicable bool    `bun:"per_op_limits_applicable,notnull,default:false"`
	PerOpMaxUSD     *string `bun:"per_op_max_usd,type:numeric(38,18)"`
	PerOpMaxNative  *string `bun:"per_op_max_native,type:numeric(78,0)"`

	AllowList []string  `bun:"addresses_allowlist,array"`
	BlockList []string  `bun:"addresses_blocklist,array"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// WhitelistDao maps to the 'whitelist' table. PolicyID 0 marks a key-level entry.
type WhitelistDao struct {
	bun.BaseModel `bun:"table:whitelist,alias:w"`
	APIKey        string    `bun:"api_key,pk,type:varchar(128)"`
	PolicyID      int64     `bun:"policy_id,pk"`
	Address       string    `bun:"address,pk,type:varchar(42)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ContractWhitelistDao maps to the 'contract_whitelist' table.
type ContractWhitelistDao struct {
	bun.BaseModel   `bun:"table:contract_whitelist,alias:cw"`
	WalletAddress   string    `bun:"wallet_address,pk,type:varchar(42)"`
	ContractAddress string    `bun:"contract_address,pk,type:varchar(42)"`
	ChainID         int64     `bun:"chain_id,pk"`
	Selectors       []string  `bun:"function_selectors,array"`
	ABI             string    `bun:"abi,type:text"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// TokenPriceDao maps to the 'token_prices' table, written by the external price fetcher.
type TokenPriceDao struct {
	bun.BaseModel `bun:"table:token_prices,alias:tp"`
	TokenAddress  string    `bun:"token_address,pk,type:varchar(42)"`
	ChainID       int64     `bun:"chain_id,pk"`
	USDPrice      string    `bun:"usd_price,notnull,type:numeric(38,18)"`
	Decimals      int16     `bun:"decimals,notnull"`
	FetchedAt     time.Time `bun:"fetched_at,notnull"`
	TTLSeconds    int64     `bun:"ttl_seconds,notnull,default:0"`
}

func chainsToDao(chains []uint64) []int64 {
	out := make([]int64, len(chains))
	for i, c := range chains {
		out[i] = int64(c)
	}
	return out
}

func chainsFromDao(chains []int64) []uint64 {
	if len(chains) == 0 {
		return nil
	}
	out := make([]uint64, len(chains))
	for i, c := range chains {
		out[i] = uint64(c)
	}
	return out
}

func addressesToDao(addrs []common.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out
}

func addressesFromDao(addrs []string) []common.Address {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]common.Address, len(addrs))
	for i, a := range addrs {
		out[i] = common.HexToAddress(a)
	}
	return out
}

func toAPIKey(dao *APIKeyDao) (*sponsorship.APIKeyAccount, error) {
	acc := &sponsorship.APIKeyAccount{
		APIKey:                dao.APIKey,
		WalletAddress:         common.HexToAddress(dao.WalletAddress),
		SigningKeyRef:         dao.SigningKeyRef,
		SupportedChains:       chainsFromDao(dao.SupportedChains),
		MonthlyTxQuota:        dao.MonthlyTxQuota,
		ContractWhitelistMode: dao.ContractWhitelistMode,
		CreatedAt:             dao.CreatedAt,
	}
	if len(dao.TokenPaymasters) > 0 {
		acc.TokenPaymasters = make(map[uint64]map[common.Address]common.Address, len(dao.TokenPaymasters))
		for chain, tokens := range dao.TokenPaymasters {
			chainID, err := strconv.ParseUint(chain, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid token paymaster chain %q for api key: %w", chain, err)
			}
			m := make(map[common.Address]common.Address, len(tokens))
			for token, pm := range tokens {
				m[common.HexToAddress(token)] = common.HexToAddress(pm)
			}
			acc.TokenPaymasters[chainID] = m
		}
	}
	return acc, nil
}

func toAPIKeyDao(acc *sponsorship.APIKeyAccount) *APIKeyDao {
	dao := &APIKeyDao{
		APIKey:                acc.APIKey,
		WalletAddress:         acc.WalletAddress.Hex(),
		SigningKeyRef:         acc.SigningKeyRef,
		SupportedChains:       chainsToDao(acc.SupportedChains),
		MonthlyTxQuota:        acc.MonthlyTxQuota,
		ContractWhitelistMode: acc.ContractWhitelistMode,
		CreatedAt:             acc.CreatedAt,
	}
	if len(acc.TokenPaymasters) > 0 {
		dao.TokenPaymasters = make(map[string]map[string]string, len(acc.TokenPaymasters))
		for chain, tokens := range acc.TokenPaymasters {
			m := make(map[string]string, len(tokens))
			for token, pm := range tokens {
				m[token.Hex()] = pm.Hex()
			}
			dao.TokenPaymasters[strconv.FormatUint(chain, 10)] = m
		}
	}
	return dao
}

func usdToDao(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func usdFromDao(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid usd ceiling %q: %w", *s, err)
	}
	return &d, nil
}

func nativeToDao(n *big.Int) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}

func nativeFromDao(s *string) (*big.Int, error) {
	if s == nil {
		return nil, nil
	}
	n, ok := new(big.Int).SetString(*s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid native ceiling %q", *s)
	}
	return n, nil
}

func limitsFromDao(applicable bool, maxUSD, maxNative *string, maxOps *int64) (sponsorship.ScopeLimits, error) {
	l := sponsorship.ScopeLimits{Applicable: applicable, MaxOps: maxOps}
	var err error
	if l.MaxUSD, err = usdFromDao(maxUSD); err != nil {
		return l, err
	}
	if l.MaxNative, err = nativeFromDao(maxNative); err != nil {
		return l, err
	}
	return l, nil
}

func toPolicyDao(p *sponsorship.Policy) *PolicyDao {
	eps := make([]string, len(p.EPVersions))
	for i, v := range p.EPVersions {
		eps[i] = string(v)
	}
	return &PolicyDao{
		ID:            p.ID,
		WalletAddress: p.WalletAddress.Hex(),
		Name:          p.Name,
		Description:   p.Description,
		Enabled:       p.Enabled,
		AllChains:     p.AllChains,
		EnabledChains: chainsToDao(p.EnabledChains),
		EPVersions:    eps,
		Perpetual:     p.Perpetual,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,

		GlobalApplicable: p.Global.Applicable,
		GlobalMaxUSD:     usdToDao(p.Global.MaxUSD),
		GlobalMaxNative:  nativeToDao(p.Global.MaxNative),
		GlobalMaxOps:     p.Global.MaxOps,

		PerUserApplicable: p.PerUser.Applicable,
		PerUserMaxUSD:     usdToDao(p.PerUser.MaxUSD),
		PerUserMaxNative:  nativeToDao(p.PerUser.MaxNative),
		PerUserMaxOps:     p.PerUser.MaxOps,

		PerOpApplicable: p.PerOp.Applicable,
		PerOpMaxUSD:     usdToDao(p.PerOp.MaxUSD),
		PerOpMaxNative:  nativeToDao(p.PerOp.MaxNative),

		AllowList: addressesToDao(p.AllowList),
		BlockList: addressesToDao(p.BlockList),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPolicy(dao *PolicyDao) (*sponsorship.Policy, error) {
	p := &sponsorship.Policy{
		ID:            dao.ID,
		WalletAddress: common.HexToAddress(dao.WalletAddress),
		Name:          dao.Name,
		Description:   dao.Description,
		Enabled:       dao.Enabled,
		AllChains:     dao.AllChains,
		EnabledChains: chainsFromDao(dao.EnabledChains),
		Perpetual:     dao.Perpetual,
		StartTime:     dao.StartTime,
		EndTime:       dao.EndTime,
		AllowList:     addressesFromDao(dao.AllowList),
		BlockList:     addressesFromDao(dao.BlockList),
		CreatedAt:     dao.CreatedAt,
		UpdatedAt:     dao.UpdatedAt,
	}
	for _, v := range dao.EPVersions {
		ep, err := sponsorship.ParseEPVersion(v)
		if err != nil {
			return nil, fmt.Errorf("policy %d: %w", dao.ID, err)
		}
		p.EPVersions = append(p.EPVersions, ep)
	}

	var err error
	if p.Global, err = limitsFromDao(dao.GlobalApplicable, dao.GlobalMaxUSD, dao.GlobalMaxNative, dao.GlobalMaxOps); err != nil {
		return nil, fmt.Errorf("policy %d global limits: %w", dao.ID, err)
	}
	if p.PerUser, err = limitsFromDao(dao.PerUserApplicable, dao.PerUserMaxUSD, dao.PerUserMaxNative, dao.PerUserMaxOps); err != nil {
		return nil, fmt.Errorf("policy %d per-user limits: %w", dao.ID, err)
	}
	if p.PerOp, err = limitsFromDao(dao.PerOpApplicable, dao.PerOpMaxUSD, dao.PerOpMaxNative, nil); err != nil {
		return nil, fmt.Errorf("policy %d per-op limits: %w", dao.ID, err)
	}
	return p, nil
}

func toContractEntry(dao *ContractWhitelistDao) (*sponsorship.ContractWhitelistEntry, error) {
	e := &sponsorship.ContractWhitelistEntry{
		WalletAddress:   common.HexToAddress(dao.WalletAddress),
		ContractAddress: common.HexToAddress(dao.ContractAddress),
		ChainID:         uint64(dao.ChainID),
		ABI:             dao.ABI,
		CreatedAt:       dao.CreatedAt,
	}
	for _, s := range dao.Selectors {
		sel, err := sponsorship.ParseSelector(s)
		if err != nil {
			return nil, err
		}
		e.Selectors = append(e.Selectors, sel)
	}
	return e, nil
}

func toContractWhitelistDao(e *sponsorship.ContractWhitelistEntry) *ContractWhitelistDao {
	sels := make([]string, len(e.Selectors))
	for i, s := range e.Selectors {
		sels[i] = s.String()
	}
	return &ContractWhitelistDao{
		WalletAddress:   e.WalletAddress.Hex(),
		ContractAddress: e.ContractAddress.Hex(),
		ChainID:         int64(e.ChainID),
		Selectors:       sels,
		ABI:             e.ABI,
	}
}

func toTokenPrice(dao *TokenPriceDao) (sponsorship.TokenPriceRecord, error) {
	price, err := decimal.NewFromString(dao.USDPrice)
	if err != nil {
		return sponsorship.TokenPriceRecord{}, fmt.Errorf("invalid price %q for %s: %w", dao.USDPrice, dao.TokenAddress, err)
	}
	return sponsorship.TokenPriceRecord{
		Token:     common.HexToAddress(dao.TokenAddress),
		ChainID:   uint64(dao.ChainID),
		USDPrice:  price,
		Decimals:  uint8(dao.Decimals),
		FetchedAt: dao.FetchedAt,
		TTL:       time.Duration(dao.TTLSeconds) * time.Second,
	}, nil
}

func toTokenPriceDao(r sponsorship.TokenPriceRecord) *TokenPriceDao {
	return &TokenPriceDao{
		TokenAddress: r.Token.Hex(),
		ChainID:      int64(r.ChainID),
		USDPrice:     r.USDPrice.String(),
		Decimals:     int16(r.Decimals),
		FetchedAt:    r.FetchedAt,
		TTLSeconds:   int64(r.TTL / time.Second),
	}
}
