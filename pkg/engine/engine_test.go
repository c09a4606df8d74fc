package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/contractcall"
	"github.com/etherspot/arka-sub001/pkg/ledger"
	"github.com/etherspot/arka-sub001/pkg/policy"
	"github.com/etherspot/arka-sub001/pkg/pricecache"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
	"github.com/etherspot/arka-sub001/pkg/whitelist"
)

const apiKey = "arka_key_1"

var (
	baseNow  = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	wallet   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	contract = common.HexToAddress("0x0000000000000000000000000000000000001234")
	usdc     = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	usdcPM   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000A11CE")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000B0B")
)

// fakeStore serves every read the engine's collaborators need from memory.
type fakeStore struct {
	mu        sync.Mutex
	accounts  map[string]*sponsorship.APIKeyAccount
	policies  []*sponsorship.Policy
	whitelist map[string][]common.Address
	contracts []*sponsorship.ContractWhitelistEntry
}

func whitelistKey(apiKey string, policyID *int64) string {
	if policyID == nil {
		return apiKey
	}
	return fmt.Sprintf("%s/%d", apiKey, *policyID)
}

func (f *fakeStore) GetAPIKey(_ context.Context, key string) (*sponsorship.APIKeyAccount, error) {
	acc, ok := f.accounts[key]
	if !ok {
		return nil, sponsorship.ErrAPIKeyNotFound
	}
	return acc, nil
}

func (f *fakeStore) ListPoliciesByWallet(_ context.Context, w common.Address) ([]*sponsorship.Policy, error) {
	var out []*sponsorship.Policy
	for _, p := range f.policies {
		if p.WalletAddress == w {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListWhitelist(_ context.Context, key string, policyID *int64) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.whitelist[whitelistKey(key, policyID)], nil
}

func (f *fakeStore) AddWhitelist(_ context.Context, key string, policyID *int64, addrs []common.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := whitelistKey(key, policyID)
	f.whitelist[k] = append(f.whitelist[k], addrs...)
	return nil
}

func (f *fakeStore) RemoveWhitelist(context.Context, string, *int64, []common.Address) error {
	return errors.New("not implemented")
}

func (f *fakeStore) GetContractWhitelist(
	_ context.Context,
	w, c common.Address,
	chainID uint64,
) (*sponsorship.ContractWhitelistEntry, error) {
	for _, e := range f.contracts {
		if e.WalletAddress == w && e.ContractAddress == c && e.ChainID == chainID {
			return e, nil
		}
	}
	return nil, sponsorship.ErrContractEntryNotFound
}

type fixture struct {
	store  *fakeStore
	prices *pricecache.Cache
	engine Service
}

func newFixture(t *testing.T, policies ...*sponsorship.Policy) *fixture {
	t.Helper()
	return newFixtureWith(t, nil, policies...)
}

func newFixtureWith(t *testing.T, opts []Option, policies ...*sponsorship.Policy) *fixture {
	t.Helper()
	store := &fakeStore{
		accounts: map[string]*sponsorship.APIKeyAccount{
			apiKey: {
				APIKey:          apiKey,
				WalletAddress:   wallet,
				SupportedChains: []uint64{1, 137},
				TokenPaymasters: map[uint64]map[common.Address]common.Address{1: {usdc: usdcPM}},
			},
		},
		policies:  policies,
		whitelist: make(map[string][]common.Address),
	}
	prices := pricecache.New(pricecache.WithClock(func() time.Time { return baseNow }), pricecache.WithDefaultTTL(time.Minute))

	logger := zap.NewNop()
	e := New(Deps{
		Accounts:  store,
		Resolver:  policy.NewResolver(store),
		Whitelist: whitelist.NewGuard(store, logger),
		Contracts: contractcall.NewGuard(store, logger),
		Prices:    prices,
		Ledger:    ledger.New(ledger.NewMemoryStore(), logger),
	}, logger, append([]Option{WithClock(func() time.Time { return baseNow })}, opts...)...)

	return &fixture{store: store, prices: prices, engine: NewLog(e, logger)}
}

func (f *fixture) setPrice(t *testing.T, token common.Address, usd string, decimals uint8, fetchedAt time.Time) {
	t.Helper()
	err := f.prices.Update(sponsorship.TokenPriceRecord{
		Token: token, ChainID: 1, USDPrice: decimal.RequireFromString(usd), Decimals: decimals, FetchedAt: fetchedAt,
	})
	require.NoError(t, err)
}

func basePolicy(id int64) *sponsorship.Policy {
	return &sponsorship.Policy{
		ID:            id,
		WalletAddress: wallet,
		Name:          fmt.Sprintf("policy-%d", id),
		Enabled:       true,
		AllChains:     true,
		EPVersions:    []sponsorship.EPVersion{sponsorship.EPV07},
		Perpetual:     true,
		CreatedAt:     baseNow.Add(-time.Hour),
	}
}

func withGlobalUSD(p *sponsorship.Policy, max string) *sponsorship.Policy {
	d := decimal.RequireFromString(max)
	p.Global = sponsorship.ScopeLimits{Applicable: true, MaxUSD: &d}
	return p
}

func request(user common.Address, costWei int64) *sponsorship.Request {
	return &sponsorship.Request{
		APIKey:     apiKey,
		ChainID:    1,
		EPVersion:  sponsorship.EPV07,
		EndUser:    user,
		CostNative: big.NewInt(costWei),
	}
}

func decide(t *testing.T, f *fixture, req *sponsorship.Request) *sponsorship.Decision {
	t.Helper()
	d, err := f.engine.Decide(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}

func TestDecide_PolicyResolution(t *testing.T) {
	disabled := basePolicy(1)
	disabled.Enabled = false

	windowed := basePolicy(2)
	windowed.Perpetual = false
	start, end := baseNow.Add(time.Hour), baseNow.Add(2*time.Hour)
	windowed.StartTime, windowed.EndTime = &start, &end

	tests := []struct {
		name     string
		policies []*sponsorship.Policy
		want     sponsorship.Reason
	}{
		{name: "no policy", want: sponsorship.ReasonNoPolicyDefined},
		{name: "disabled", policies: []*sponsorship.Policy{disabled}, want: sponsorship.ReasonPolicyDisabled},
		{name: "outside window", policies: []*sponsorship.Policy{windowed}, want: sponsorship.ReasonPolicyNotInTimeWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.policies...)
			d := decide(t, f, request(alice, 1))
			assert.False(t, d.Admit)
			assert.Equal(t, tt.want, d.Reason)
			assert.Nil(t, d.PolicyID)
			assert.Equal(t, baseNow, d.EvaluatedAt)
		})
	}
}

func TestDecide_UnknownAPIKey(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	req := request(alice, 1)
	req.APIKey = "unknown"

	_, err := f.engine.Decide(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnauthorized))
}

func TestDecide_UnsupportedChain(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	req := request(alice, 1)
	req.ChainID = 10

	d := decide(t, f, req)
	assert.Equal(t, sponsorship.ReasonUnsupportedChain, d.Reason)
	require.NotNil(t, d.PolicyID)
	assert.Equal(t, int64(1), *d.PolicyID)
}

func TestDecide_WhitelistAndBlocklist(t *testing.T) {
	p := basePolicy(1)
	p.AllowList = []common.Address{alice}
	p.BlockList = []common.Address{alice}
	f := newFixture(t, p)

	d := decide(t, f, request(alice, 1))
	assert.Equal(t, sponsorship.ReasonAddressBlocked, d.Reason, "block list wins over allow list")

	d = decide(t, f, request(bob, 1))
	assert.Equal(t, sponsorship.ReasonAddressNotWhitelisted, d.Reason)

	require.NoError(t, f.store.AddWhitelist(context.Background(), apiKey, nil, []common.Address{bob}))
	d = decide(t, f, request(bob, 1))
	assert.True(t, d.Admit)
}

func TestDecide_ContractCall(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	f.store.accounts[apiKey].ContractWhitelistMode = true
	sel, err := sponsorship.ParseSelector("0xabcdef01")
	require.NoError(t, err)
	f.store.contracts = []*sponsorship.ContractWhitelistEntry{
		{WalletAddress: wallet, ContractAddress: contract, ChainID: 1, Selectors: []sponsorship.Selector{sel}},
	}

	call := func(chainID uint64, data []byte) *sponsorship.Request {
		req := request(alice, 1)
		req.ChainID = chainID
		target := contract
		req.Target = &target
		req.CallData = data
		return req
	}
	callData := append([]byte{0xab, 0xcd, 0xef, 0x01}, make([]byte, 32)...)

	d := decide(t, f, call(1, callData))
	assert.True(t, d.Admit)

	d = decide(t, f, call(137, callData))
	assert.Equal(t, sponsorship.ReasonContractCallNotPermitted, d.Reason)

	d = decide(t, f, call(1, []byte{0xa9, 0x05, 0x9c, 0xbb}))
	assert.Equal(t, sponsorship.ReasonContractCallNotPermitted, d.Reason)

	noTarget := request(alice, 1)
	d = decide(t, f, noTarget)
	assert.Equal(t, sponsorship.ReasonContractCallNotPermitted, d.Reason)

	_, err = f.engine.Decide(context.Background(), call(1, []byte{0xab}))
	require.ErrorIs(t, err, contractcall.ErrMalformedCallData)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestDecide_GlobalUSDCeiling(t *testing.T) {
	f := newFixture(t, withGlobalUSD(basePolicy(1), "100"))
	f.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow)

	// 0.0475 ETH at $2000 is $95.
	d := decide(t, f, request(alice, 47_500_000_000_000_000))
	require.True(t, d.Admit)
	assert.True(t, d.CostUSD.Equal(decimal.NewFromInt(95)))

	// $10 would pass the $100 ceiling.
	d = decide(t, f, request(bob, 5_000_000_000_000_000))
	assert.False(t, d.Admit)
	assert.Equal(t, sponsorship.ReasonGlobalLimitExceeded, d.Reason)
	require.NotNil(t, d.Limit)
	assert.Equal(t, sponsorship.DimensionUSD, d.Limit.Dimension)

	// $5 lands exactly on the ceiling.
	d = decide(t, f, request(bob, 2_500_000_000_000_000))
	require.True(t, d.Admit)
	require.NotNil(t, d.Remaining)
	assert.True(t, d.Remaining.USD.IsZero())
}

func TestDecide_PriceUnavailable(t *testing.T) {
	f := newFixture(t, withGlobalUSD(basePolicy(1), "100"))

	d := decide(t, f, request(alice, 1_000))
	assert.Equal(t, sponsorship.ReasonPriceUnavailable, d.Reason)

	f.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow.Add(-2*time.Minute))
	d = decide(t, f, request(alice, 1_000))
	assert.Equal(t, sponsorship.ReasonPriceUnavailable, d.Reason, "stale prices fail closed")

	lenient := newFixtureWith(t, []Option{WithAllowStalePrices(true)}, withGlobalUSD(basePolicy(1), "100"))
	lenient.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow.Add(-2*time.Minute))
	d = decide(t, lenient, request(alice, 1_000))
	assert.True(t, d.Admit)
}

func TestDecideHTTP_CallerCannotAllowStalePrices(t *testing.T) {
	f := newFixture(t, withGlobalUSD(basePolicy(1), "100"))
	f.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow.Add(-2*time.Minute))

	r := chi.NewRouter()
	RegisterRoutes(r, f.engine, zap.NewNop())
	body := `{"api_key":"` + apiKey + `","chain_id":1,"ep_version":"EPV_07","end_user":"` + alice.Hex() +
		`","cost_native":"1000","allow_stale_price":true}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sponsorship/decide", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var d sponsorship.Decision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.False(t, d.Admit)
	assert.Equal(t, sponsorship.ReasonPriceUnavailable, d.Reason)
}

func TestDecide_NoUSDCeilingSkipsPricing(t *testing.T) {
	p := basePolicy(1)
	p.PerOp = sponsorship.ScopeLimits{Applicable: true, MaxNative: big.NewInt(1_000)}
	f := newFixture(t, p)

	d := decide(t, f, request(alice, 1_000))
	assert.True(t, d.Admit)
	assert.Nil(t, d.CostUSD)

	d = decide(t, f, request(alice, 1_001))
	assert.Equal(t, sponsorship.ReasonPerOpLimitExceeded, d.Reason)
}

func TestDecide_GasTokenQuote(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	f.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow)

	req := request(alice, 1_000_000_000_000_000) // 0.001 ETH = $2
	token := usdc
	req.GasToken = &token

	d := decide(t, f, req)
	assert.Equal(t, sponsorship.ReasonPriceUnavailable, d.Reason, "missing gas token price")

	f.setPrice(t, usdc, "1", 6, baseNow)
	d = decide(t, f, req)
	require.True(t, d.Admit)
	require.NotNil(t, d.CostToken)
	assert.Equal(t, int64(2_000_000), d.CostToken.Int64())

	other := common.HexToAddress("0x4444444444444444444444444444444444444444")
	req.GasToken = &other
	_, err := f.engine.Decide(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestDecide_MonthlyQuota(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	quota := int64(1)
	f.store.accounts[apiKey].MonthlyTxQuota = &quota

	assert.True(t, decide(t, f, request(alice, 1)).Admit)

	d := decide(t, f, request(bob, 1))
	assert.Equal(t, sponsorship.ReasonMonthlyQuotaExceeded, d.Reason)
}

func TestDecide_InvalidCost(t *testing.T) {
	f := newFixture(t, basePolicy(1))
	req := request(alice, -1)

	_, err := f.engine.Decide(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestDecide_ConcurrentPairExactlyOneAdmits(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t, withGlobalUSD(basePolicy(1), "100"))
		f.setPrice(t, sponsorship.NativeToken, "2000", 18, baseNow)

		// Two $60 operations against a $100 ceiling.
		var admitted, denied atomic.Int32
		var wg sync.WaitGroup
		for _, user := range []common.Address{alice, bob} {
			wg.Add(1)
			go func(user common.Address) {
				defer wg.Done()
				d, err := f.engine.Decide(context.Background(), request(user, 30_000_000_000_000_000))
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if d.Admit {
					admitted.Add(1)
				} else if d.Reason == sponsorship.ReasonGlobalLimitExceeded {
					denied.Add(1)
				}
			}(user)
		}
		wg.Wait()

		require.Equal(t, int32(1), admitted.Load())
		require.Equal(t, int32(1), denied.Load())
	}
}
