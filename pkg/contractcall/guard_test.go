package contractcall

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

const erc20ABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable",
	 "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

var (
	wallet   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	contract = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

type entryKey struct {
	wallet, contract common.Address
	chainID          uint64
}

type fakeStore struct {
	entries map[entryKey]*sponsorship.ContractWhitelistEntry
	err     error
}

func (f *fakeStore) GetContractWhitelist(
	_ context.Context,
	w, c common.Address,
	chainID uint64,
) (*sponsorship.ContractWhitelistEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[entryKey{w, c, chainID}]
	if !ok {
		return nil, sponsorship.ErrContractEntryNotFound
	}
	return e, nil
}

func mustSelector(t *testing.T, s string) sponsorship.Selector {
	t.Helper()
	sel, err := sponsorship.ParseSelector(s)
	if err != nil {
		t.Fatalf("parse selector %q: %v", s, err)
	}
	return sel
}

func TestIsPermitted(t *testing.T) {
	allowed := mustSelector(t, "0xabcdef01")
	store := &fakeStore{entries: map[entryKey]*sponsorship.ContractWhitelistEntry{
		{wallet, contract, 1}: {
			WalletAddress: wallet, ContractAddress: contract, ChainID: 1,
			Selectors: []sponsorship.Selector{allowed},
		},
	}}
	guard := NewGuard(store, zap.NewNop())
	restricted := &sponsorship.APIKeyAccount{WalletAddress: wallet, ContractWhitelistMode: true}

	tests := []struct {
		name     string
		account  *sponsorship.APIKeyAccount
		contract common.Address
		selector sponsorship.Selector
		chainID  uint64
		want     bool
	}{
		{"whitelisted selector", restricted, contract, allowed, 1, true},
		{"other selector", restricted, contract, mustSelector(t, "0x12345678"), 1, false},
		{"same contract other chain", restricted, contract, allowed, 137, false},
		{"unknown contract", restricted, common.HexToAddress("0x3333333333333333333333333333333333333333"), allowed, 1, false},
		{"mode off", &sponsorship.APIKeyAccount{WalletAddress: wallet}, contract, mustSelector(t, "0x12345678"), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guard.IsPermitted(context.Background(), tt.account, tt.contract, tt.selector, tt.chainID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsPermitted_StoreError(t *testing.T) {
	guard := NewGuard(&fakeStore{err: errors.New("connection reset")}, zap.NewNop())
	account := &sponsorship.APIKeyAccount{WalletAddress: wallet, ContractWhitelistMode: true}

	ok, err := guard.IsPermitted(context.Background(), account, contract, sponsorship.Selector{}, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if ok {
		t.Fatal("store errors must not permit the call")
	}
}

func TestExtractSelector(t *testing.T) {
	sel, err := ExtractSelector(common.FromHex("0xa9059cbb000000000000000000000000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.String() != "0xa9059cbb" {
		t.Fatalf("unexpected selector %s", sel)
	}

	for _, data := range [][]byte{nil, {}, {0xa9, 0x05, 0x9c}} {
		if _, err := ExtractSelector(data); !errors.Is(err, ErrMalformedCallData) {
			t.Fatalf("expected ErrMalformedCallData for %x, got %v", data, err)
		}
	}
}

func TestSelectorFromSignature(t *testing.T) {
	if got := SelectorFromSignature("transfer(address,uint256)").String(); got != "0xa9059cbb" {
		t.Fatalf("unexpected transfer selector %s", got)
	}
	if got := SelectorFromSignature("approve(address, uint256)").String(); got != "0x095ea7b3" {
		t.Fatalf("unexpected approve selector %s", got)
	}
}

func TestValidateEntry(t *testing.T) {
	base := func() *sponsorship.ContractWhitelistEntry {
		return &sponsorship.ContractWhitelistEntry{
			WalletAddress:   wallet,
			ContractAddress: contract,
			ChainID:         1,
			Selectors:       []sponsorship.Selector{SelectorFromSignature("transfer(address,uint256)")},
		}
	}

	if err := ValidateEntry(base()); err != nil {
		t.Fatalf("entry without abi should be valid: %v", err)
	}

	withABI := base()
	withABI.ABI = erc20ABI
	withABI.Selectors = append(withABI.Selectors, SelectorFromSignature("approve(address,uint256)"))
	if err := ValidateEntry(withABI); err != nil {
		t.Fatalf("abi selectors should validate: %v", err)
	}

	unknown := base()
	unknown.ABI = erc20ABI
	unknown.Selectors = []sponsorship.Selector{mustSelector(t, "0xabcdef01")}
	if err := ValidateEntry(unknown); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for selector outside abi, got %v", err)
	}

	badABI := base()
	badABI.ABI = "{not json"
	if err := ValidateEntry(badABI); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for bad abi, got %v", err)
	}

	noSelectors := base()
	noSelectors.Selectors = nil
	if err := ValidateEntry(noSelectors); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry without selectors, got %v", err)
	}

	noChain := base()
	noChain.ChainID = 0
	if err := ValidateEntry(noChain); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry without chain, got %v", err)
	}
}
