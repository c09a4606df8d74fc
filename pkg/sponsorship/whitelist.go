package sponsorship

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// WhitelistEntry is a key-level (PolicyID == nil) or policy-level address membership.
type WhitelistEntry struct {
	APIKey    string
	PolicyID  *int64
	Address   common.Address
	CreatedAt time.Time
}

// Selector is the 4-byte function identifier prefix of call data.
type Selector [4]byte

// String returns the 0x-prefixed hex form.
func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

// ParseSelector parses a 0x-prefixed or bare 8 hex digit selector.
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	raw, err := hexutil.Decode("0x" + strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return sel, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	if len(raw) != len(sel) {
		return sel, fmt.Errorf("invalid selector %q: expected 4 bytes, got %d", s, len(raw))
	}
	copy(sel[:], raw)
	return sel, nil
}

// ContractWhitelistEntry lists the functions an operator allows on one contract and chain.
type ContractWhitelistEntry struct {
	WalletAddress   common.Address
	ContractAddress common.Address
	ChainID         uint64
	Selectors       []Selector
	ABI             string
	CreatedAt       time.Time
}

// Allows reports whether sel is among the permitted selectors.
func (e *ContractWhitelistEntry) Allows(sel Selector) bool {
	return slices.Contains(e.Selectors, sel)
}

// TokenPriceRecord is one fetched spot price. The zero token address denotes the chain native coin.
type TokenPriceRecord struct {
	Token     common.Address
	ChainID   uint64
	USDPrice  decimal.Decimal
	Decimals  uint8
	FetchedAt time.Time
	TTL       time.Duration
}

// NativeToken is the token address used for the chain native coin.
var NativeToken = common.Address{}
