package sponsorship

import (
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// APIKeyAccount is the operator account an API key belongs to.
type APIKeyAccount struct {
	APIKey        string
	WalletAddress common.Address
	// SigningKeyRef points at the paymaster signer in the secret store. It is never resolved here.
	SigningKeyRef string
	// SupportedChains is empty when the key is valid on every chain.
	SupportedChains []uint64
	MonthlyTxQuota  *int64
	// TokenPaymasters maps chain to gas token to the custom ERC-20 paymaster serving it.
	TokenPaymasters       map[uint64]map[common.Address]common.Address
	ContractWhitelistMode bool
	CreatedAt             time.Time
}

// SupportsChain reports whether the key may be used on chainID.
func (a *APIKeyAccount) SupportsChain(chainID uint64) bool {
	return len(a.SupportedChains) == 0 || slices.Contains(a.SupportedChains, chainID)
}

// TokenPaymaster returns the paymaster accepting token as gas on chainID.
func (a *APIKeyAccount) TokenPaymaster(chainID uint64, token common.Address) (common.Address, bool) {
	pm, ok := a.TokenPaymasters[chainID][token]
	return pm, ok
}
