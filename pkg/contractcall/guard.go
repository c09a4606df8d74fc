// Package contractcall restricts sponsored operations to whitelisted contract functions.
package contractcall

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

var (
	ErrMalformedCallData = errors.New("call data shorter than a function selector")
	ErrInvalidEntry      = errors.New("invalid contract whitelist entry")
)

// Store reads contract whitelist entries.
type Store interface {
	// GetContractWhitelist returns sponsorship.ErrContractEntryNotFound when no entry exists.
	GetContractWhitelist(
		ctx context.Context,
		wallet, contract common.Address,
		chainID uint64,
	) (*sponsorship.ContractWhitelistEntry, error)
}

// Guard decides whether an account may sponsor a call to a contract function.
type Guard struct {
	store  Store
	logger *zap.Logger
}

// NewGuard creates a Guard.
func NewGuard(store Store, logger *zap.Logger) *Guard {
	return &Guard{store: store, logger: logger}
}

// IsPermitted reports whether selector on contract is whitelisted for the account on chainID.
// Accounts without contract whitelist mode permit every call.
func (g *Guard) IsPermitted(
	ctx context.Context,
	account *sponsorship.APIKeyAccount,
	contract common.Address,
	selector sponsorship.Selector,
	chainID uint64,
) (bool, error) {
	if !account.ContractWhitelistMode {
		return true, nil
	}

	entry, err := g.store.GetContractWhitelist(ctx, account.WalletAddress, contract, chainID)
	if errors.Is(err, sponsorship.ErrContractEntryNotFound) {
		g.logger.Info("Contract call denied: contract not whitelisted",
			zap.String("wallet", account.WalletAddress.Hex()),
			zap.String("contract", contract.Hex()),
			zap.Uint64("chain_id", chainID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load contract whitelist: %w", err)
	}

	if !entry.Allows(selector) {
		g.logger.Info("Contract call denied: function not whitelisted",
			zap.String("wallet", account.WalletAddress.Hex()),
			zap.String("contract", contract.Hex()),
			zap.String("selector", selector.String()),
			zap.Uint64("chain_id", chainID))
		return false, nil
	}
	return true, nil
}

// ExtractSelector returns the first four bytes of callData.
func ExtractSelector(callData []byte) (sponsorship.Selector, error) {
	var sel sponsorship.Selector
	if len(callData) < len(sel) {
		return sel, fmt.Errorf("%w: got %d bytes", ErrMalformedCallData, len(callData))
	}
	copy(sel[:], callData[:len(sel)])
	return sel, nil
}

// SelectorFromSignature derives the selector of a canonical function signature such as
// "transfer(address,uint256)".
func SelectorFromSignature(signature string) sponsorship.Selector {
	var sel sponsorship.Selector
	copy(sel[:], crypto.Keccak256([]byte(strings.ReplaceAll(signature, " ", ""))))
	return sel
}

// ValidateEntry checks an entry before it is stored. When an ABI is attached every selector
// must belong to one of its methods.
func ValidateEntry(entry *sponsorship.ContractWhitelistEntry) error {
	if entry.ContractAddress == (common.Address{}) {
		return fmt.Errorf("%w: contract address is required", ErrInvalidEntry)
	}
	if entry.ChainID == 0 {
		return fmt.Errorf("%w: chain id is required", ErrInvalidEntry)
	}
	if len(entry.Selectors) == 0 {
		return fmt.Errorf("%w: at least one selector is required", ErrInvalidEntry)
	}
	if entry.ABI == "" {
		return nil
	}

	parsed, err := abi.JSON(strings.NewReader(entry.ABI))
	if err != nil {
		return fmt.Errorf("%w: parse abi: %v", ErrInvalidEntry, err)
	}
	for _, sel := range entry.Selectors {
		if _, err := parsed.MethodById(sel[:]); err != nil {
			return fmt.Errorf("%w: selector %s not found in abi", ErrInvalidEntry, sel)
		}
	}
	return nil
}
