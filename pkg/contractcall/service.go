package contractcall

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/auth"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// AdminStore is the data-access interface used to manage contract whitelist entries.
//
//go:generate mockery --name AdminStore --output mocks --outpkg mocks --filename mock_admin_store.go --with-expecter
type AdminStore interface {
	Store
	GetAPIKey(ctx context.Context, apiKey string) (*sponsorship.APIKeyAccount, error)
	UpsertContractWhitelist(ctx context.Context, entry *sponsorship.ContractWhitelistEntry) error
}

// UpsertRequest replaces the permitted functions of one contract on one chain. Each selector is
// either 4 hex bytes ("0xa9059cbb") or a canonical signature ("transfer(address,uint256)").
type UpsertRequest struct {
	APIKey          string   `json:"api_key"`
	ContractAddress string   `json:"contract_address"`
	ChainID         uint64   `json:"chain_id"`
	Selectors       []string `json:"selectors"`
	ABI             string   `json:"abi,omitempty"`
}

// Service manages contract whitelist entries
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Upsert(ctx context.Context, req *UpsertRequest) (*sponsorship.ContractWhitelistEntry, error)
	Get(ctx context.Context, apiKey, contract string, chainID uint64) (*sponsorship.ContractWhitelistEntry, error)
}

type contractService struct {
	store  AdminStore
	logger *zap.Logger
}

// NewService creates a new contract whitelist management service
func NewService(store AdminStore, logger *zap.Logger) Service {
	return &contractService{store: store, logger: logger}
}

func (s *contractService) Upsert(ctx context.Context, req *UpsertRequest) (*sponsorship.ContractWhitelistEntry, error) {
	entry, err := req.toEntry()
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	account, err := s.account(ctx, req.APIKey)
	if err != nil {
		return nil, err
	}
	entry.WalletAddress = account.WalletAddress

	if err := ValidateEntry(entry); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	if err := s.store.UpsertContractWhitelist(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert contract whitelist: %w", err)
	}

	s.logger.Info("Contract whitelist entry stored",
		zap.String("wallet", entry.WalletAddress.Hex()),
		zap.String("contract", entry.ContractAddress.Hex()),
		zap.Uint64("chain_id", entry.ChainID),
		zap.Int("selectors", len(entry.Selectors)))
	return entry, nil
}

func (s *contractService) Get(
	ctx context.Context,
	apiKey, contract string,
	chainID uint64,
) (*sponsorship.ContractWhitelistEntry, error) {
	addr, err := auth.ParseAddress(contract)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid contract address")
	}
	account, err := s.account(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.GetContractWhitelist(ctx, account.WalletAddress, addr, chainID)
	if errors.Is(err, sponsorship.ErrContractEntryNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "contract is not whitelisted")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract whitelist: %w", err)
	}
	return entry, nil
}

func (s *contractService) account(ctx context.Context, apiKey string) (*sponsorship.APIKeyAccount, error) {
	if apiKey == "" {
		return nil, apperrors.BadRequestError(nil, "api_key is required")
	}
	account, err := s.store.GetAPIKey(ctx, apiKey)
	if errors.Is(err, sponsorship.ErrAPIKeyNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "api key not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return account, nil
}

func (r *UpsertRequest) toEntry() (*sponsorship.ContractWhitelistEntry, error) {
	contract, err := auth.ParseAddress(r.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: contract_address: %v", ErrInvalidEntry, err)
	}

	entry := &sponsorship.ContractWhitelistEntry{
		ContractAddress: contract,
		ChainID:         r.ChainID,
		ABI:             strings.TrimSpace(r.ABI),
	}
	for _, raw := range r.Selectors {
		sel, err := parseSelector(raw)
		if err != nil {
			return nil, err
		}
		if !entry.Allows(sel) {
			entry.Selectors = append(entry.Selectors, sel)
		}
	}
	return entry, nil
}

func parseSelector(raw string) (sponsorship.Selector, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "(") {
		return SelectorFromSignature(raw), nil
	}
	sel, err := sponsorship.ParseSelector(raw)
	if err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return sel, nil
}
