package whitelist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/auth"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

var (
	ErrAlreadyWhitelisted = errors.New("address already whitelisted")
	ErrNotWhitelisted     = errors.New("address not whitelisted")
	ErrNoAddresses        = errors.New("no addresses provided")
	ErrMissingAPIKey      = errors.New("api key is required")
)

// Service manages whitelist entries
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Add(ctx context.Context, apiKey string, policyID *int64, addresses []string) ([]common.Address, error)
	Remove(ctx context.Context, apiKey string, policyID *int64, addresses []string) ([]common.Address, error)
	List(ctx context.Context, apiKey string, policyID *int64) ([]common.Address, error)
	Check(ctx context.Context, apiKey string, policyID *int64, address string) (bool, error)
}

type whitelistService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new whitelist management service
func NewService(store Store, logger *zap.Logger) Service {
	return &whitelistService{store: store, logger: logger}
}

// Add whitelists addresses. The call is all-or-nothing: when any address is already present
// nothing is inserted and the offending addresses are reported.
func (s *whitelistService) Add(
	ctx context.Context,
	apiKey string,
	policyID *int64,
	addresses []string,
) ([]common.Address, error) {
	addrs, err := parseRequest(apiKey, addresses)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListWhitelist(ctx, apiKey, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist: %w", err)
	}

	if present := intersect(addrs, existing, true); len(present) > 0 {
		return nil, alreadyWhitelisted(present)
	}

	// A concurrent Add may have inserted one of addrs since the list above; the store rejects
	// the whole insert in that case.
	err = s.store.AddWhitelist(ctx, apiKey, policyID, addrs)
	if errors.Is(err, sponsorship.ErrWhitelistEntryExists) {
		return nil, alreadyWhitelisted(s.offenders(ctx, apiKey, policyID, addrs, true))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add whitelist entries: %w", err)
	}

	s.logger.Info("Whitelist entries added",
		zap.Int64p("policy_id", policyID),
		zap.Int("count", len(addrs)))
	return addrs, nil
}

// Remove deletes addresses. When any address is absent nothing is removed.
func (s *whitelistService) Remove(
	ctx context.Context,
	apiKey string,
	policyID *int64,
	addresses []string,
) ([]common.Address, error) {
	addrs, err := parseRequest(apiKey, addresses)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListWhitelist(ctx, apiKey, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist: %w", err)
	}

	if missing := intersect(addrs, existing, false); len(missing) > 0 {
		return nil, notWhitelisted(missing)
	}

	err = s.store.RemoveWhitelist(ctx, apiKey, policyID, addrs)
	if errors.Is(err, sponsorship.ErrWhitelistEntryMissing) {
		return nil, notWhitelisted(s.offenders(ctx, apiKey, policyID, addrs, false))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove whitelist entries: %w", err)
	}

	s.logger.Info("Whitelist entries removed",
		zap.Int64p("policy_id", policyID),
		zap.Int("count", len(addrs)))
	return addrs, nil
}

func (s *whitelistService) List(ctx context.Context, apiKey string, policyID *int64) ([]common.Address, error) {
	if apiKey == "" {
		return nil, apperrors.BadRequestError(ErrMissingAPIKey, "api_key is required")
	}
	addrs, err := s.store.ListWhitelist(ctx, apiKey, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist: %w", err)
	}
	return addrs, nil
}

func (s *whitelistService) Check(ctx context.Context, apiKey string, policyID *int64, address string) (bool, error) {
	if apiKey == "" {
		return false, apperrors.BadRequestError(ErrMissingAPIKey, "api_key is required")
	}
	addr, err := auth.ParseAddress(address)
	if err != nil {
		return false, apperrors.BadRequestError(err, "invalid address")
	}
	existing, err := s.store.ListWhitelist(ctx, apiKey, policyID)
	if err != nil {
		return false, fmt.Errorf("failed to list whitelist: %w", err)
	}
	return slices.Contains(existing, addr), nil
}

// offenders re-reads the list after the store rejected a write. It returns addrs when the list
// cannot be read.
func (s *whitelistService) offenders(
	ctx context.Context,
	apiKey string,
	policyID *int64,
	addrs []common.Address,
	present bool,
) []common.Address {
	existing, err := s.store.ListWhitelist(ctx, apiKey, policyID)
	if err != nil {
		s.logger.Warn("Failed to list whitelist after rejected write", zap.Error(err))
		return addrs
	}
	if out := intersect(addrs, existing, present); len(out) > 0 {
		return out
	}
	return addrs
}

// intersect returns the addrs that are (present) or are not (!present) in existing.
func intersect(addrs, existing []common.Address, present bool) []common.Address {
	var out []common.Address
	for _, a := range addrs {
		if slices.Contains(existing, a) == present {
			out = append(out, a)
		}
	}
	return out
}

func alreadyWhitelisted(addrs []common.Address) error {
	joined := joinAddresses(addrs)
	return apperrors.ConflictError(fmt.Errorf("%w: %s", ErrAlreadyWhitelisted, joined), "addresses already whitelisted: "+joined)
}

func notWhitelisted(addrs []common.Address) error {
	joined := joinAddresses(addrs)
	return apperrors.ResourceNotFoundError(fmt.Errorf("%w: %s", ErrNotWhitelisted, joined), "addresses not whitelisted: "+joined)
}

func parseRequest(apiKey string, addresses []string) ([]common.Address, error) {
	if apiKey == "" {
		return nil, apperrors.BadRequestError(ErrMissingAPIKey, "api_key is required")
	}
	if len(addresses) == 0 {
		return nil, apperrors.BadRequestError(ErrNoAddresses, "addresses are required")
	}
	addrs, err := auth.ParseAddresses(addresses)
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	return addrs, nil
}

func joinAddresses(addrs []common.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.Hex()
	}
	return strings.Join(parts, ", ")
}
