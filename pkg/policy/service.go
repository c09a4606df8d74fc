package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

// AdminStore is the narrow data-access interface for policy administration.
//
//go:generate mockery --name AdminStore --output mocks --outpkg mocks --filename mock_admin_store.go --with-expecter
type AdminStore interface {
	GetAPIKey(ctx context.Context, apiKey string) (*sponsorship.APIKeyAccount, error)
	CreatePolicy(ctx context.Context, p *sponsorship.Policy) (*sponsorship.Policy, error)
	SetPolicyEnabled(ctx context.Context, id int64, enabled bool) (*sponsorship.Policy, error)
}

// UsageResetter clears the limit counters of a policy.
type UsageResetter interface {
	Reset(ctx context.Context, policyID int64) error
}

// Service administers sponsorship policies
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*sponsorship.Policy, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) (*sponsorship.Policy, error)
	ResetUsage(ctx context.Context, id int64) error
}

type policyService struct {
	store    AdminStore
	usage    UsageResetter
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new policy administration service
func NewService(store AdminStore, usage UsageResetter, logger *zap.Logger) Service {
	return &policyService{
		store:    store,
		usage:    usage,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create validates req against the owning API key and stores the policy.
func (s *policyService) Create(ctx context.Context, req *CreateRequest) (*sponsorship.Policy, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	account, err := s.store.GetAPIKey(ctx, req.APIKey)
	if errors.Is(err, sponsorship.ErrAPIKeyNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "api key not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}

	p, err := req.ToPolicy(account.WalletAddress)
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	if err := ValidateNew(account, p); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	created, err := s.store.CreatePolicy(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	s.logger.Info("Policy created",
		zap.Int64("policy_id", created.ID),
		zap.String("wallet", created.WalletAddress.Hex()),
		zap.Bool("enabled", created.Enabled))
	return created, nil
}

func (s *policyService) SetEnabled(ctx context.Context, id int64, enabled bool) (*sponsorship.Policy, error) {
	p, err := s.store.SetPolicyEnabled(ctx, id, enabled)
	if errors.Is(err, sponsorship.ErrPolicyNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "policy not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	s.logger.Info("Policy enabled flag changed", zap.Int64("policy_id", id), zap.Bool("enabled", enabled))
	return p, nil
}

// ResetUsage clears every counter of the policy. Counters never reset on their own.
func (s *policyService) ResetUsage(ctx context.Context, id int64) error {
	if err := s.usage.Reset(ctx, id); err != nil {
		return fmt.Errorf("failed to reset usage: %w", err)
	}
	s.logger.Info("Policy usage reset", zap.Int64("policy_id", id))
	return nil
}
