// Package sponsorstore persists API keys, policies, whitelists and token prices in postgres.
package sponsorstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the sponsorship store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

func policyIDToDao(policyID *int64) int64 {
	if policyID == nil {
		return 0
	}
	return *policyID
}

func (s *pgStore) CreateAPIKey(ctx context.Context, acc *sponsorship.APIKeyAccount) error {
	_, err := s.db.NewInsert().Model(toAPIKeyDao(acc)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

func (s *pgStore) GetAPIKey(ctx context.Context, apiKey string) (*sponsorship.APIKeyAccount, error) {
	dao := new(APIKeyDao)
	err := s.db.NewSelect().Model(dao).Where("api_key = ?", apiKey).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sponsorship.ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return toAPIKey(dao)
}

func (s *pgStore) ListPoliciesByWallet(ctx context.Context, wallet common.Address) ([]*sponsorship.Policy, error) {
	var daos []PolicyDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", wallet.Hex()).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	policies := make([]*sponsorship.Policy, 0, len(daos))
	for i := range daos {
		p, err := toPolicy(&daos[i])
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

func (s *pgStore) CreatePolicy(ctx context.Context, p *sponsorship.Policy) (*sponsorship.Policy, error) {
	dao := toPolicyDao(p)
	dao.ID = 0
	err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return toPolicy(dao)
}

func (s *pgStore) SetPolicyEnabled(ctx context.Context, id int64, enabled bool) (*sponsorship.Policy, error) {
	dao := new(PolicyDao)
	res, err := s.db.NewUpdate().
		Model(dao).
		Set("is_enabled = ?", enabled).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sponsorship.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sponsorship.ErrPolicyNotFound
	}
	return toPolicy(dao)
}

func (s *pgStore) ListWhitelist(ctx context.Context, apiKey string, policyID *int64) ([]common.Address, error) {
	var daos []WhitelistDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("api_key = ?", apiKey).
		Where("policy_id = ?", policyIDToDao(policyID)).
		Order("created_at ASC", "address ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist: %w", err)
	}
	addrs := make([]common.Address, len(daos))
	for i := range daos {
		addrs[i] = common.HexToAddress(daos[i].Address)
	}
	return addrs, nil
}

// AddWhitelist inserts all addresses in one statement. When any of them is already listed the
// insert fails as a whole with sponsorship.ErrWhitelistEntryExists.
func (s *pgStore) AddWhitelist(ctx context.Context, apiKey string, policyID *int64, addresses []common.Address) error {
	if len(addresses) == 0 {
		return nil
	}
	daos := make([]WhitelistDao, len(addresses))
	for i, a := range addresses {
		daos[i] = WhitelistDao{APIKey: apiKey, PolicyID: policyIDToDao(policyID), Address: a.Hex()}
	}
	_, err := s.db.NewInsert().
		Model(&daos).
		Exec(ctx)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", sponsorship.ErrWhitelistEntryExists, err)
	}
	if err != nil {
		return fmt.Errorf("failed to add whitelist entries: %w", err)
	}
	return nil
}

// RemoveWhitelist deletes all addresses or none. When any of them is not listed it returns
// sponsorship.ErrWhitelistEntryMissing and rolls back.
func (s *pgStore) RemoveWhitelist(ctx context.Context, apiKey string, policyID *int64, addresses []common.Address) error {
	if len(addresses) == 0 {
		return nil
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*WhitelistDao)(nil)).
			Where("api_key = ?", apiKey).
			Where("policy_id = ?", policyIDToDao(policyID)).
			Where("address IN (?)", bun.In(addressesToDao(addresses))).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove whitelist entries: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to count removed whitelist entries: %w", err)
		}
		if n != int64(len(addresses)) {
			return fmt.Errorf("%w: removed %d of %d", sponsorship.ErrWhitelistEntryMissing, n, len(addresses))
		}
		return nil
	})
}

func (s *pgStore) GetContractWhitelist(
	ctx context.Context,
	wallet, contract common.Address,
	chainID uint64,
) (*sponsorship.ContractWhitelistEntry, error) {
	dao := new(ContractWhitelistDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", wallet.Hex()).
		Where("contract_address = ?", contract.Hex()).
		Where("chain_id = ?", int64(chainID)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sponsorship.ErrContractEntryNotFound
		}
		return nil, fmt.Errorf("failed to get contract whitelist: %w", err)
	}
	return toContractEntry(dao)
}

func (s *pgStore) UpsertContractWhitelist(ctx context.Context, entry *sponsorship.ContractWhitelistEntry) error {
	_, err := s.db.NewInsert().
		Model(toContractWhitelistDao(entry)).
		On("CONFLICT (wallet_address, contract_address, chain_id) DO UPDATE").
		Set("function_selectors = EXCLUDED.function_selectors").
		Set("abi = EXCLUDED.abi").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert contract whitelist: %w", err)
	}
	return nil
}

func (s *pgStore) ListTokenPrices(ctx context.Context) ([]sponsorship.TokenPriceRecord, error) {
	var daos []TokenPriceDao
	if err := s.db.NewSelect().Model(&daos).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list token prices: %w", err)
	}
	out := make([]sponsorship.TokenPriceRecord, 0, len(daos))
	for i := range daos {
		r, err := toTokenPrice(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *pgStore) UpsertTokenPrice(ctx context.Context, r sponsorship.TokenPriceRecord) error {
	_, err := s.db.NewInsert().
		Model(toTokenPriceDao(r)).
		On("CONFLICT (token_address, chain_id) DO UPDATE").
		Set("usd_price = EXCLUDED.usd_price").
		Set("decimals = EXCLUDED.decimals").
		Set("fetched_at = EXCLUDED.fetched_at").
		Set("ttl_seconds = EXCLUDED.ttl_seconds").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert token price: %w", err)
	}
	return nil
}
