package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type pgStore struct {
	db  *bun.DB
	now func() time.Time
}

// NewPGStore creates a postgres UsageStore. Concurrent updates across instances serialize on
// the counter rows.
func NewPGStore(db *bun.DB) UsageStore {
	return &pgStore{db: db, now: time.Now}
}

func (s *pgStore) Update(ctx context.Context, keys []Key, fn UpdateFunc) error {
	keys = canonical(keys)
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := s.now().UTC()
		daos := make(map[Key]*UsageDao, len(keys))
		current := make(map[Key]Usage, len(keys))

		// The no-op upsert creates missing counters and row-locks existing ones in one statement.
		for _, k := range keys {
			dao := newUsageDao(k, now)
			err := tx.NewInsert().
				Model(dao).
				On("CONFLICT (policy_id, scope, subject) DO UPDATE").
				Set("updated_at = EXCLUDED.updated_at").
				Returning("*").
				Scan(ctx)
			if err != nil {
				return fmt.Errorf("failed to lock usage %s: %w", k, err)
			}
			u, err := dao.toUsage()
			if err != nil {
				return err
			}
			daos[k] = dao
			current[k] = u
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		for _, k := range keys {
			u, ok := next[k]
			if !ok {
				continue
			}
			dao := daos[k]
			dao.set(u, now)
			_, err := tx.NewUpdate().
				Model(dao).
				Column("usd", "native", "ops", "updated_at").
				WherePK().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update usage %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *pgStore) Get(ctx context.Context, keys []Key) (map[Key]Usage, error) {
	out := make(map[Key]Usage, len(keys))
	for _, k := range keys {
		dao := new(UsageDao)
		err := s.db.NewSelect().
			Model(dao).
			Where("policy_id = ?", k.PolicyID).
			Where("scope = ?", string(k.Scope)).
			Where("subject = ?", k.Subject).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				out[k] = Usage{}
				continue
			}
			return nil, fmt.Errorf("failed to get usage %s: %w", k, err)
		}
		u, err := dao.toUsage()
		if err != nil {
			return nil, err
		}
		out[k] = u
	}
	return out, nil
}

func (s *pgStore) Reset(ctx context.Context, policyID int64) error {
	_, err := s.db.NewDelete().
		Model((*UsageDao)(nil)).
		Where("policy_id = ?", policyID).
		Where("scope <> ?", string(ScopeMonthly)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset usage: %w", err)
	}
	return nil
}
