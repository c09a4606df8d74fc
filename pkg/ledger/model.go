package ledger

import (
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// UsageDao maps to the 'policy_usage' table.
type UsageDao struct {
	bun.BaseModel `bun:"table:policy_usage,alias:pu"`
	PolicyID      int64     `bun:"policy_id,pk"`
	Scope         string    `bun:"scope,pk,type:varchar(16)"`
	Subject       string    `bun:"subject,pk,type:varchar(128)"`
	USD           string    `bun:"usd,notnull,type:numeric(38,18),default:0"`
	Native        string    `bun:"native,notnull,type:numeric(78,0),default:0"`
	Ops           int64     `bun:"ops,notnull,default:0"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func newUsageDao(k Key, now time.Time) *UsageDao {
	return &UsageDao{
		PolicyID:  k.PolicyID,
		Scope:     string(k.Scope),
		Subject:   k.Subject,
		USD:       "0",
		Native:    "0",
		UpdatedAt: now,
	}
}

func (d *UsageDao) key() Key {
	return Key{PolicyID: d.PolicyID, Scope: Scope(d.Scope), Subject: d.Subject}
}

func (d *UsageDao) toUsage() (Usage, error) {
	usd, err := decimal.NewFromString(d.USD)
	if err != nil {
		return Usage{}, fmt.Errorf("invalid usd usage %q for %s: %w", d.USD, d.key(), err)
	}
	native, ok := new(big.Int).SetString(d.Native, 10)
	if !ok {
		return Usage{}, fmt.Errorf("invalid native usage %q for %s", d.Native, d.key())
	}
	return Usage{USD: usd, Native: native, Ops: d.Ops}, nil
}

func (d *UsageDao) set(u Usage, now time.Time) {
	d.USD = u.USD.String()
	d.Native = u.native().String()
	d.Ops = u.Ops
	d.UpdatedAt = now
}
