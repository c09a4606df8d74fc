// Package ledger tracks cumulative sponsorship spend and enforces policy ceilings.
package ledger

import (
	"cmp"
	"context"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Scope names a usage counter family.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeUser    Scope = "user"
	ScopeMonthly Scope = "apikey_month"
)

// Key identifies one usage counter.
type Key struct {
	PolicyID int64
	Scope    Scope
	Subject  string
}

// GlobalKey is the counter of all sponsorship under a policy.
func GlobalKey(policyID int64) Key {
	return Key{PolicyID: policyID, Scope: ScopeGlobal}
}

// UserKey is the counter of one end user under a policy.
func UserKey(policyID int64, user common.Address) Key {
	return Key{PolicyID: policyID, Scope: ScopeUser, Subject: strings.ToLower(user.Hex())}
}

// MonthlyKey is the calendar month (UTC) operation counter of an API key.
func MonthlyKey(apiKey string, at time.Time) Key {
	return Key{Scope: ScopeMonthly, Subject: apiKey + "@" + at.UTC().Format("2006-01")}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%s", k.Scope, k.PolicyID, k.Subject)
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Scope, b.Scope); c != 0 {
		return c
	}
	if c := cmp.Compare(a.PolicyID, b.PolicyID); c != 0 {
		return c
	}
	return cmp.Compare(a.Subject, b.Subject)
}

// canonical returns keys sorted and deduplicated. Stores lock keys in this order.
func canonical(keys []Key) []Key {
	out := slices.Clone(keys)
	slices.SortFunc(out, compareKeys)
	return slices.Compact(out)
}

// Usage is the consumption recorded on one counter.
type Usage struct {
	USD    decimal.Decimal
	Native *big.Int
	Ops    int64
}

func (u Usage) native() *big.Int {
	if u.Native == nil {
		return new(big.Int)
	}
	return u.Native
}

func (u Usage) clone() Usage {
	return Usage{USD: u.USD, Native: new(big.Int).Set(u.native()), Ops: u.Ops}
}

// add returns u plus one operation of the given cost.
func (u Usage) add(cost Cost) Usage {
	out := Usage{USD: u.USD, Native: new(big.Int).Add(u.native(), cost.Native), Ops: u.Ops + 1}
	if cost.USD != nil {
		out.USD = u.USD.Add(*cost.USD)
	}
	return out
}

// UpdateFunc receives the current usage of every requested key (zero when never written) and
// returns the usage to persist. Returning an error discards the update.
type UpdateFunc func(current map[Key]Usage) (map[Key]Usage, error)

// UsageStore persists counters. Update must hold every key exclusively for the duration of fn so
// that concurrent updates over overlapping keys serialize.
type UsageStore interface {
	Update(ctx context.Context, keys []Key, fn UpdateFunc) error
	Get(ctx context.Context, keys []Key) (map[Key]Usage, error)
	Reset(ctx context.Context, policyID int64) error
}
