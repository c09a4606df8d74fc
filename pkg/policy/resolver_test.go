package policy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/etherspot/arka-sub001/pkg/sponsorship"
)

var (
	wallet = common.HexToAddress("0x1111111111111111111111111111111111111111")
	t0     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func ptrTime(t time.Time) *time.Time { return &t }

func newPolicy(id int64, mutate ...func(*sponsorship.Policy)) *sponsorship.Policy {
	p := &sponsorship.Policy{
		ID:            id,
		WalletAddress: wallet,
		Name:          "policy",
		Enabled:       true,
		EnabledChains: []uint64{1},
		EPVersions:    []sponsorship.EPVersion{sponsorship.EPV07},
		Perpetual:     true,
		CreatedAt:     t0,
	}
	for _, m := range mutate {
		m(p)
	}
	return p
}

type listStore struct {
	policies []*sponsorship.Policy
	err      error
}

func (s listStore) ListPoliciesByWallet(context.Context, common.Address) ([]*sponsorship.Policy, error) {
	return s.policies, s.err
}

func TestSelect_Filters(t *testing.T) {
	now := t0.Add(24 * time.Hour)

	tests := []struct {
		name     string
		policies []*sponsorship.Policy
		chainID  uint64
		ep       sponsorship.EPVersion
		wantID   int64
		wantErr  error
	}{
		{
			name:     "chain listed",
			policies: []*sponsorship.Policy{newPolicy(1)},
			chainID:  1, ep: sponsorship.EPV07, wantID: 1,
		},
		{
			name:     "chain not listed",
			policies: []*sponsorship.Policy{newPolicy(1)},
			chainID:  137, ep: sponsorship.EPV07, wantErr: ErrNoPolicyDefined,
		},
		{
			name:     "universal policy covers any chain",
			policies: []*sponsorship.Policy{newPolicy(1, func(p *sponsorship.Policy) { p.AllChains = true; p.EnabledChains = nil })},
			chainID:  8453, ep: sponsorship.EPV07, wantID: 1,
		},
		{
			name:     "ep version not listed",
			policies: []*sponsorship.Policy{newPolicy(1)},
			chainID:  1, ep: sponsorship.EPV06, wantErr: ErrNoPolicyDefined,
		},
		{
			name:     "only disabled matches",
			policies: []*sponsorship.Policy{newPolicy(1, func(p *sponsorship.Policy) { p.Enabled = false })},
			chainID:  1, ep: sponsorship.EPV07, wantErr: ErrPolicyDisabled,
		},
		{
			name: "only expired matches",
			policies: []*sponsorship.Policy{newPolicy(1, func(p *sponsorship.Policy) {
				p.Perpetual = false
				p.StartTime = ptrTime(t0.Add(-48 * time.Hour))
				p.EndTime = ptrTime(t0)
			})},
			chainID: 1, ep: sponsorship.EPV07, wantErr: ErrPolicyNotInTimeWindow,
		},
		{
			name: "time window preferred over disabled",
			policies: []*sponsorship.Policy{
				newPolicy(1, func(p *sponsorship.Policy) { p.Enabled = false }),
				newPolicy(2, func(p *sponsorship.Policy) {
					p.Perpetual = false
					p.StartTime = ptrTime(now.Add(time.Hour))
					p.EndTime = ptrTime(now.Add(2 * time.Hour))
				}),
			},
			chainID: 1, ep: sponsorship.EPV07, wantErr: ErrPolicyNotInTimeWindow,
		},
		{
			name:     "disabled policy on another chain is not a match",
			policies: []*sponsorship.Policy{newPolicy(1, func(p *sponsorship.Policy) { p.Enabled = false; p.EnabledChains = []uint64{10} })},
			chainID:  1, ep: sponsorship.EPV07, wantErr: ErrNoPolicyDefined,
		},
		{
			name:     "no policies",
			policies: nil,
			chainID:  1, ep: sponsorship.EPV07, wantErr: ErrNoPolicyDefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.policies, tt.chainID, tt.ep, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Fatalf("expected policy %d, got %d", tt.wantID, got.ID)
			}
		})
	}
}

func TestSelect_WindowBoundsInclusive(t *testing.T) {
	start := t0
	end := t0.Add(time.Hour)
	p := newPolicy(1, func(p *sponsorship.Policy) {
		p.Perpetual = false
		p.StartTime = ptrTime(start)
		p.EndTime = ptrTime(end)
	})

	for _, now := range []time.Time{start, end, start.Add(30 * time.Minute)} {
		if _, err := Select([]*sponsorship.Policy{p}, 1, sponsorship.EPV07, now); err != nil {
			t.Fatalf("expected policy active at %s, got %v", now, err)
		}
	}
	for _, now := range []time.Time{start.Add(-time.Nanosecond), end.Add(time.Nanosecond)} {
		if _, err := Select([]*sponsorship.Policy{p}, 1, sponsorship.EPV07, now); !errors.Is(err, ErrPolicyNotInTimeWindow) {
			t.Fatalf("expected not in window at %s, got %v", now, err)
		}
	}
}

func TestSelect_TieBreak(t *testing.T) {
	now := t0.Add(time.Hour)
	universalNewest := newPolicy(10, func(p *sponsorship.Policy) {
		p.AllChains = true
		p.CreatedAt = t0.Add(30 * time.Minute)
	})
	specificOld := newPolicy(3, func(p *sponsorship.Policy) { p.CreatedAt = t0.Add(-time.Hour) })
	specificNew := newPolicy(4, func(p *sponsorship.Policy) { p.CreatedAt = t0 })
	specificNewHigherID := newPolicy(5, func(p *sponsorship.Policy) { p.CreatedAt = t0 })

	got, err := Select([]*sponsorship.Policy{universalNewest, specificOld}, 1, sponsorship.EPV07, now)
	if err != nil || got.ID != 3 {
		t.Fatalf("chain specific policy must win, got %v %v", got, err)
	}

	got, err = Select([]*sponsorship.Policy{specificOld, specificNew}, 1, sponsorship.EPV07, now)
	if err != nil || got.ID != 4 {
		t.Fatalf("newer policy must win, got %v %v", got, err)
	}

	// Order of the input must not matter.
	for _, in := range [][]*sponsorship.Policy{
		{specificNew, specificNewHigherID, universalNewest},
		{universalNewest, specificNewHigherID, specificNew},
	} {
		got, err = Select(in, 1, sponsorship.EPV07, now)
		if err != nil || got.ID != 5 {
			t.Fatalf("higher id must win on equal creation time, got %v %v", got, err)
		}
	}
}

func TestSelect_NeverSelectsUnlistedChain(t *testing.T) {
	now := t0
	policies := []*sponsorship.Policy{
		newPolicy(1, func(p *sponsorship.Policy) { p.EnabledChains = []uint64{1, 10} }),
		newPolicy(2, func(p *sponsorship.Policy) { p.EnabledChains = []uint64{137} }),
		newPolicy(3, func(p *sponsorship.Policy) { p.AllChains = true; p.Enabled = false }),
	}
	for _, chain := range []uint64{1, 10, 137, 8453, 42161} {
		got, err := Select(policies, chain, sponsorship.EPV07, now)
		if err != nil {
			continue
		}
		if !got.AllChains && !got.SupportsChain(chain) {
			t.Fatalf("policy %d selected for unlisted chain %d", got.ID, chain)
		}
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(listStore{policies: []*sponsorship.Policy{newPolicy(1)}})
	got, err := r.Resolve(context.Background(), wallet, 1, sponsorship.EPV07, t0)
	if err != nil || got.ID != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}

	r = NewResolver(listStore{err: errors.New("db down")})
	if _, err := r.Resolve(context.Background(), wallet, 1, sponsorship.EPV07, t0); err == nil {
		t.Fatal("expected store error")
	} else if _, ok := ReasonFor(err); ok {
		t.Fatal("store errors must not map to a denial reason")
	}
}

func TestReasonFor(t *testing.T) {
	cases := map[error]sponsorship.Reason{
		ErrNoPolicyDefined:       sponsorship.ReasonNoPolicyDefined,
		ErrPolicyDisabled:        sponsorship.ReasonPolicyDisabled,
		ErrPolicyNotInTimeWindow: sponsorship.ReasonPolicyNotInTimeWindow,
	}
	for err, want := range cases {
		got, ok := ReasonFor(err)
		if !ok || got != want {
			t.Fatalf("ReasonFor(%v) = %q, %v", err, got, ok)
		}
	}
}
