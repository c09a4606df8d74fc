package ledger

import (
	"context"
	"sync"
)

// MemoryStore is an in-process UsageStore. Counters are lost on restart, so it suits single
// instance deployments and tests. Per-key locks live only while an update holds or waits on them.
type MemoryStore struct {
	mu     sync.Mutex
	locks  map[Key]*keyLock
	usages map[Key]Usage
}

type keyLock struct {
	sync.Mutex
	refs int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks:  make(map[Key]*keyLock),
		usages: make(map[Key]Usage),
	}
}

func (s *MemoryStore) acquire(k Key) *keyLock {
	s.mu.Lock()
	l, ok := s.locks[k]
	if !ok {
		l = &keyLock{}
		s.locks[k] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return l
}

func (s *MemoryStore) release(k Key, l *keyLock) {
	l.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if l.refs--; l.refs == 0 {
		delete(s.locks, k)
	}
}

// Update locks keys in canonical order, so overlapping updates cannot deadlock.
func (s *MemoryStore) Update(ctx context.Context, keys []Key, fn UpdateFunc) error {
	keys = canonical(keys)
	for _, k := range keys {
		l := s.acquire(k)
		defer s.release(k, l)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	current := s.read(keys)
	next, err := fn(current)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if u, ok := next[k]; ok {
			s.usages[k] = u.clone()
		}
	}
	return nil
}

// Get returns a copy of the requested counters.
func (s *MemoryStore) Get(_ context.Context, keys []Key) (map[Key]Usage, error) {
	return s.read(keys), nil
}

func (s *MemoryStore) read(keys []Key) map[Key]Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Key]Usage, len(keys))
	for _, k := range keys {
		out[k] = s.usages[k].clone()
	}
	return out
}

// Reset removes every counter of policyID.
func (s *MemoryStore) Reset(_ context.Context, policyID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.usages {
		if k.PolicyID == policyID && k.Scope != ScopeMonthly {
			delete(s.usages, k)
		}
	}
	return nil
}
