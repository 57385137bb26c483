package noncestore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"x402-gateway/internal/pkg/clock"
)

type record struct {
	createdAt time.Time
	used      bool
}

// MemoryStore keeps nonces in process. It is selected at startup when no
// Redis is configured or reachable, and never shares state with RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]record
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]record),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Mode() string {
	return ModeMemory
}

func (s *MemoryStore) Generate(_ context.Context) (string, error) {
	nonce, err := NewToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.records[nonce] = record{createdAt: s.clock.Now()}
	s.mu.Unlock()

	return nonce, nil
}

func (s *MemoryStore) IsUsed(_ context.Context, nonce string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[nonce]
	if !ok {
		return true, nil
	}
	return rec.used, nil
}

func (s *MemoryStore) IsValid(_ context.Context, nonce string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[nonce]
	if !ok {
		return false, nil
	}
	return s.live(rec), nil
}

func (s *MemoryStore) MarkUsed(_ context.Context, nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[nonce]; ok && !rec.used {
		rec.used = true
		s.records[nonce] = rec
	}
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, nonce string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[nonce]
	if !ok || rec.used || !s.live(rec) {
		slog.Debug("Nonce consume refused", slog.String("nonce", Fingerprint(nonce)))
		return false, nil
	}
	rec.used = true
	s.records[nonce] = rec
	return true, nil
}

// Sweep drops records older than the TTL and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for nonce, rec := range s.records {
		if !s.live(rec) {
			delete(s.records, nonce)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("Swept expired nonces", slog.Int("removed", n))
			}
		}
	}
}

func (s *MemoryStore) Cleanup(_ context.Context) error {
	s.Sweep()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *MemoryStore) live(rec record) bool {
	return s.clock.Now().Sub(rec.createdAt) < s.ttl
}
