//go:build unit

package noncestore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"x402-gateway/internal/infra/noncestore"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ttl = 300 * time.Second

// NonceStoreContractSuite runs the same lifecycle checks against every backend.
type NonceStoreContractSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	newStore func(clk clock.Clock) usecase.NonceStore
	teardown func()
	store    usecase.NonceStore
}

func (s *NonceStoreContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = s.newStore(s.clock)
}

func (s *NonceStoreContractSuite) TearDownTest() {
	if s.teardown != nil {
		s.teardown()
	}
}

func (s *NonceStoreContractSuite) TestGenerate() {
	a, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)
	b, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	s.Len(a, 64)
	s.NotEqual(a, b)
}

func (s *NonceStoreContractSuite) TestFreshNonceIsValidAndUnused() {
	nonce, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	used, err := s.store.IsUsed(s.ctx, nonce)
	s.Require().NoError(err)
	s.False(used)

	valid, err := s.store.IsValid(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(valid)
}

func (s *NonceStoreContractSuite) TestExpiresAfterTTL() {
	nonce, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	s.clock.Add(ttl - time.Millisecond)
	valid, err := s.store.IsValid(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(valid, "still valid just before TTL")

	s.clock.Add(time.Millisecond)
	valid, err = s.store.IsValid(s.ctx, nonce)
	s.Require().NoError(err)
	s.False(valid, "invalid once TTL has elapsed")

	won, err := s.store.Consume(s.ctx, nonce)
	s.Require().NoError(err)
	s.False(won, "expired nonce cannot be consumed")
}

func (s *NonceStoreContractSuite) TestUnknownNonceFailsClosed() {
	used, err := s.store.IsUsed(s.ctx, "not-issued")
	s.Require().NoError(err)
	s.True(used)

	valid, err := s.store.IsValid(s.ctx, "not-issued")
	s.Require().NoError(err)
	s.False(valid)

	won, err := s.store.Consume(s.ctx, "not-issued")
	s.Require().NoError(err)
	s.False(won)

	s.NoError(s.store.MarkUsed(s.ctx, "not-issued"), "marking an absent record is a no-op")
}

func (s *NonceStoreContractSuite) TestMarkUsedIsIdempotent() {
	nonce, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.store.MarkUsed(s.ctx, nonce))
	s.Require().NoError(s.store.MarkUsed(s.ctx, nonce))

	used, err := s.store.IsUsed(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(used)

	valid, err := s.store.IsValid(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(valid, "used and expired are independent")
}

func (s *NonceStoreContractSuite) TestConsumeOnce() {
	nonce, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	won, err := s.store.Consume(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(won)

	won, err = s.store.Consume(s.ctx, nonce)
	s.Require().NoError(err)
	s.False(won)

	used, err := s.store.IsUsed(s.ctx, nonce)
	s.Require().NoError(err)
	s.True(used)
}

func (s *NonceStoreContractSuite) TestConcurrentConsumeHasOneWinner() {
	nonce, err := s.store.Generate(s.ctx)
	s.Require().NoError(err)

	const workers = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			won, err := s.store.Consume(s.ctx, nonce)
			if err == nil && won {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
}

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, &NonceStoreContractSuite{
		newStore: func(clk clock.Clock) usecase.NonceStore {
			return noncestore.NewMemoryStore(ttl, clk)
		},
	})
}

func TestRedisStoreContract(t *testing.T) {
	s := &NonceStoreContractSuite{}
	s.newStore = func(clk clock.Clock) usecase.NonceStore {
		mr := miniredis.RunT(s.T())
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		s.teardown = func() { _ = client.Close() }
		return noncestore.NewRedisStore(client, ttl, clk)
	}
	suite.Run(t, s)
}

func TestMemoryStore_Sweep(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := noncestore.NewMemoryStore(ttl, clk)
	ctx := context.Background()

	old, err := store.Generate(ctx)
	require.NoError(t, err)
	clk.Add(ttl / 2)
	fresh, err := store.Generate(ctx)
	require.NoError(t, err)
	clk.Add(ttl / 2)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	used, err := store.IsUsed(ctx, old)
	require.NoError(t, err)
	assert.True(t, used, "swept nonce reads as consumed")

	valid, err := store.IsValid(ctx, fresh)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestMemoryStore_RunStopsWithContext(t *testing.T) {
	store := noncestore.NewMemoryStore(time.Nanosecond, clock.NewRealClock())
	_, err := store.Generate(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestRedisStore_KeyLayout(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := noncestore.NewRedisStore(client, ttl, clock.NewMockClock(now))
	nonce, err := store.Generate(context.Background())
	require.NoError(t, err)

	key := "nonce:" + nonce
	assert.True(t, mr.Exists(key))
	assert.Equal(t, "0", mr.HGet(key, "used"))
	assert.Equal(t, ttl, mr.TTL(key))

	mr.FastForward(ttl)
	assert.False(t, mr.Exists(key), "redis expires the record with the TTL")
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	store := noncestore.NewRedisStore(client, ttl, clock.NewRealClock())
	mr.Close()

	_, err = store.Generate(context.Background())
	assert.Error(t, err)

	_, err = store.Consume(context.Background(), "abc")
	assert.Error(t, err)
}
