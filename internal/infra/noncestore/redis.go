package noncestore

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"x402-gateway/internal/infra"
	"x402-gateway/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nonce:"

var markUsedScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  redis.call('HSET', KEYS[1], 'used', '1')
end
return 1
`)

// consumeScript flips used 0 -> 1 only for a live record. Returns 1 for the winner.
var consumeScript = redis.NewScript(`
local created = redis.call('HGET', KEYS[1], 'createdAt')
if not created then
  return 0
end
if tonumber(ARGV[1]) - tonumber(created) >= tonumber(ARGV[2]) then
  return 0
end
if redis.call('HGET', KEYS[1], 'used') == '1' then
  return 0
end
redis.call('HSET', KEYS[1], 'used', '1')
return 1
`)

// RedisStore keeps one hash per nonce: createdAt (unix millis) and used ("0"/"1").
// Keys expire with the TTL so Redis does the cleanup.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  clock.Clock
}

func NewRedisStore(client *redis.Client, ttl time.Duration, clk clock.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		clock:  clk,
	}
}

func (s *RedisStore) Mode() string {
	return ModeRedis
}

func (s *RedisStore) Generate(ctx context.Context) (string, error) {
	nonce, err := NewToken()
	if err != nil {
		return "", err
	}

	key := keyPrefix + nonce
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "createdAt", s.clock.Now().UnixMilli(), "used", "0")
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", infra.WrapRepoErr("failed to store nonce", err, infra.KindUnavailable)
	}

	return nonce, nil
}

func (s *RedisStore) IsUsed(ctx context.Context, nonce string) (bool, error) {
	used, err := s.client.HGet(ctx, keyPrefix+nonce, "used").Result()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to read nonce", err, infra.KindUnavailable)
	}
	return used == "1", nil
}

func (s *RedisStore) IsValid(ctx context.Context, nonce string) (bool, error) {
	raw, err := s.client.HGet(ctx, keyPrefix+nonce, "createdAt").Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to read nonce", err, infra.KindUnavailable)
	}

	createdAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, nil
	}
	return s.clock.Now().UnixMilli()-createdAt < s.ttl.Milliseconds(), nil
}

func (s *RedisStore) MarkUsed(ctx context.Context, nonce string) error {
	if err := markUsedScript.Run(ctx, s.client, []string{keyPrefix + nonce}).Err(); err != nil {
		return infra.WrapRepoErr("failed to mark nonce used", err, infra.KindUnavailable)
	}
	return nil
}

func (s *RedisStore) Consume(ctx context.Context, nonce string) (bool, error) {
	won, err := consumeScript.Run(ctx, s.client, []string{keyPrefix + nonce},
		s.clock.Now().UnixMilli(), s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume nonce", err, infra.KindUnavailable)
	}
	if won != 1 {
		slog.Debug("Nonce consume refused", slog.String("nonce", Fingerprint(nonce)))
		return false, nil
	}
	return true, nil
}

// Cleanup releases the connection; expiry is left to Redis.
func (s *RedisStore) Cleanup(_ context.Context) error {
	return s.client.Close()
}
