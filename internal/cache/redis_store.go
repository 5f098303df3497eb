package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	generationKey = "viewcache:gen"
	snapshotTTL   = 10 * time.Minute
)

// putScript writes a snapshot only when it is not older than the one
// already stored under the key.
var putScript = redis.NewScript(`
local cur = tonumber(redis.call('HGET', KEYS[1], 'gen') or '-1')
if tonumber(ARGV[1]) < cur then
    return 0
end
redis.call('HSET', KEYS[1], 'gen', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisStore backs the view cache with Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Generation(ctx context.Context) (int64, error) {
	val, err := s.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

func (s *RedisStore) BumpGeneration(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, generationKey).Result()
}

func (s *RedisStore) PutSnapshot(ctx context.Context, key string, generation int64, data []byte) (bool, error) {
	stored, err := putScript.Run(ctx, s.client,
		[]string{"viewcache:" + key},
		generation, data, snapshotTTL.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

func (s *RedisStore) GetSnapshot(ctx context.Context, key string) ([]byte, int64, error) {
	vals, err := s.client.HMGet(ctx, "viewcache:"+key, "gen", "data").Result()
	if err != nil {
		return nil, 0, err
	}
	genStr, ok := vals[0].(string)
	if !ok {
		return nil, 0, nil
	}
	dataStr, ok := vals[1].(string)
	if !ok {
		return nil, 0, nil
	}
	generation, err := strconv.ParseInt(genStr, 10, 64)
	if err != nil {
		return nil, 0, err
	}
	return []byte(dataStr), generation, nil
}
