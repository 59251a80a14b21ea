package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:session:"

// RedisStore keeps each session as a hash, one field per session key, so
// concurrent merges touch only their own fields.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// DialRedis connects and pings.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (map[string]json.RawMessage, error) {
	fields, err := s.rdb.HGetAll(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	data := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		data[k] = json.RawMessage(v)
	}
	return data, nil
}

func (s *RedisStore) Merge(ctx context.Context, id string, changes map[string]json.RawMessage, ttl time.Duration) error {
	key := redisKeyPrefix + id
	var (
		set []any
		del []string
	)
	for k, v := range changes {
		if v == nil {
			del = append(del, k)
			continue
		}
		set = append(set, k, string(v))
	}
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if len(set) > 0 {
			p.HSet(ctx, key, set...)
		}
		if len(del) > 0 {
			p.HDel(ctx, key, del...)
		}
		if ttl > 0 {
			p.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("merge session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+id).Err()
}
