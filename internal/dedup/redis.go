package dedup

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	SEEN_TWEETS_KEY = "seen-tweets"
	seedChunkSize   = 1000
)

// RedisSet keeps the identifiers in one Redis SET so every instance of the
// service shares it. SADD reports whether a member was new, which makes
// Reserve atomic across processes.
type RedisSet struct {
	rdb *redis.Client
	key string
}

func NewRedisSet(rdb *redis.Client) *RedisSet {
	return &RedisSet{
		rdb: rdb,
		key: SEEN_TWEETS_KEY,
	}
}

func (s *RedisSet) Seed(ctx context.Context, ids []string) error {
	for start := 0; start < len(ids); start += seedChunkSize {
		end := min(start+seedChunkSize, len(ids))

		members := make([]interface{}, 0, end-start)
		for _, id := range ids[start:end] {
			members = append(members, id)
		}

		if err := s.rdb.SAdd(ctx, s.key, members...).Err(); err != nil {
			return fmt.Errorf("seed %s: %w", s.key, err)
		}
	}

	return nil
}

func (s *RedisSet) Contains(ctx context.Context, id string) (bool, error) {
	return s.rdb.SIsMember(ctx, s.key, id).Result()
}

func (s *RedisSet) Add(ctx context.Context, id string) error {
	return s.rdb.SAdd(ctx, s.key, id).Err()
}

func (s *RedisSet) Reserve(ctx context.Context, id string) (bool, error) {
	added, err := s.rdb.SAdd(ctx, s.key, id).Result()
	if err != nil {
		return false, err
	}

	return added == 1, nil
}

func (s *RedisSet) Forget(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	return s.rdb.SRem(ctx, s.key, members...).Err()
}

func (s *RedisSet) Len(ctx context.Context) (int64, error) {
	return s.rdb.SCard(ctx, s.key).Result()
}

func (s *RedisSet) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}
