package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the blob under StorageKey in Redis, which fits the
// storage contract directly: one key, one opaque value, no expiry.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a RedisStore using the given client. The client is
// expected to be connected already (see config.NewRedisClient).
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: StorageKey}
}

// Load GETs the blob. A missing key maps to ErrNotFound.
func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Save SETs the blob with no expiration.
func (r *RedisStore) Save(ctx context.Context, blob []byte) error {
	return r.client.Set(ctx, r.key, blob, 0).Err()
}
