package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Redis is the shared Store for multi-instance deployments. Records are
// stored as JSON so instances on different versions can still read them.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to addr and verifies the connection, retrying with
// exponential backoff for up to 30 seconds so the sidecar survives a redis
// that comes up slightly later.
func NewRedis(addr string, db int) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	}, policy)
	if err != nil {
		return nil, err
	}

	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (*data.Asset, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Log.Warnf("redis GET %s failed: %v", key, err)
		}
		return nil, false
	}

	asset := &data.Asset{}
	if err := json.Unmarshal(b, asset); err != nil {
		logging.Log.Warnf("dropping undecodable cache entry %s: %v", key, err)
		r.rdb.Del(ctx, key)
		return nil, false
	}
	return asset, true
}

func (r *Redis) Set(ctx context.Context, key string, asset *data.Asset, ttl time.Duration) {
	b, err := json.Marshal(asset)
	if err != nil {
		logging.Log.Warnf("could not encode asset %s: %v", asset.ID, err)
		return
	}
	if err := r.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		logging.Log.Warnf("redis SET %s failed: %v", key, err)
	}
}

func (r *Redis) DeleteMatching(ctx context.Context, pattern string) {
	iter := r.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logging.Log.Warnf("redis SCAN %s failed: %v", pattern, err)
	}
	if len(keys) > 0 {
		if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
			logging.Log.Warnf("redis DEL failed: %v", err)
		}
	}
}

func (r *Redis) Flush(ctx context.Context) {
	r.DeleteMatching(ctx, AssetKeyPrefix+"*")
	r.DeleteMatching(ctx, FilenameKeyPrefix+"*")
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
