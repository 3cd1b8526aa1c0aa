package store

import (
	"context"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/data"
)

// TTL is how long a resolved asset stays cached.
const TTL = time.Hour

// Cache key namespaces. Bulk invalidation deletes by these prefixes.
const (
	AssetKeyPrefix    = "canto_asset_"
	FilenameKeyPrefix = "canto_filename_"
)

// Store is a key/value cache of normalized asset records with per-key
// expiry. Expired entries behave as absent. Concurrent writes of the same
// key are last-write-wins, which is fine here since both writers derive the
// same value from the same input.
type Store interface {
	Get(ctx context.Context, key string) (*data.Asset, bool)
	Set(ctx context.Context, key string, asset *data.Asset, ttl time.Duration)
	// DeleteMatching removes every key matching a wildcard-prefix
	// pattern such as "canto_asset_*".
	DeleteMatching(ctx context.Context, pattern string)
	Flush(ctx context.Context)
}
