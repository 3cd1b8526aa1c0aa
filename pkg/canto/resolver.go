package canto

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/allegiancegroup/canto-field/pkg/store"
)

// API is the slice of the client the resolver needs.
type API interface {
	Search(ctx context.Context, query data.SearchQuery) (*data.SearchResult, error)
	GetByID(ctx context.Context, id string) (*data.RawAsset, error)
}

var assetIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Resolver maps an asset id or a stored filename to a normalized asset
// record, reading through the cache. Lookups for the same key may race and
// both hit the API; the duplicate write is harmless since both derive the
// same record.
type Resolver struct {
	api   API
	store store.Store
	cfg   *config.Config
}

func NewResolver(api API, s store.Store, cfg *config.Config) *Resolver {
	return &Resolver{
		api:   api,
		store: s,
		cfg:   cfg,
	}
}

// ResolveByID returns the asset with the given id, from cache when warm.
// ErrNotFound is never cached: a missing asset may appear a moment later.
func (r *Resolver) ResolveByID(ctx context.Context, id string) (*data.Asset, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	key := store.AssetKeyPrefix + id
	if asset, ok := r.store.Get(ctx, key); ok {
		logging.Log.Debugf("using cached data for asset %s", id)
		return asset, nil
	}

	raw, err := r.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset := Normalize(raw, r.cfg)
	if asset == nil {
		return nil, ErrNotFound
	}

	r.store.Set(ctx, key, asset, store.TTL)
	return asset, nil
}

// ResolveByFilename maps a stored filename back to its asset. The filename
// is used as a search keyword; the results are scanned for an exact
// filename match first and an exact display-name match second. Matching is
// case-sensitive on purpose, filenames act as unique identifiers chosen at
// upload time.
func (r *Resolver) ResolveByFilename(ctx context.Context, filename string) (*data.Asset, error) {
	if filename == "" {
		return nil, ErrNotFound
	}

	key := FilenameKey(filename)
	if asset, ok := r.store.Get(ctx, key); ok {
		logging.Log.Debugf("using cached data for filename %s", filename)
		return asset, nil
	}

	result, err := r.api.Search(ctx, data.SearchQuery{
		Keyword: filename,
		Limit:   DefaultSearchLimit,
	})
	if err != nil {
		return nil, err
	}

	assets := make([]*data.Asset, 0, len(result.Results))
	for i := range result.Results {
		if asset := Normalize(&result.Results[i], r.cfg); asset != nil {
			assets = append(assets, asset)
		}
	}

	for _, asset := range assets {
		if asset.Filename == filename {
			r.store.Set(ctx, key, asset, store.TTL)
			return asset, nil
		}
	}

	// Some assets carry no filename metadata at all; their display name
	// is the best remaining identity. First match wins, which can pick
	// the wrong asset when names collide.
	for _, asset := range assets {
		if asset.Name == filename {
			r.store.Set(ctx, key, asset, store.TTL)
			return asset, nil
		}
	}

	return nil, ErrNotFound
}

// Resolve accepts either an asset id or a filename. Identifiers that look
// like Canto ids are tried as ids first, dotted identifiers fall back to
// the filename search.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*data.Asset, error) {
	if identifier == "" {
		return nil, ErrNotFound
	}

	if assetIDRe.MatchString(identifier) && len(identifier) > 10 {
		asset, err := r.ResolveByID(ctx, identifier)
		if err == nil {
			return asset, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}

	if strings.Contains(identifier, ".") {
		return r.ResolveByFilename(ctx, identifier)
	}

	return nil, ErrNotFound
}

// ClearCache drops every cached record in both namespaces. Idempotent, used
// on deactivation and uninstall.
func (r *Resolver) ClearCache(ctx context.Context) {
	r.store.DeleteMatching(ctx, store.AssetKeyPrefix+"*")
	r.store.DeleteMatching(ctx, store.FilenameKeyPrefix+"*")
	logging.Log.Info("asset cache cleared")
}

// FilenameKey is the cache key for a filename lookup. Filenames are
// user-supplied, so they are hashed instead of embedded in the key.
func FilenameKey(filename string) string {
	sum := md5.Sum([]byte(filename))
	return store.FilenameKeyPrefix + hex.EncodeToString(sum[:])
}
