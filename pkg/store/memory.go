package store

import (
	"context"
	"strings"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/data"
	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process Store, the default for single-instance
// deployments.
type Memory struct {
	c *gocache.Cache
}

func NewMemory() *Memory {
	return &Memory{
		c: gocache.New(TTL, 10*time.Minute),
	}
}

func (m *Memory) Get(_ context.Context, key string) (*data.Asset, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	asset, ok := v.(*data.Asset)
	return asset, ok
}

func (m *Memory) Set(_ context.Context, key string, asset *data.Asset, ttl time.Duration) {
	m.c.Set(key, asset, ttl)
}

func (m *Memory) DeleteMatching(_ context.Context, pattern string) {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.c.Items() {
		if strings.HasPrefix(key, prefix) {
			m.c.Delete(key)
		}
	}
}

func (m *Memory) Flush(_ context.Context) {
	m.c.Flush()
}
