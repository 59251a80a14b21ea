package catalog

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/domain"
)

var regionAliases = map[string]string{
	"us": "usd",
	"eu": "eur",
	"uk": "gbp",
	"in": "inr",
	"ca": "cad",
	"au": "aud",
}

// RegionCache holds the resolved default region for the process lifetime.
// Reset exists for tests; nothing in the service invalidates it.
type RegionCache interface {
	Get() (domain.Region, bool)
	Set(domain.Region)
	Reset()
}

type memoryRegionCache struct {
	mu     sync.RWMutex
	region *domain.Region
}

func NewRegionCache() RegionCache {
	return &memoryRegionCache{}
}

func (c *memoryRegionCache) Get() (domain.Region, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.region == nil {
		return domain.Region{}, false
	}
	return *c.region, true
}

func (c *memoryRegionCache) Set(r domain.Region) {
	c.mu.Lock()
	c.region = &r
	c.mu.Unlock()
}

func (c *memoryRegionCache) Reset() {
	c.mu.Lock()
	c.region = nil
	c.mu.Unlock()
}

// MatchRegion picks the first region whose id equals target, or whose
// lowercased name or currency equals the alias-normalised target.
func MatchRegion(regions []domain.Region, target string) (domain.Region, bool) {
	raw := strings.ToLower(strings.TrimSpace(target))
	normalized := raw
	if alias, ok := regionAliases[raw]; ok {
		normalized = alias
	}
	for _, r := range regions {
		if r.ID == raw ||
			strings.ToLower(r.Name) == normalized ||
			strings.ToLower(r.CurrencyCode) == normalized {
			return r, true
		}
	}
	return domain.Region{}, false
}

// RegionResolver memoises the configured default region. Concurrent first
// calls may each hit the backend; the last successful match wins.
type RegionResolver struct {
	backend Backend
	target  string
	cache   RegionCache
	logger  *zap.Logger
}

func NewRegionResolver(backend Backend, target string, cache RegionCache, logger *zap.Logger) *RegionResolver {
	if cache == nil {
		cache = NewRegionCache()
	}
	return &RegionResolver{backend: backend, target: target, cache: cache, logger: logger}
}

// Resolve returns nil without error when no region matches; callers treat
// that as "no region constraint".
func (r *RegionResolver) Resolve(ctx context.Context) *domain.Region {
	if reg, ok := r.cache.Get(); ok {
		return &reg
	}
	regions, err := r.backend.ListRegions(ctx)
	if err != nil {
		r.logger.Warn("list regions failed", zap.String("op", "resolveDefaultRegion"), zap.Error(err))
		return nil
	}
	reg, ok := MatchRegion(regions, r.target)
	if !ok {
		return nil
	}
	r.cache.Set(reg)
	return &reg
}

// RegionID is Resolve reduced to an id, empty when unresolved.
func (r *RegionResolver) RegionID(ctx context.Context) string {
	if reg := r.Resolve(ctx); reg != nil {
		return reg.ID
	}
	return ""
}
