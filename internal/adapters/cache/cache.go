// Package cache provides an in-memory TTL cache for fetched dependency
// metadata, backed by hashicorp's expirable LRU.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Metadata implements ports.MetadataCache. Entries expire after the TTL
// the cache was constructed with; the underlying LRU is safe for
// concurrent use.
type Metadata struct {
	lru *expirable.LRU[string, []string]
}

// New creates a Metadata cache whose entries live for ttl.
func New(ttl time.Duration) *Metadata {
	return &Metadata{
		// Size 0 means unbounded; expiry alone evicts entries.
		lru: expirable.NewLRU[string, []string](0, nil, ttl),
	}
}

// Get returns the cached edge list for a package, if present and fresh.
func (c *Metadata) Get(name, constraint string, manager domain.PackageManager) ([]string, bool) {
	return c.lru.Get(cacheKey(name, constraint, manager))
}

// Put stores the edge list for a package.
func (c *Metadata) Put(name, constraint string, manager domain.PackageManager, deps []string) {
	c.lru.Add(cacheKey(name, constraint, manager), deps)
}

// cacheKey joins name, constraint, and manager so the same package name
// fetched under different constraints or managers never collides.
func cacheKey(name, constraint string, manager domain.PackageManager) string {
	return name + "@" + constraint + "/" + manager.String()
}

// Factory is a ports.CacheFactory building Metadata caches.
func Factory(ttl time.Duration) ports.MetadataCache {
	return New(ttl)
}
