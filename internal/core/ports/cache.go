package ports

import (
	"time"

	"go.trai.ch/pin/internal/core/domain"
)

// MetadataCache stores previously fetched dependency edge lists so repeated
// resolutions of the same package skip the provider round trip.
// Implementations are safe for concurrent use; entries expire after the TTL
// the cache was built with.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type MetadataCache interface {
	// Get returns the cached edge list for a package, if present and fresh.
	Get(name, constraint string, manager domain.PackageManager) ([]string, bool)

	// Put stores the edge list for a package.
	Put(name, constraint string, manager domain.PackageManager, deps []string)
}

// CacheFactory builds a MetadataCache with the given TTL. The cache
// lifecycle is tied to one resolution request, not the process, so the app
// layer constructs a fresh cache per request from the manifest's settings.
type CacheFactory func(ttl time.Duration) MetadataCache
