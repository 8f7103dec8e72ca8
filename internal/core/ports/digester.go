package ports

import "go.trai.ch/pin/internal/core/domain"

// Digester computes and checks the deterministic content hashes stored in
// lockfile entries.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// HashEntry computes the hex-encoded digest of a declaration. The
	// result depends only on the arguments, with features and option keys
	// sorted first, so it is stable across runs and fetch orders.
	HashEntry(name, version string, manager domain.PackageManager, features []string, options map[string]string) string

	// Validate recomputes the hash of every lockfile entry whose name still
	// exists in the graph and compares it to the stored hash. A mismatch
	// means the lockfile is stale; the returned error wraps
	// domain.ErrLockfileStale and names the drifted packages. Staleness is
	// reported, not enforced: the caller decides whether to fail or
	// regenerate.
	Validate(lf *domain.Lockfile, g *domain.DependencyGraph) error
}
