package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// ResolutionStrategy selects how declared packages are traversed.
type ResolutionStrategy int

const (
	// StrategyEager resolves every declared package and its transitive
	// dependencies immediately, breadth-first.
	StrategyEager ResolutionStrategy = iota
	// StrategyLazy leaves every package unresolved until resolved on demand.
	StrategyLazy
	// StrategyManual is lazy without provider calls: the caller supplies
	// pre-resolved edge lists, for offline or air-gapped runs.
	StrategyManual
)

// String returns the strategy's canonical name.
func (s ResolutionStrategy) String() string {
	switch s {
	case StrategyEager:
		return "eager"
	case StrategyLazy:
		return "lazy"
	case StrategyManual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseResolutionStrategy parses the canonical strategy name.
func ParseResolutionStrategy(s string) (ResolutionStrategy, error) {
	switch s {
	case "eager":
		return StrategyEager, nil
	case "lazy":
		return StrategyLazy, nil
	case "manual":
		return StrategyManual, nil
	default:
		return 0, zerr.With(ErrUnknownStrategy, "strategy", s)
	}
}

// DefaultParallelism bounds concurrent provider fetches during eager
// resolution when the manifest does not say otherwise.
const DefaultParallelism = 4

// ResolutionConfig carries the per-request resolution settings.
type ResolutionConfig struct {
	// Strategy selects the traversal order.
	Strategy ResolutionStrategy

	// Conflicts selects how duplicate declarations are reduced.
	Conflicts ConflictStrategy

	// CacheEnabled consults the resolution cache before provider calls.
	CacheEnabled bool

	// CacheTTL bounds how long cached edge lists stay valid.
	// Zero keeps entries until evicted.
	CacheTTL time.Duration

	// Parallelism bounds concurrent provider fetches during eager
	// resolution.
	Parallelism int

	// LockfileEnabled rewrites the lockfile after a successful resolution.
	LockfileEnabled bool

	// LockfilePath is the lockfile location, relative to the manifest.
	LockfilePath string
}

// Manifest is the full resolution input: the declared dependencies plus the
// resolution settings, as loaded from pin.yaml.
type Manifest struct {
	Declarations Declarations
	Resolution   ResolutionConfig
}
