package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPackageName is returned when a declaration has no name.
	ErrEmptyPackageName = zerr.New("package name is empty")

	// ErrUnknownScope is returned when a scope name is not one of
	// runtime, build, test, development.
	ErrUnknownScope = zerr.New("unknown dependency scope")

	// ErrUnknownPackageManager is returned when a manager name is not one of
	// conan, vcpkg, cpm.
	ErrUnknownPackageManager = zerr.New("unknown package manager")

	// ErrUnknownStrategy is returned when a resolution strategy name is not
	// one of eager, lazy, manual.
	ErrUnknownStrategy = zerr.New("unknown resolution strategy")

	// ErrUnknownConflictStrategy is returned when a conflict resolution name
	// is not one of first, latest, error.
	ErrUnknownConflictStrategy = zerr.New("unknown conflict resolution strategy")

	// ErrConflictingDeclarations is returned under the "error" conflict
	// strategy when the same package is declared with differing managers or
	// version constraints across scopes.
	ErrConflictingDeclarations = zerr.New("conflicting package declarations")

	// ErrPackageNotFound is returned when a package name is not present in
	// the dependency graph.
	ErrPackageNotFound = zerr.New("package not found in graph")

	// ErrMetadataFetch is returned when a metadata provider fails for a
	// package. It is recovered per node: the package moves to the unresolved
	// partition and resolution continues for its siblings.
	ErrMetadataFetch = zerr.New("failed to fetch package metadata")

	// ErrLockfileParse is returned when lockfile bytes are malformed or miss
	// required fields.
	ErrLockfileParse = zerr.New("failed to parse lockfile")

	// ErrLockfileStale is returned when a lockfile entry's stored hash no
	// longer matches the hash recomputed from the current declaration.
	// Callers decide whether staleness is fatal.
	ErrLockfileStale = zerr.New("lockfile is stale")
)
