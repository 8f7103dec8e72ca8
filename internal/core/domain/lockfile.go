package domain

// LockfileFormatVersion is the lockfile format version written by this
// engine. Parsing tolerates unknown fields, so older readers survive
// additive changes within a major format version.
const LockfileFormatVersion = "1.0"

// DefaultLockfileName is the lockfile path used when the manifest does not
// configure one.
const DefaultLockfileName = "dependencies.lock"

// Lockfile is a hashed snapshot of a resolved dependency set. It is the
// only persisted state of the engine and is fully rewritten, never patched,
// on each successful resolution.
type Lockfile struct {
	// Version is the lockfile format version.
	Version string

	// Entries maps package names to their locked state. The key is a plain
	// string for serialization compatibility.
	Entries map[string]LockfileEntry
}

// LockfileEntry is the locked state of one resolved package.
type LockfileEntry struct {
	// Name is the package name.
	Name string

	// Version is the resolved concrete version, "latest" if unconstrained.
	Version string

	// Manager is the package manager the entry was resolved through.
	Manager PackageManager

	// Hash is the hex-encoded content digest of the declaration. It is a
	// pure function of (name, version, manager, sorted features, sorted
	// option keys), so it is reproducible across runs and fetch orders.
	Hash string

	// Dependencies lists the entry's dependency names in provider order.
	Dependencies []string

	// Features lists enabled package features.
	Features []string

	// Options maps manager-specific option names to values.
	Options map[string]string
}

// NewLockfile creates an empty lockfile at the current format version.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Version: LockfileFormatVersion,
		Entries: make(map[string]LockfileEntry),
	}
}
