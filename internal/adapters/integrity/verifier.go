// Package integrity computes and checks the content hashes stored in
// lockfile entries.
package integrity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Verifier)(nil)

// Verifier provides hashing and staleness checks for lockfile entries.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// HashEntry computes the XXHash of a resolved declaration. Features and
// option keys are sorted before hashing so the digest is independent of
// fetch and declaration order. Only option keys enter the digest; changing
// an option's value leaves the hash unchanged.
func (v *Verifier) HashEntry(name, version string, manager domain.PackageManager, features []string, options map[string]string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(name)
	_, _ = hasher.Write([]byte{0}) // Separator
	_, _ = hasher.WriteString(version)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(manager.String())
	_, _ = hasher.Write([]byte{0})

	sortedFeatures := slices.Clone(features)
	slices.Sort(sortedFeatures)
	for _, feature := range sortedFeatures {
		_, _ = hasher.WriteString(feature)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		_, _ = hasher.WriteString(key)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// Validate recomputes the hash of every lockfile entry whose package still
// exists in the graph and compares it against the stored one. Entries for
// packages no longer in the graph are skipped. A mismatch makes the
// lockfile stale; all drifted packages are reported in a single error.
func (v *Verifier) Validate(lf *domain.Lockfile, g *domain.DependencyGraph) error {
	var stale []string
	for name, entry := range lf.Entries {
		node, ok := g.Node(domain.NewInternedString(name))
		if !ok {
			continue
		}

		want := v.HashEntry(
			entry.Name,
			node.Winner.ResolvedVersion(),
			node.Winner.Manager,
			node.Winner.Features,
			node.Winner.Options,
		)
		if want != entry.Hash {
			stale = append(stale, name)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	slices.Sort(stale)
	return zerr.With(domain.ErrLockfileStale, "packages", strings.Join(stale, ", "))
}
