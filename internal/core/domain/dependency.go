package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Scope partitions where a declared dependency applies.
type Scope int

const (
	// ScopeRuntime marks dependencies linked into the shipped artifact.
	ScopeRuntime Scope = iota
	// ScopeBuild marks dependencies needed only to build.
	ScopeBuild
	// ScopeTest marks dependencies needed only by the test suite.
	ScopeTest
	// ScopeDevelopment marks developer tooling dependencies.
	ScopeDevelopment
)

// ScopesInOrder lists all scopes in fixed precedence order:
// runtime before build before test before development.
var ScopesInOrder = [...]Scope{ScopeRuntime, ScopeBuild, ScopeTest, ScopeDevelopment}

// String returns the scope's canonical name.
func (s Scope) String() string {
	switch s {
	case ScopeRuntime:
		return "runtime"
	case ScopeBuild:
		return "build"
	case ScopeTest:
		return "test"
	case ScopeDevelopment:
		return "development"
	default:
		return "unknown"
	}
}

// ParseScope parses the canonical scope name.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "runtime":
		return ScopeRuntime, nil
	case "build":
		return ScopeBuild, nil
	case "test":
		return ScopeTest, nil
	case "development":
		return ScopeDevelopment, nil
	default:
		return 0, zerr.With(ErrUnknownScope, "scope", s)
	}
}

// PackageManager identifies the backend a dependency is declared for.
// It is a closed set; a new manager requires a new constant plus a provider
// adapter, not subclassing.
type PackageManager int

const (
	// ManagerConan is the Conan package manager.
	ManagerConan PackageManager = iota
	// ManagerVcpkg is the vcpkg package manager.
	ManagerVcpkg
	// ManagerCPM is the CPM.cmake package manager.
	ManagerCPM
)

// String returns the manager's canonical name.
func (m PackageManager) String() string {
	switch m {
	case ManagerConan:
		return "conan"
	case ManagerVcpkg:
		return "vcpkg"
	case ManagerCPM:
		return "cpm"
	default:
		return "unknown"
	}
}

// ParsePackageManager parses the canonical manager name.
func ParsePackageManager(s string) (PackageManager, error) {
	switch s {
	case "conan":
		return ManagerConan, nil
	case "vcpkg":
		return ManagerVcpkg, nil
	case "cpm":
		return ManagerCPM, nil
	default:
		return 0, zerr.With(ErrUnknownPackageManager, "package_manager", s)
	}
}

// PackageDependency represents a single declared dependency before resolution.
type PackageDependency struct {
	// Name is the package name, unique within a scope.
	Name InternedString

	// VersionConstraint is the requested constraint (e.g., "^10.0.0").
	// It is opaque to the graph; only the conflict resolver interprets it.
	VersionConstraint string

	// Manager is the package manager the dependency is declared for.
	Manager PackageManager

	// Optional marks dependencies whose absence is tolerated by the build.
	Optional bool

	// Features lists enabled package features. Order is irrelevant.
	Features []string

	// Options maps manager-specific option names to values.
	Options map[string]string

	// Scope is the scope the dependency was declared in.
	Scope Scope
}

// ResolvedVersion returns the concrete version the declaration pins to:
// the constraint with any leading operator stripped, or "latest" when
// unconstrained.
func (d PackageDependency) ResolvedVersion() string {
	v := stripConstraintOperator(d.VersionConstraint)
	if v == "" {
		return "latest"
	}
	return v
}

// Declarations holds the declared dependencies partitioned by scope.
type Declarations struct {
	Runtime     []PackageDependency
	Build       []PackageDependency
	Test        []PackageDependency
	Development []PackageDependency
}

func (d *Declarations) inScope(s Scope) []PackageDependency {
	switch s {
	case ScopeRuntime:
		return d.Runtime
	case ScopeBuild:
		return d.Build
	case ScopeTest:
		return d.Test
	case ScopeDevelopment:
		return d.Development
	default:
		return nil
	}
}

// All returns an iterator over every declaration in scope precedence order,
// runtime first. The yielded declaration's Scope field is set from the list
// it came from, so callers never see a mismatch between list and field.
func (d *Declarations) All() iter.Seq[PackageDependency] {
	return func(yield func(PackageDependency) bool) {
		for _, scope := range ScopesInOrder {
			for _, dep := range d.inScope(scope) {
				dep.Scope = scope
				if !yield(dep) {
					return
				}
			}
		}
	}
}

// Count returns the total number of declarations across all scopes.
func (d *Declarations) Count() int {
	return len(d.Runtime) + len(d.Build) + len(d.Test) + len(d.Development)
}
