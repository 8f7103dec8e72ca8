package domain

import "go.trai.ch/zerr"

// ConflictStrategy selects how duplicate declarations of one package name
// across scopes are reduced to a single winning declaration.
type ConflictStrategy int

const (
	// ConflictFirst keeps the declaration from the earliest scope in the
	// fixed precedence runtime > build > test > development.
	ConflictFirst ConflictStrategy = iota
	// ConflictLatest keeps the declaration with the highest version
	// constraint.
	ConflictLatest
	// ConflictError aborts resolution on any materially differing duplicate.
	ConflictError
)

// String returns the strategy's canonical name.
func (s ConflictStrategy) String() string {
	switch s {
	case ConflictFirst:
		return "first"
	case ConflictLatest:
		return "latest"
	case ConflictError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseConflictStrategy parses the canonical strategy name.
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch s {
	case "first":
		return ConflictFirst, nil
	case "latest":
		return ConflictLatest, nil
	case "error":
		return ConflictError, nil
	default:
		return 0, zerr.With(ErrUnknownConflictStrategy, "conflict_resolution", s)
	}
}

// ResolveConflicts picks the winning declaration for every package declared
// more than once. Declarations were recorded in scope precedence order, so
// the first declaration of a node is always the highest-precedence one.
//
// Under ConflictError any duplicate differing in manager or version
// constraint aborts the whole resolution with ErrConflictingDeclarations
// naming the conflicting scopes.
func (g *DependencyGraph) ResolveConflicts(strategy ConflictStrategy) error {
	for node := range g.Nodes() {
		if len(node.Declarations) < 2 {
			continue
		}

		switch strategy {
		case ConflictFirst:
			node.Winner = node.Declarations[0]
		case ConflictLatest:
			winner, err := pickLatest(node)
			if err != nil {
				return err
			}
			node.Winner = winner
		case ConflictError:
			if err := rejectMaterialConflicts(node); err != nil {
				return err
			}
			node.Winner = node.Declarations[0]
		}
	}
	return nil
}

// pickLatest keeps the declaration with the highest constraint. Two
// declarations whose constraints compare equal but whose managers differ
// look interchangeable while naming different backends; that is a hard
// conflict, not a tie to break silently.
func pickLatest(node *DependencyNode) (PackageDependency, error) {
	winner := node.Declarations[0]
	for _, decl := range node.Declarations[1:] {
		c := CompareConstraints(decl.VersionConstraint, winner.VersionConstraint)
		if c == 0 && decl.Manager != winner.Manager {
			return PackageDependency{}, conflictError(node.Name, winner, decl)
		}
		if c > 0 {
			winner = decl
		}
	}
	return winner, nil
}

func rejectMaterialConflicts(node *DependencyNode) error {
	first := node.Declarations[0]
	for _, decl := range node.Declarations[1:] {
		if decl.Manager != first.Manager || decl.VersionConstraint != first.VersionConstraint {
			return conflictError(node.Name, first, decl)
		}
	}
	return nil
}

func conflictError(name InternedString, a, b PackageDependency) error {
	err := zerr.With(ErrConflictingDeclarations, "package", name.String())
	err = zerr.With(err, "scope_a", a.Scope.String())
	err = zerr.With(err, "constraint_a", a.VersionConstraint)
	err = zerr.With(err, "scope_b", b.Scope.String())
	return zerr.With(err, "constraint_b", b.VersionConstraint)
}
