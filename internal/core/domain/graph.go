// Package domain contains the core models and business logic for the
// package dependency resolution graph.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DependencyNode is a single package in the dependency graph. It carries the
// winning declaration after conflict resolution plus the provenance of every
// scope that declared it.
type DependencyNode struct {
	// Name is the package name.
	Name InternedString

	// Winner is the declaration that survived conflict resolution.
	// Before ResolveConflicts runs it is the earliest declaration.
	Winner PackageDependency

	// Declarations holds every declaration of this package in scope
	// precedence order. Empty for packages discovered transitively.
	Declarations []PackageDependency
}

// Scopes returns the scopes that declared this package, in precedence order.
// Transitively discovered packages have no declaring scopes.
func (n *DependencyNode) Scopes() []Scope {
	scopes := make([]Scope, 0, len(n.Declarations))
	for _, d := range n.Declarations {
		if !slices.Contains(scopes, d.Scope) {
			scopes = append(scopes, d.Scope)
		}
	}
	return scopes
}

// Declared reports whether the package was declared by the user rather than
// discovered transitively through the metadata provider.
func (n *DependencyNode) Declared() bool {
	return len(n.Declarations) > 0
}

// DependencyGraph is the resolution state for one request: the package
// nodes, the edges returned by the metadata provider, the
// resolved/unresolved partitions, and any circular reference chains.
//
// A graph is built fresh per resolution request and is not safe for
// concurrent mutation; the resolver applies all writes from a single owning
// goroutine.
type DependencyGraph struct {
	nodes map[InternedString]*DependencyNode
	order []InternedString

	edges map[InternedString][]InternedString

	resolved   map[InternedString]struct{}
	unresolved map[InternedString]struct{}
	failures   map[InternedString]error

	circular [][]InternedString
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes:      make(map[InternedString]*DependencyNode),
		edges:      make(map[InternedString][]InternedString),
		resolved:   make(map[InternedString]struct{}),
		unresolved: make(map[InternedString]struct{}),
		failures:   make(map[InternedString]error),
	}
}

// BuildGraph turns the declared dependencies into a graph with one node per
// distinct package name and empty edge lists. Conflicting declarations of
// the same name are all recorded; picking a winner is ResolveConflicts'
// job. Every name starts in the unresolved partition.
//
// It fails only on structurally invalid input: a declaration with an empty
// name.
func BuildGraph(decls *Declarations) (*DependencyGraph, error) {
	g := NewDependencyGraph()
	for dep := range decls.All() {
		if dep.Name.String() == "" {
			return nil, zerr.With(ErrEmptyPackageName, "scope", dep.Scope.String())
		}
		g.record(dep)
	}
	return g, nil
}

// record appends a declaration, creating the node on first sight.
func (g *DependencyGraph) record(dep PackageDependency) {
	node, exists := g.nodes[dep.Name]
	if !exists {
		node = &DependencyNode{Name: dep.Name, Winner: dep}
		g.nodes[dep.Name] = node
		g.order = append(g.order, dep.Name)
		g.edges[dep.Name] = nil
		g.unresolved[dep.Name] = struct{}{}
	}
	node.Declarations = append(node.Declarations, dep)
}

// EnsureNode adds a node for a package discovered transitively, inheriting
// the manager of the package that referenced it. It is a no-op for names
// already present. Dangling edge targets enter the graph this way so they
// are reported as unresolved rather than silently dropped.
func (g *DependencyGraph) EnsureNode(name InternedString, manager PackageManager) *DependencyNode {
	if node, exists := g.nodes[name]; exists {
		return node
	}
	node := &DependencyNode{
		Name:   name,
		Winner: PackageDependency{Name: name, Manager: manager},
	}
	g.nodes[name] = node
	g.order = append(g.order, name)
	g.edges[name] = nil
	g.unresolved[name] = struct{}{}
	return node
}

// Node returns the node for the given name.
func (g *DependencyGraph) Node(name InternedString) (*DependencyNode, bool) {
	node, ok := g.nodes[name]
	return node, ok
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.nodes)
}

// Names returns all package names in insertion order: declared names in
// scope precedence order first, transitively discovered names after.
func (g *DependencyGraph) Names() []InternedString {
	return slices.Clone(g.order)
}

// Nodes returns an iterator over nodes in insertion order.
func (g *DependencyGraph) Nodes() iter.Seq[*DependencyNode] {
	return func(yield func(*DependencyNode) bool) {
		for _, name := range g.order {
			if !yield(g.nodes[name]) {
				return
			}
		}
	}
}

// SetEdges stores the dependency names of a package in provider order.
func (g *DependencyGraph) SetEdges(name InternedString, deps []InternedString) {
	g.edges[name] = slices.Clone(deps)
}

// Edges returns the dependency names of a package in provider order.
func (g *DependencyGraph) Edges(name InternedString) []InternedString {
	return g.edges[name]
}

// MarkResolved moves a package into the resolved partition. The partitions
// stay disjoint: the name is removed from unresolved and any recorded fetch
// failure is cleared.
func (g *DependencyGraph) MarkResolved(name InternedString) {
	delete(g.unresolved, name)
	delete(g.failures, name)
	g.resolved[name] = struct{}{}
}

// MarkFailed records a fetch failure and keeps the package unresolved.
func (g *DependencyGraph) MarkFailed(name InternedString, err error) {
	delete(g.resolved, name)
	g.unresolved[name] = struct{}{}
	g.failures[name] = err
}

// IsResolved reports whether the package is in the resolved partition.
func (g *DependencyGraph) IsResolved(name InternedString) bool {
	_, ok := g.resolved[name]
	return ok
}

// Resolved returns the resolved package names sorted by name.
func (g *DependencyGraph) Resolved() []InternedString {
	return sortedNames(g.resolved)
}

// Unresolved returns the unresolved package names sorted by name.
func (g *DependencyGraph) Unresolved() []InternedString {
	return sortedNames(g.unresolved)
}

// FetchErrors returns the per-package fetch failures recorded so far.
func (g *DependencyGraph) FetchErrors() map[InternedString]error {
	out := make(map[InternedString]error, len(g.failures))
	for name, err := range g.failures {
		out[name] = err
	}
	return out
}

// SetCircular stores the detected cycles.
func (g *DependencyGraph) SetCircular(cycles [][]InternedString) {
	g.circular = cycles
}

// Circular returns the detected cycles. Each cycle starts and ends at the
// repeated node. Cycles are data, not errors; policy is the caller's.
func (g *DependencyGraph) Circular() [][]InternedString {
	return g.circular
}

func sortedNames(set map[InternedString]struct{}) []InternedString {
	names := make([]InternedString, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return names
}
