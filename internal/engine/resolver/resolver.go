// Package resolver implements the dependency resolution engine.
package resolver

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns declared dependencies into a resolved DependencyGraph,
// fetching edge lists through a MetadataProvider according to the
// configured traversal strategy.
type Resolver struct {
	provider ports.MetadataProvider
	tracer   ports.Telemetry
}

// New creates a new Resolver.
func New(provider ports.MetadataProvider, tracer ports.Telemetry) *Resolver {
	return &Resolver{
		provider: provider,
		tracer:   tracer,
	}
}

// Resolve builds a fresh graph from the manifest's declarations, applies
// conflict resolution, runs the configured traversal, and records cycles.
//
// Schema and conflict errors abort before any traversal. Per-package
// provider failures do not: the failing package moves to the unresolved
// partition (see DependencyGraph.FetchErrors) and traversal continues for
// its siblings. On cancellation the partial graph is returned together with
// the context error.
//
// The cache may be nil; it is only consulted when the manifest enables it.
func (r *Resolver) Resolve(ctx context.Context, manifest *domain.Manifest, cache ports.MetadataCache) (*domain.DependencyGraph, error) {
	graph, err := domain.BuildGraph(&manifest.Declarations)
	if err != nil {
		return nil, err
	}

	if err := graph.ResolveConflicts(manifest.Resolution.Conflicts); err != nil {
		return nil, err
	}

	var runErr error
	if manifest.Resolution.Strategy == domain.StrategyEager {
		runErr = r.resolveEager(ctx, graph, manifest.Resolution, cache)
	}
	// Lazy and manual start with every declared name unresolved; edges
	// arrive through ResolveOne and SupplyEdges.

	// Edges are unknown until fetched, so cycle detection always runs after
	// the traversal and lands in the result instead of short-circuiting it.
	graph.SetCircular(graph.DetectCycles())

	return graph, runErr
}

// ResolveOne resolves a single package on demand, the per-node half of the
// lazy strategy. It performs the same fetch+cache logic as eager for just
// that name, moving it from unresolved to resolved or recording its
// failure, and returns the updated node.
func (r *Resolver) ResolveOne(ctx context.Context, graph *domain.DependencyGraph, name string, cfg domain.ResolutionConfig, cache ports.MetadataCache) (*domain.DependencyNode, error) {
	interned := domain.NewInternedString(name)
	node, ok := graph.Node(interned)
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}
	if graph.IsResolved(interned) {
		return node, nil
	}

	edges, err := r.fetchEdges(ctx, node.Winner, cfg, cache)
	if err != nil {
		graph.MarkFailed(interned, err)
		return node, err
	}

	applyEdges(graph, node, edges)
	graph.SetCircular(graph.DetectCycles())
	return node, nil
}

// SupplyEdges records a pre-resolved edge list for a package, the manual
// strategy's entry point for offline and air-gapped runs. No provider or
// cache calls happen.
func (r *Resolver) SupplyEdges(graph *domain.DependencyGraph, name string, edges []string) (*domain.DependencyNode, error) {
	interned := domain.NewInternedString(name)
	node, ok := graph.Node(interned)
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}

	applyEdges(graph, node, edges)
	graph.SetCircular(graph.DetectCycles())
	return node, nil
}

// applyEdges stores a fetched edge list and moves the package to resolved.
// Edge targets unknown to the graph get a node so they are reported as
// unresolved rather than dropped.
func applyEdges(graph *domain.DependencyGraph, node *domain.DependencyNode, edges []string) {
	interned := make([]domain.InternedString, len(edges))
	for i, edge := range edges {
		interned[i] = domain.NewInternedString(edge)
		graph.EnsureNode(interned[i], node.Winner.Manager)
	}
	graph.SetEdges(node.Name, interned)
	graph.MarkResolved(node.Name)
}

// fetchEdges performs the single-package fetch: cache lookup, provider
// call, cache write, one telemetry vertex around the lot.
func (r *Resolver) fetchEdges(ctx context.Context, dep domain.PackageDependency, cfg domain.ResolutionConfig, cache ports.MetadataCache) ([]string, error) {
	name := dep.Name.String()
	ctx, vertex := r.tracer.Record(ctx, "resolve "+name)

	if cfg.CacheEnabled && cache != nil {
		if edges, ok := cache.Get(name, dep.VersionConstraint, dep.Manager); ok {
			vertex.Cached()
			vertex.Complete(nil)
			return edges, nil
		}
	}

	edges, err := r.provider.GetDependencies(ctx, name, dep.VersionConstraint, dep.Manager)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrMetadataFetch.Error()), "package", name)
		err = zerr.With(err, "manager", dep.Manager.String())
		vertex.Complete(err)
		return nil, err
	}

	if cfg.CacheEnabled && cache != nil {
		cache.Put(name, dep.VersionConstraint, dep.Manager, edges)
	}

	vertex.Complete(nil)
	return edges, nil
}
