// Package app implements the application layer for pin.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader       ports.ManifestLoader
	resolver     *resolver.Resolver
	store        ports.LockfileStore
	digester     ports.Digester
	cacheFactory ports.CacheFactory
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	res *resolver.Resolver,
	store ports.LockfileStore,
	digester ports.Digester,
	cacheFactory ports.CacheFactory,
	logger ports.Logger,
) *App {
	return &App{
		loader:       loader,
		resolver:     res,
		store:        store,
		digester:     digester,
		cacheFactory: cacheFactory,
		logger:       logger,
	}
}

// Resolve runs a full resolution for the manifest in cwd and, when the
// manifest enables it, rewrites the lockfile. The resolved graph is
// returned so callers can render it; per-package fetch failures are logged
// as warnings rather than failing the run.
func (a *App) Resolve(ctx context.Context, cwd string) (*domain.DependencyGraph, error) {
	manifest, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	var cache ports.MetadataCache
	if manifest.Resolution.CacheEnabled {
		cache = a.cacheFactory(manifest.Resolution.CacheTTL)
	}

	graph, err := a.resolver.Resolve(ctx, manifest, cache)
	if err != nil {
		return graph, zerr.Wrap(err, "resolution failed")
	}

	a.warnFailures(graph)

	if manifest.Resolution.LockfileEnabled {
		if err := a.writeLockfile(cwd, manifest, graph); err != nil {
			return graph, err
		}
	}

	return graph, nil
}

// Verify checks the existing lockfile against the manifest in cwd without
// fetching anything: declared packages must all have entries and every
// entry's hash must still match its declaration.
func (a *App) Verify(_ context.Context, cwd string) error {
	manifest, err := a.loader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	graph, err := domain.BuildGraph(&manifest.Declarations)
	if err != nil {
		return err
	}
	if err := graph.ResolveConflicts(manifest.Resolution.Conflicts); err != nil {
		return err
	}

	path := a.lockfilePath(cwd, manifest)
	lf, err := a.store.Read(path)
	if err != nil {
		return err
	}
	if lf == nil {
		return zerr.With(zerr.New("no lockfile to verify"), "path", path)
	}

	var missing []string
	for node := range graph.Nodes() {
		if !node.Declared() {
			continue
		}
		if _, ok := lf.Entries[node.Name.String()]; !ok {
			missing = append(missing, node.Name.String())
		}
	}
	if len(missing) > 0 {
		return zerr.With(domain.ErrLockfileStale, "missing", strings.Join(missing, ", "))
	}

	return a.digester.Validate(lf, graph)
}

// writeLockfile validates the previous lockfile for drift, then rewrites
// it from the resolved graph. Staleness of the old file is informational;
// the rewrite replaces it either way.
func (a *App) writeLockfile(cwd string, manifest *domain.Manifest, graph *domain.DependencyGraph) error {
	path := a.lockfilePath(cwd, manifest)

	previous, err := a.store.Read(path)
	if err != nil {
		return err
	}
	if previous != nil {
		if err := a.digester.Validate(previous, graph); err != nil {
			a.logger.Warn(fmt.Sprintf("lockfile drifted from manifest, regenerating: %v", err))
		}
	}

	lf := a.buildLockfile(graph)
	if err := a.store.Write(path, lf); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}
	return nil
}

// buildLockfile snapshots every resolved package into a lockfile entry.
// Unresolved packages carry no edge information and are left out; the next
// successful resolution picks them up.
func (a *App) buildLockfile(graph *domain.DependencyGraph) *domain.Lockfile {
	lf := domain.NewLockfile()
	for node := range graph.Nodes() {
		if !graph.IsResolved(node.Name) {
			continue
		}

		name := node.Name.String()
		version := node.Winner.ResolvedVersion()

		edges := graph.Edges(node.Name)
		deps := make([]string, len(edges))
		for i, edge := range edges {
			deps[i] = edge.String()
		}

		lf.Entries[name] = domain.LockfileEntry{
			Name:         name,
			Version:      version,
			Manager:      node.Winner.Manager,
			Hash:         a.digester.HashEntry(name, version, node.Winner.Manager, node.Winner.Features, node.Winner.Options),
			Dependencies: deps,
			Features:     node.Winner.Features,
			Options:      node.Winner.Options,
		}
	}
	return lf
}

func (a *App) lockfilePath(cwd string, manifest *domain.Manifest) string {
	path := manifest.Resolution.LockfilePath
	if path == "" {
		path = domain.DefaultLockfileName
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

// warnFailures logs fetch failures and cycles left in the graph.
func (a *App) warnFailures(graph *domain.DependencyGraph) {
	for _, name := range graph.Unresolved() {
		if err, ok := graph.FetchErrors()[name]; ok {
			a.logger.Warn(fmt.Sprintf("failed to resolve %s: %v", name, err))
		} else {
			a.logger.Warn(fmt.Sprintf("unresolved package: %s", name))
		}
	}
	for _, cycle := range graph.Circular() {
		names := make([]string, len(cycle))
		for i, name := range cycle {
			names[i] = name.String()
		}
		a.logger.Warn("circular dependency: " + strings.Join(names, " -> "))
	}
}
