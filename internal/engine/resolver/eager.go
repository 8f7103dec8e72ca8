package resolver

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// fetchResult carries one finished fetch back to the run loop.
type fetchResult struct {
	name  domain.InternedString
	edges []string
	err   error
}

// eagerRun holds the state of one eager traversal. The graph is mutated
// only from the owning run loop; workers hand their results back over
// resultsCh.
type eagerRun struct {
	resolver    *Resolver
	graph       *domain.DependencyGraph
	cfg         domain.ResolutionConfig
	cache       ports.MetadataCache
	parallelism int

	queue     []domain.InternedString
	started   map[domain.InternedString]bool
	active    int
	resultsCh chan fetchResult
}

// resolveEager walks the graph breadth-first, fetching up to
// cfg.Parallelism packages concurrently until the frontier is exhausted.
func (r *Resolver) resolveEager(ctx context.Context, graph *domain.DependencyGraph, cfg domain.ResolutionConfig, cache ports.MetadataCache) error {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = domain.DefaultParallelism
	}

	run := &eagerRun{
		resolver:    r,
		graph:       graph,
		cfg:         cfg,
		cache:       cache,
		parallelism: parallelism,
		queue:       graph.Names(),
		started:     make(map[domain.InternedString]bool),
		resultsCh:   make(chan fetchResult),
	}

	for !run.done() {
		run.schedule(ctx)
		if run.done() {
			break
		}
		if ctx.Err() != nil {
			// Drain in-flight fetches so the partial graph still records
			// their outcomes, then stop scheduling.
			if run.active == 0 {
				break
			}
		}
		run.handle(<-run.resultsCh)
	}

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "resolution canceled")
	}
	return nil
}

func (run *eagerRun) done() bool {
	return run.active == 0 && len(run.queue) == 0
}

// schedule starts fetches from the front of the queue until the worker
// budget is spent or the queue runs dry.
func (run *eagerRun) schedule(ctx context.Context) {
	for len(run.queue) > 0 && run.active < run.parallelism && ctx.Err() == nil {
		name := run.queue[0]
		run.queue = run.queue[1:]
		if run.started[name] {
			continue
		}
		run.started[name] = true

		node, ok := run.graph.Node(name)
		if !ok {
			continue
		}
		dep := node.Winner

		run.active++
		go func() {
			edges, err := run.resolver.fetchEdges(ctx, dep, run.cfg, run.cache)
			run.resultsCh <- fetchResult{name: dep.Name, edges: edges, err: err}
		}()
	}

	if ctx.Err() != nil {
		// Names still queued after cancellation stay unresolved.
		run.queue = nil
	}
}

// handle folds one fetch result into the graph and extends the frontier
// with any newly discovered transitive names.
func (run *eagerRun) handle(res fetchResult) {
	run.active--

	if res.err != nil {
		run.graph.MarkFailed(res.name, res.err)
		return
	}

	node, ok := run.graph.Node(res.name)
	if !ok {
		return
	}

	applyEdges(run.graph, node, res.edges)
	for _, edge := range run.graph.Edges(res.name) {
		run.queue = append(run.queue, edge)
	}
}
