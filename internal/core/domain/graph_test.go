package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

func dep(name, constraint string, manager domain.PackageManager) domain.PackageDependency {
	return domain.PackageDependency{
		Name:              domain.NewInternedString(name),
		VersionConstraint: constraint,
		Manager:           manager,
	}
}

func TestBuildGraph(t *testing.T) {
	decls := &domain.Declarations{
		Runtime: []domain.PackageDependency{
			dep("fmt", "^10.1.0", domain.ManagerConan),
			dep("spdlog", "~1.12", domain.ManagerConan),
		},
		Test: []domain.PackageDependency{
			dep("gtest", "1.14.0", domain.ManagerVcpkg),
		},
	}

	g, err := domain.BuildGraph(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", g.Len())
	}
	if len(g.Resolved()) != 0 {
		t.Errorf("expected no resolved packages before resolution, got %v", g.Resolved())
	}
	if len(g.Unresolved()) != 3 {
		t.Errorf("expected all packages unresolved, got %v", g.Unresolved())
	}
}

func TestBuildGraph_DuplicateDeclarationsShareNode(t *testing.T) {
	decls := &domain.Declarations{
		Runtime: []domain.PackageDependency{dep("fmt", "^10.1.0", domain.ManagerConan)},
		Test:    []domain.PackageDependency{dep("fmt", "^9.0.0", domain.ManagerConan)},
	}

	g, err := domain.BuildGraph(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Len() != 1 {
		t.Fatalf("expected 1 node for duplicate declarations, got %d", g.Len())
	}

	node, ok := g.Node(domain.NewInternedString("fmt"))
	if !ok {
		t.Fatal("expected fmt node")
	}
	if len(node.Declarations) != 2 {
		t.Fatalf("expected 2 declarations on node, got %d", len(node.Declarations))
	}

	scopes := node.Scopes()
	if len(scopes) != 2 || scopes[0] != domain.ScopeRuntime || scopes[1] != domain.ScopeTest {
		t.Errorf("expected scopes [runtime test], got %v", scopes)
	}
}

func TestBuildGraph_EmptyName(t *testing.T) {
	decls := &domain.Declarations{
		Build: []domain.PackageDependency{dep("", "1.0", domain.ManagerConan)},
	}

	_, err := domain.BuildGraph(decls)
	if err == nil {
		t.Fatal("expected error for empty package name, got nil")
	}
	if !errors.Is(err, domain.ErrEmptyPackageName) {
		t.Fatalf("expected ErrEmptyPackageName, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if scope, ok := zErr.Metadata()["scope"].(string); !ok || scope != "build" {
		t.Errorf("expected metadata scope=build, got %v", zErr.Metadata()["scope"])
	}
}

func TestGraph_EnsureNode(t *testing.T) {
	g := domain.NewDependencyGraph()
	name := domain.NewInternedString("zlib")

	node := g.EnsureNode(name, domain.ManagerVcpkg)
	if node.Declared() {
		t.Error("synthetic node should not be declared")
	}
	if node.Winner.Manager != domain.ManagerVcpkg {
		t.Errorf("expected synthetic node to inherit manager, got %v", node.Winner.Manager)
	}

	// A second call returns the same node.
	if again := g.EnsureNode(name, domain.ManagerConan); again != node {
		t.Error("expected EnsureNode to be idempotent")
	}
}

func TestGraph_ResolutionPartitions(t *testing.T) {
	decls := &domain.Declarations{
		Runtime: []domain.PackageDependency{
			dep("fmt", "", domain.ManagerConan),
			dep("sdl", "", domain.ManagerConan),
		},
	}
	g, err := domain.BuildGraph(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fmtName := domain.NewInternedString("fmt")
	sdlName := domain.NewInternedString("sdl")

	g.MarkResolved(fmtName)
	g.MarkFailed(sdlName, errors.New("registry unavailable"))

	if !g.IsResolved(fmtName) {
		t.Error("expected fmt resolved")
	}
	if g.IsResolved(sdlName) {
		t.Error("expected sdl unresolved")
	}

	unresolved := g.Unresolved()
	if len(unresolved) != 1 || unresolved[0] != sdlName {
		t.Errorf("expected unresolved [sdl], got %v", unresolved)
	}
	if _, ok := g.FetchErrors()[sdlName]; !ok {
		t.Error("expected fetch error recorded for sdl")
	}
}

func TestGraph_EdgesCopy(t *testing.T) {
	g := domain.NewDependencyGraph()
	name := domain.NewInternedString("a")
	g.EnsureNode(name, domain.ManagerConan)
	g.SetEdges(name, []domain.InternedString{domain.NewInternedString("b")})

	edges := g.Edges(name)
	if len(edges) != 1 || edges[0].String() != "b" {
		t.Fatalf("expected edges [b], got %v", edges)
	}
}
