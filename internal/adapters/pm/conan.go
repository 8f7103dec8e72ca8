package pm

import (
	"cmp"
	"context"
	"encoding/json"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConanProvider fetches dependency metadata through the conan CLI.
type ConanProvider struct{}

// NewConanProvider creates a new ConanProvider.
func NewConanProvider() *ConanProvider {
	return &ConanProvider{}
}

// conanGraph mirrors the parts of `conan graph info --format=json` output
// we read.
type conanGraph struct {
	Graph struct {
		Nodes map[string]conanNode `json:"nodes"`
	} `json:"graph"`
}

type conanNode struct {
	Ref          string              `json:"ref"`
	Dependencies map[string]struct{} `json:"dependencies"`
}

// GetDependencies asks conan for the direct requirements of a package
// reference.
func (p *ConanProvider) GetDependencies(ctx context.Context, name, constraint string, _ domain.PackageManager) ([]string, error) {
	ref := conanReference(name, constraint)

	//nolint:gosec // ref is built from the declared package name and version
	cmd := exec.CommandContext(ctx, "conan", "graph", "info", "--requires="+ref, "--format=json")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			fetchErr := zerr.Wrap(exitErr, "conan graph info failed")
			fetchErr = zerr.With(fetchErr, "ref", ref)
			return nil, zerr.With(fetchErr, "stderr", stderr)
		}
		return nil, zerr.With(zerr.Wrap(err, "conan graph info failed"), "ref", ref)
	}

	var graph conanGraph
	if err := json.Unmarshal(output, &graph); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse conan JSON output"), "ref", ref)
	}

	// Node "0" is the synthetic consumer; its dependency keys index the
	// other nodes, whose refs carry the package names.
	if _, ok := graph.Graph.Nodes["0"]; !ok {
		return nil, zerr.With(zerr.New("conan output missing root node"), "ref", ref)
	}

	return conanEdges(&graph, name), nil
}

// conanEdges extracts the root node's direct dependency names. Node ids are
// walked in numeric order so the same graph always yields the same edge
// sequence regardless of map iteration order.
func conanEdges(graph *conanGraph, name string) []string {
	root := graph.Graph.Nodes["0"]

	ids := make([]string, 0, len(root.Dependencies))
	for id := range root.Dependencies {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return cmp.Compare(na, nb)
		}
		return strings.Compare(a, b)
	})

	deps := make([]string, 0, len(ids))
	for _, id := range ids {
		node, ok := graph.Graph.Nodes[id]
		if !ok {
			continue
		}
		if depName := refName(node.Ref); depName != "" && depName != name {
			deps = append(deps, depName)
		}
	}
	return deps
}

// conanReference builds a name/version reference, defaulting to latest when
// the constraint is empty.
func conanReference(name, constraint string) string {
	version := strings.TrimLeft(constraint, "^~<>= ")
	if version == "" {
		version = "latest"
	}
	return name + "/" + version
}

// refName extracts the package name from a "name/version@user/channel"
// conan reference.
func refName(ref string) string {
	name, _, ok := strings.Cut(ref, "/")
	if !ok {
		return ref
	}
	return name
}
