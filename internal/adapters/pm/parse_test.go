package pm

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestConanReference(t *testing.T) {
	tests := []struct {
		name, constraint, want string
	}{
		{"fmt", "^10.1.0", "fmt/10.1.0"},
		{"fmt", "~1.12", "fmt/1.12"},
		{"fmt", ">=2.0", "fmt/2.0"},
		{"fmt", "", "fmt/latest"},
	}
	for _, tt := range tests {
		if got := conanReference(tt.name, tt.constraint); got != tt.want {
			t.Errorf("conanReference(%q, %q) = %q, want %q", tt.name, tt.constraint, got, tt.want)
		}
	}
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref, want string
	}{
		{"fmt/10.1.0", "fmt"},
		{"zlib/1.3@user/channel", "zlib"},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := refName(tt.ref); got != tt.want {
			t.Errorf("refName(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestConanEdges_NumericOrder(t *testing.T) {
	var graph conanGraph
	data := []byte(`{"graph": {"nodes": {
		"0": {"ref": "cli", "dependencies": {"10": {}, "2": {}, "1": {}, "11": {}}},
		"1": {"ref": "zlib/1.3"},
		"2": {"ref": "fmt/10.1.0"},
		"10": {"ref": "spdlog/1.12.0"},
		"11": {"ref": "boost/1.83.0"}
	}}}`)
	if err := json.Unmarshal(data, &graph); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"zlib", "fmt", "spdlog", "boost"}
	for range 10 {
		got := conanEdges(&graph, "cli")
		if !slices.Equal(got, want) {
			t.Fatalf("expected edges %v, got %v", want, got)
		}
	}
}

func TestConanEdges_SkipsSelfAndUnknownNodes(t *testing.T) {
	var graph conanGraph
	data := []byte(`{"graph": {"nodes": {
		"0": {"ref": "fmt/10.1.0", "dependencies": {"1": {}, "2": {}, "99": {}}},
		"1": {"ref": "fmt/10.1.0"},
		"2": {"ref": "zlib/1.3"}
	}}}`)
	if err := json.Unmarshal(data, &graph); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := conanEdges(&graph, "fmt"); !slices.Equal(got, []string{"zlib"}) {
		t.Fatalf("expected [zlib], got %v", got)
	}
}

func TestVcpkgDependencyUnmarshal(t *testing.T) {
	var deps []vcpkgDependency
	data := []byte(`["zlib", {"name": "fmt", "platform": "!windows"}]`)

	if err := json.Unmarshal(data, &deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps) != 2 || deps[0].Name != "zlib" || deps[1].Name != "fmt" {
		t.Errorf("expected [zlib fmt], got %+v", deps)
	}
}
