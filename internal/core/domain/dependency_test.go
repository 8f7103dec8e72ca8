package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/pin/internal/core/domain"
)

func TestParseScope(t *testing.T) {
	for _, name := range []string{"runtime", "build", "test", "development"} {
		scope, err := domain.ParseScope(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if scope.String() != name {
			t.Errorf("round trip mismatch: %q -> %q", name, scope.String())
		}
	}

	if _, err := domain.ParseScope("prod"); !errors.Is(err, domain.ErrUnknownScope) {
		t.Errorf("expected ErrUnknownScope, got %v", err)
	}
}

func TestParsePackageManager(t *testing.T) {
	for _, name := range []string{"conan", "vcpkg", "cpm"} {
		manager, err := domain.ParsePackageManager(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if manager.String() != name {
			t.Errorf("round trip mismatch: %q -> %q", name, manager.String())
		}
	}

	if _, err := domain.ParsePackageManager("apt"); !errors.Is(err, domain.ErrUnknownPackageManager) {
		t.Errorf("expected ErrUnknownPackageManager, got %v", err)
	}
}

func TestDeclarations_AllOrderAndScope(t *testing.T) {
	decls := &domain.Declarations{
		Development: []domain.PackageDependency{dep("clang-format", "", domain.ManagerConan)},
		Runtime:     []domain.PackageDependency{dep("fmt", "", domain.ManagerConan)},
		Test:        []domain.PackageDependency{dep("gtest", "", domain.ManagerVcpkg)},
		Build:       []domain.PackageDependency{dep("cmake", "", domain.ManagerConan)},
	}

	var names []string
	var scopes []domain.Scope
	for d := range decls.All() {
		names = append(names, d.Name.String())
		scopes = append(scopes, d.Scope)
	}

	wantNames := []string{"fmt", "cmake", "gtest", "clang-format"}
	wantScopes := []domain.Scope{domain.ScopeRuntime, domain.ScopeBuild, domain.ScopeTest, domain.ScopeDevelopment}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Errorf("position %d: expected %q, got %q", i, wantNames[i], names[i])
		}
		if scopes[i] != wantScopes[i] {
			t.Errorf("position %d: expected scope %v, got %v", i, wantScopes[i], scopes[i])
		}
	}

	if decls.Count() != 4 {
		t.Errorf("expected count 4, got %d", decls.Count())
	}
}

func TestResolvedVersion(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"^10.1.0", "10.1.0"},
		{"~1.12", "1.12"},
		{">=2.0.0", "2.0.0"},
		{"v3.1.4", "3.1.4"},
		{"1.14.0", "1.14.0"},
		{"", "latest"},
	}

	for _, tt := range tests {
		d := domain.PackageDependency{VersionConstraint: tt.constraint}
		if got := d.ResolvedVersion(); got != tt.want {
			t.Errorf("ResolvedVersion(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
