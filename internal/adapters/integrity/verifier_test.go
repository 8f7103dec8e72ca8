package integrity_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/pin/internal/adapters/integrity"
	"go.trai.ch/pin/internal/core/domain"
)

func TestHashEntry_Deterministic(t *testing.T) {
	v := integrity.NewVerifier()

	first := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, []string{"header-only", "fmt-install"}, map[string]string{"shared": "False", "fPIC": "True"})
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}

	// Feature order and map iteration order must not matter.
	again := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, []string{"fmt-install", "header-only"}, map[string]string{"fPIC": "True", "shared": "False"})
	if first != again {
		t.Errorf("hash depends on input order: %q vs %q", first, again)
	}
}

func TestHashEntry_SensitiveToInputs(t *testing.T) {
	v := integrity.NewVerifier()
	base := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, nil)

	variants := []string{
		v.HashEntry("fmt", "10.1.1", domain.ManagerConan, nil, nil),
		v.HashEntry("fmt", "10.1.0", domain.ManagerVcpkg, nil, nil),
		v.HashEntry("fmt", "10.1.0", domain.ManagerConan, []string{"header-only"}, nil),
		v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, map[string]string{"shared": "True"}),
		v.HashEntry("fmtlib", "10.1.0", domain.ManagerConan, nil, nil),
	}
	for i, variant := range variants {
		if variant == base {
			t.Errorf("variant %d should hash differently from base", i)
		}
	}
}

func TestHashEntry_IgnoresOptionValues(t *testing.T) {
	v := integrity.NewVerifier()

	off := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, map[string]string{"shared": "False"})
	on := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, map[string]string{"shared": "True"})
	if off != on {
		t.Errorf("option values must not enter the digest: %q vs %q", off, on)
	}

	// A different key set still changes the digest.
	extra := v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, map[string]string{"shared": "True", "fPIC": "True"})
	if extra == on {
		t.Errorf("option keys must enter the digest")
	}
}

func TestValidate(t *testing.T) {
	v := integrity.NewVerifier()

	decls := &domain.Declarations{
		Runtime: []domain.PackageDependency{
			{Name: domain.NewInternedString("fmt"), VersionConstraint: "^10.1.0", Manager: domain.ManagerConan},
			{Name: domain.NewInternedString("gtest"), VersionConstraint: "1.14.0", Manager: domain.ManagerConan},
		},
	}
	g, err := domain.BuildGraph(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lf := domain.NewLockfile()
	lf.Entries["fmt"] = domain.LockfileEntry{
		Name:    "fmt",
		Version: "10.1.0",
		Manager: domain.ManagerConan,
		Hash:    v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, nil),
	}
	lf.Entries["gtest"] = domain.LockfileEntry{
		Name:    "gtest",
		Version: "1.14.0",
		Manager: domain.ManagerConan,
		Hash:    v.HashEntry("gtest", "1.14.0", domain.ManagerConan, nil, nil),
	}

	if err := v.Validate(lf, g); err != nil {
		t.Fatalf("expected fresh lockfile to validate, got: %v", err)
	}

	// Drift one entry: the declaration moved to a different version.
	g2, err := domain.BuildGraph(&domain.Declarations{
		Runtime: []domain.PackageDependency{
			{Name: domain.NewInternedString("fmt"), VersionConstraint: "^11.0.0", Manager: domain.ManagerConan},
			{Name: domain.NewInternedString("gtest"), VersionConstraint: "1.14.0", Manager: domain.ManagerConan},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = v.Validate(lf, g2)
	if !errors.Is(err, domain.ErrLockfileStale) {
		t.Fatalf("expected ErrLockfileStale, got %v", err)
	}
	if !strings.Contains(err.Error(), "stale") && !strings.Contains(err.Error(), "lockfile") {
		t.Errorf("expected a lockfile staleness message, got %q", err.Error())
	}
}

func TestValidate_IgnoresRemovedPackages(t *testing.T) {
	v := integrity.NewVerifier()

	g, err := domain.BuildGraph(&domain.Declarations{
		Runtime: []domain.PackageDependency{
			{Name: domain.NewInternedString("fmt"), VersionConstraint: "10.1.0", Manager: domain.ManagerConan},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lf := domain.NewLockfile()
	lf.Entries["fmt"] = domain.LockfileEntry{
		Name: "fmt", Version: "10.1.0", Manager: domain.ManagerConan,
		Hash: v.HashEntry("fmt", "10.1.0", domain.ManagerConan, nil, nil),
	}
	// Entry for a package no longer declared anywhere.
	lf.Entries["obsolete"] = domain.LockfileEntry{
		Name: "obsolete", Version: "0.1.0", Manager: domain.ManagerConan, Hash: "ffffffffffffffff",
	}

	if err := v.Validate(lf, g); err != nil {
		t.Fatalf("removed packages must not make the lockfile stale, got: %v", err)
	}
}
