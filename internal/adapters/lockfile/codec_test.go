package lockfile_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/pin/internal/adapters/lockfile"
	"go.trai.ch/pin/internal/core/domain"
)

func sampleLockfile() *domain.Lockfile {
	lf := domain.NewLockfile()
	lf.Entries["spdlog"] = domain.LockfileEntry{
		Name:         "spdlog",
		Version:      "1.12.0",
		Manager:      domain.ManagerConan,
		Hash:         "00000000deadbeef",
		Dependencies: []string{"fmt"},
	}
	lf.Entries["fmt"] = domain.LockfileEntry{
		Name:    "fmt",
		Version: "10.1.0",
		Manager: domain.ManagerConan,
		Hash:    "00000000cafebabe",
		Features: []string{
			"header-only",
		},
		Options: map[string]string{"shared": "False"},
	}
	return lf
}

func TestEncode_SortedAndDeterministic(t *testing.T) {
	lf := sampleLockfile()

	first, err := lockfile.Encode(lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// fmt sorts before spdlog regardless of map iteration order.
	if fmtIdx, spdlogIdx := bytes.Index(first, []byte(`"fmt"`)), bytes.Index(first, []byte(`"spdlog"`)); fmtIdx < 0 || spdlogIdx < 0 || fmtIdx > spdlogIdx {
		t.Errorf("expected fmt entry before spdlog entry:\n%s", first)
	}

	for range 20 {
		again, err := lockfile.Encode(lf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("encoding is not deterministic")
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	data, err := lockfile.Encode(sampleLockfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lf, err := lockfile.Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lf.Version != domain.LockfileFormatVersion {
		t.Errorf("expected version %q, got %q", domain.LockfileFormatVersion, lf.Version)
	}
	entry, ok := lf.Entries["fmt"]
	if !ok {
		t.Fatal("expected fmt entry after round trip")
	}
	if entry.Version != "10.1.0" || entry.Manager != domain.ManagerConan || entry.Hash != "00000000cafebabe" {
		t.Errorf("fmt entry corrupted: %+v", entry)
	}
	if entry.Options["shared"] != "False" {
		t.Errorf("expected option shared=False, got %v", entry.Options)
	}
	if deps := lf.Entries["spdlog"].Dependencies; len(deps) != 1 || deps[0] != "fmt" {
		t.Errorf("expected spdlog dependencies [fmt], got %v", deps)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	data := []byte(`{
  "version": "1.0",
  "generated_by": "some future writer",
  "dependencies": [
    {"name": "fmt", "version": "10.1.0", "package_manager": "conan", "color": "blue"}
  ]
}`)

	lf, err := lockfile.Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lf.Entries["fmt"]; !ok {
		t.Error("expected fmt entry despite unknown fields")
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"version": "1.0",`},
		{"missing version", `{"dependencies": []}`},
		{"entry missing name", `{"version": "1.0", "dependencies": [{"version": "1.0.0", "package_manager": "conan"}]}`},
		{"entry missing version", `{"version": "1.0", "dependencies": [{"name": "fmt", "package_manager": "conan"}]}`},
		{"entry missing manager", `{"version": "1.0", "dependencies": [{"name": "fmt", "version": "1.0.0"}]}`},
		{"unknown manager", `{"version": "1.0", "dependencies": [{"name": "fmt", "version": "1.0.0", "package_manager": "apt"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lockfile.Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.name != "malformed json" && !errors.Is(err, domain.ErrLockfileParse) && !strings.Contains(err.Error(), domain.ErrLockfileParse.Error()) {
				t.Errorf("expected lockfile parse error, got %v", err)
			}
		})
	}
}
