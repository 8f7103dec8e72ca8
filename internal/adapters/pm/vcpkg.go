package pm

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// VcpkgProvider fetches dependency metadata through the vcpkg CLI.
type VcpkgProvider struct{}

// NewVcpkgProvider creates a new VcpkgProvider.
func NewVcpkgProvider() *VcpkgProvider {
	return &VcpkgProvider{}
}

// vcpkgInfo mirrors the parts of `vcpkg x-package-info --x-json` output we
// read. Dependencies may be plain names or objects with a name field.
type vcpkgInfo struct {
	Results map[string]struct {
		Dependencies []vcpkgDependency `json:"dependencies"`
	} `json:"results"`
}

type vcpkgDependency struct {
	Name string
}

// UnmarshalJSON accepts both the string and the object dependency forms.
func (d *vcpkgDependency) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		d.Name = name
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	d.Name = obj.Name
	return nil
}

// GetDependencies asks vcpkg for the declared dependencies of a port.
func (p *VcpkgProvider) GetDependencies(ctx context.Context, name, _ string, _ domain.PackageManager) ([]string, error) {
	//nolint:gosec // name is the declared package name
	cmd := exec.CommandContext(ctx, "vcpkg", "x-package-info", name, "--x-json")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			fetchErr := zerr.Wrap(exitErr, "vcpkg x-package-info failed")
			fetchErr = zerr.With(fetchErr, "port", name)
			return nil, zerr.With(fetchErr, "stderr", stderr)
		}
		return nil, zerr.With(zerr.Wrap(err, "vcpkg x-package-info failed"), "port", name)
	}

	var info vcpkgInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse vcpkg JSON output"), "port", name)
	}

	result, ok := info.Results[name]
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "port", name)
	}

	deps := make([]string, 0, len(result.Dependencies))
	for _, dep := range result.Dependencies {
		// vcpkg lists host tooling like vcpkg-cmake as dependencies too;
		// those are build machinery, not packages to resolve.
		if dep.Name == "" || strings.HasPrefix(dep.Name, "vcpkg-") {
			continue
		}
		deps = append(deps, dep.Name)
	}
	return deps, nil
}
