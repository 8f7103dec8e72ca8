package pm

import (
	"context"
	"os"
	"sync"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultRegistryFile is the static registry filename looked up next to
// the manifest.
const DefaultRegistryFile = "pin-registry.yaml"

// StaticProvider serves dependency metadata from a local YAML registry
// file instead of a package manager CLI. CPM has no query interface, and
// air-gapped runs have no network, so the edge lists live in a checked-in
// file of the form:
//
//	packages:
//	  fmt: []
//	  spdlog: [fmt]
type StaticProvider struct {
	path string

	once     sync.Once
	loadErr  error
	packages map[string][]string
}

// NewStaticProvider creates a StaticProvider reading from the given file.
func NewStaticProvider(path string) *StaticProvider {
	return &StaticProvider{path: path}
}

type registryFile struct {
	Packages map[string][]string `yaml:"packages"`
}

// GetDependencies looks the package up in the registry file. The file is
// read once and reused for the life of the provider.
func (p *StaticProvider) GetDependencies(_ context.Context, name, _ string, _ domain.PackageManager) ([]string, error) {
	p.once.Do(p.load)
	if p.loadErr != nil {
		return nil, p.loadErr
	}

	deps, ok := p.packages[name]
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}
	return deps, nil
}

func (p *StaticProvider) load() {
	data, err := os.ReadFile(p.path) //nolint:gosec // path is provided by user
	if err != nil {
		p.loadErr = zerr.With(zerr.Wrap(err, "failed to read static registry"), "path", p.path)
		return
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		p.loadErr = zerr.With(zerr.Wrap(err, "failed to parse static registry"), "path", p.path)
		return
	}
	p.packages = file.Packages
}
