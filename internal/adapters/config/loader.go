// Package config provides the manifest loader for pin.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the manifest filename looked up in the working
// directory.
const DefaultManifestName = "pin.yaml"

const defaultCacheTTL = 300 * time.Second

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	Filename string
}

// Load reads the manifest from the given working directory.
func (l *FileManifestLoader) Load(cwd string) (*domain.Manifest, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultManifestName
	}
	return Load(filepath.Join(cwd, filename))
}

// Load reads a manifest file from the given path.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var pinfile Pinfile
	if err := yaml.Unmarshal(data, &pinfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	manifest := &domain.Manifest{
		Resolution: defaultResolution(),
	}

	if manifest.Declarations.Runtime, err = mapDependencies(pinfile.Dependencies.Runtime); err != nil {
		return nil, err
	}
	if manifest.Declarations.Build, err = mapDependencies(pinfile.Dependencies.Build); err != nil {
		return nil, err
	}
	if manifest.Declarations.Test, err = mapDependencies(pinfile.Dependencies.Test); err != nil {
		return nil, err
	}
	if manifest.Declarations.Development, err = mapDependencies(pinfile.Dependencies.Development); err != nil {
		return nil, err
	}

	if err := applyResolution(&manifest.Resolution, pinfile.Resolution); err != nil {
		return nil, err
	}

	return manifest, nil
}

// defaultResolution returns the settings used when the manifest omits the
// resolution block.
func defaultResolution() domain.ResolutionConfig {
	return domain.ResolutionConfig{
		Strategy:        domain.StrategyEager,
		Conflicts:       domain.ConflictFirst,
		CacheEnabled:    true,
		CacheTTL:        defaultCacheTTL,
		Parallelism:     domain.DefaultParallelism,
		LockfileEnabled: true,
		LockfilePath:    domain.DefaultLockfileName,
	}
}

func mapDependencies(dtos []DependencyDTO) ([]domain.PackageDependency, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	deps := make([]domain.PackageDependency, 0, len(dtos))
	for _, dto := range dtos {
		dep := domain.PackageDependency{
			Name:              domain.NewInternedString(dto.Name),
			VersionConstraint: dto.Version,
			Manager:           domain.ManagerConan,
			Optional:          dto.Optional,
			Features:          dto.Features,
			Options:           dto.Options,
		}
		if dto.Manager != "" {
			manager, err := domain.ParsePackageManager(dto.Manager)
			if err != nil {
				return nil, zerr.With(err, "package", dto.Name)
			}
			dep.Manager = manager
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func applyResolution(cfg *domain.ResolutionConfig, dto *ResolutionDTO) error {
	if dto == nil {
		return nil
	}

	if dto.Strategy != "" {
		strategy, err := domain.ParseResolutionStrategy(dto.Strategy)
		if err != nil {
			return err
		}
		cfg.Strategy = strategy
	}
	if dto.Conflicts != "" {
		conflicts, err := domain.ParseConflictStrategy(dto.Conflicts)
		if err != nil {
			return err
		}
		cfg.Conflicts = conflicts
	}
	if dto.Parallelism > 0 {
		cfg.Parallelism = dto.Parallelism
	}
	if dto.Cache != nil {
		if dto.Cache.Enabled != nil {
			cfg.CacheEnabled = *dto.Cache.Enabled
		}
		if dto.Cache.TTLSeconds != nil && *dto.Cache.TTLSeconds >= 0 {
			cfg.CacheTTL = time.Duration(*dto.Cache.TTLSeconds) * time.Second
		}
	}
	if dto.Lockfile != nil {
		if dto.Lockfile.Enabled != nil {
			cfg.LockfileEnabled = *dto.Lockfile.Enabled
		}
		if dto.Lockfile.Path != "" {
			cfg.LockfilePath = dto.Lockfile.Path
		}
	}
	return nil
}
