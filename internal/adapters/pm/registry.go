// Package pm provides the package manager metadata providers: one adapter
// per supported C/C++ package manager plus a registry that routes by
// manager.
package pm

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.MetadataProvider = (*Registry)(nil)

// Registry implements ports.MetadataProvider by dispatching each fetch to
// the provider registered for the dependency's package manager. Concurrent
// fetches for the same package collapse into one provider call.
type Registry struct {
	providers map[domain.PackageManager]ports.MetadataProvider
	group     singleflight.Group
}

// NewRegistry creates a Registry with the given per-manager providers.
func NewRegistry(providers map[domain.PackageManager]ports.MetadataProvider) *Registry {
	return &Registry{providers: providers}
}

// NewDefaultRegistry creates a Registry wired with the stock providers:
// conan and vcpkg shell out to their CLIs, cpm reads the static registry
// file next to the manifest.
func NewDefaultRegistry() *Registry {
	return NewRegistry(map[domain.PackageManager]ports.MetadataProvider{
		domain.ManagerConan: NewConanProvider(),
		domain.ManagerVcpkg: NewVcpkgProvider(),
		domain.ManagerCPM:   NewStaticProvider(DefaultRegistryFile),
	})
}

// GetDependencies routes the fetch to the provider for the given manager.
func (r *Registry) GetDependencies(ctx context.Context, name, constraint string, manager domain.PackageManager) ([]string, error) {
	provider, ok := r.providers[manager]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPackageManager, "manager", manager.String())
	}

	key := name + "@" + constraint + "/" + manager.String()
	v, err, _ := r.group.Do(key, func() (any, error) {
		return provider.GetDependencies(ctx, name, constraint, manager)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
