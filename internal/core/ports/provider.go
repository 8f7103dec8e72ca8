// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// MetadataProvider exposes package metadata from a package-manager backend.
// Conan, vcpkg, and CPM adapters implement it outside the resolution core.
//
//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type MetadataProvider interface {
	// GetDependencies returns the ordered dependency names of a package.
	//
	// The constraint is passed through opaquely; adapters decide how it maps
	// to their backend's query syntax. Implementations must honor context
	// cancellation. Failures wrap domain.ErrMetadataFetch.
	GetDependencies(ctx context.Context, name, constraint string, manager domain.PackageManager) ([]string, error)
}
