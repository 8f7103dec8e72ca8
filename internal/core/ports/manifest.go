package ports

import "go.trai.ch/pin/internal/core/domain"

// ManifestLoader loads the dependency manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given working directory and returns
	// the declared dependencies plus resolution settings.
	Load(cwd string) (*domain.Manifest, error)
}
