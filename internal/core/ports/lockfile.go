package ports

import "go.trai.ch/pin/internal/core/domain"

// LockfileStore persists lockfiles.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileStore interface {
	// Read loads and parses the lockfile at the given path.
	// Returns nil, nil if no lockfile exists yet.
	Read(path string) (*domain.Lockfile, error)

	// Write replaces the lockfile at the given path. The write is atomic
	// and excludes concurrent writers, so a reader never observes a
	// half-written file.
	Write(path string, lf *domain.Lockfile) error
}
