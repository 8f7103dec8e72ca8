package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rogpeppe/go-internal/lockedfile"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileStore = (*Store)(nil)

// Store reads and writes lockfiles on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read loads and parses the lockfile at path. A missing file is not an
// error: it returns nil, nil so callers can treat it as a first run.
func (s *Store) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	lf, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lf, nil
}

// Write atomically replaces the lockfile at path. A sidecar mutex file
// excludes concurrent writers; the content lands via temp file and rename
// so readers never observe a partial lockfile.
func (s *Store) Write(path string, lf *domain.Lockfile) error {
	data, err := Encode(lf)
	if err != nil {
		return err
	}

	mu := lockedfile.MutexAt(path + ".lock")
	unlock, err := mu.Lock()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to lock lockfile for writing"), "path", path)
	}
	defer unlock()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp lockfile"), "path", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // Write error takes precedence
		return zerr.With(zerr.Wrap(err, "failed to write temp lockfile"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temp lockfile"), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace lockfile"), "path", path)
	}
	return nil
}
