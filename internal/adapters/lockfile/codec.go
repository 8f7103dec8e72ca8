// Package lockfile persists resolved dependency snapshots as deterministic
// JSON lockfiles.
package lockfile

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// fileDoc is the serialized form of a lockfile.
type fileDoc struct {
	Version      string     `json:"version"`
	Dependencies []entryDoc `json:"dependencies"`
}

// entryDoc is the serialized form of one locked package.
type entryDoc struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Manager      string            `json:"package_manager"`
	Hash         string            `json:"hash,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty"`
	Features     []string          `json:"features,omitempty"`
	Options      map[string]string `json:"options,omitempty"`
}

// Encode renders a lockfile as indented JSON. Entries are sorted by package
// name so the same resolved set always produces byte-identical output
// regardless of fetch order.
func Encode(lf *domain.Lockfile) ([]byte, error) {
	doc := fileDoc{
		Version:      lf.Version,
		Dependencies: make([]entryDoc, 0, len(lf.Entries)),
	}
	for _, entry := range lf.Entries {
		doc.Dependencies = append(doc.Dependencies, entryDoc{
			Name:         entry.Name,
			Version:      entry.Version,
			Manager:      entry.Manager.String(),
			Hash:         entry.Hash,
			Dependencies: entry.Dependencies,
			Features:     entry.Features,
			Options:      entry.Options,
		})
	}
	slices.SortFunc(doc.Dependencies, func(a, b entryDoc) int {
		return strings.Compare(a.Name, b.Name)
	})

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, "failed to encode lockfile")
	}
	return buf.Bytes(), nil
}

// Decode parses lockfile JSON. Unknown fields are ignored so newer writers
// stay readable; entries missing a name, version, or package manager are
// rejected.
func Decode(data []byte) (*domain.Lockfile, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParse.Error())
	}
	if doc.Version == "" {
		return nil, zerr.With(domain.ErrLockfileParse, "reason", "missing format version")
	}

	lf := domain.NewLockfile()
	lf.Version = doc.Version
	for _, entry := range doc.Dependencies {
		if entry.Name == "" || entry.Version == "" || entry.Manager == "" {
			return nil, zerr.With(domain.ErrLockfileParse, "reason", "entry missing name, version, or package_manager")
		}
		manager, err := domain.ParsePackageManager(entry.Manager)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileParse.Error()), "package", entry.Name)
		}
		lf.Entries[entry.Name] = domain.LockfileEntry{
			Name:         entry.Name,
			Version:      entry.Version,
			Manager:      manager,
			Hash:         entry.Hash,
			Dependencies: entry.Dependencies,
			Features:     entry.Features,
			Options:      entry.Options,
		}
	}
	return lf, nil
}
