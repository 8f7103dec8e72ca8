package config

// Pinfile represents the structure of the pin.yaml manifest file.
type Pinfile struct {
	Version      string          `yaml:"version"`
	Dependencies DeclarationsDTO `yaml:"dependencies"`
	Resolution   *ResolutionDTO  `yaml:"resolution"`
}

// DeclarationsDTO groups declared dependencies by scope.
type DeclarationsDTO struct {
	Runtime     []DependencyDTO `yaml:"runtime"`
	Build       []DependencyDTO `yaml:"build"`
	Test        []DependencyDTO `yaml:"test"`
	Development []DependencyDTO `yaml:"development"`
}

// DependencyDTO represents one declared dependency in the manifest.
type DependencyDTO struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	Manager  string            `yaml:"manager"`
	Optional bool              `yaml:"optional"`
	Features []string          `yaml:"features"`
	Options  map[string]string `yaml:"options"`
}

// ResolutionDTO represents the resolution settings in the manifest.
type ResolutionDTO struct {
	Strategy    string       `yaml:"strategy"`
	Conflicts   string       `yaml:"conflicts"`
	Parallelism int          `yaml:"parallelism"`
	Cache       *CacheDTO    `yaml:"cache"`
	Lockfile    *LockfileDTO `yaml:"lockfile"`
}

// CacheDTO represents the metadata cache settings. TTLSeconds is a pointer
// so an explicit 0 (entries never expire) is distinguishable from the field
// being absent.
type CacheDTO struct {
	Enabled    *bool `yaml:"enabled"`
	TTLSeconds *int  `yaml:"ttl_seconds"`
}

// LockfileDTO represents the lockfile settings.
type LockfileDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}
