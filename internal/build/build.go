// Package build holds information stamped in at build time.
package build

// Version is the pin release version, "dev" unless overridden
// via -ldflags at build time.
var Version = "dev"
