// Package version exposes build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build metadata as a single human-readable string.
func String() string {
	return Version + " (" + Commit + ", built " + Date + ")"
}
