// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Stax is the canonical application identifier used for filesystem paths and CLI branding.
	Stax = "stax"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
