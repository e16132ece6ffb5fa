package build

// Overridden at build time with ldflags.
var (
	Version = "dev"     // nolint: gochecknoglobals
	Commit  = "uncommitted" // nolint: gochecknoglobals
	Time    = "unknown" // nolint: gochecknoglobals
)
