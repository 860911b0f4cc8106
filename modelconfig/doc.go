// Package modelconfig locates, parses, and validates model routing
// configuration.
//
// A routing configuration maps provider → tier → model identifier:
//
//	openai:
//	  general: gpt-4o-mini
//	  strong: gpt-4o
//	  reason: o3-mini
//
// # Resolution
//
// Callers may run with any working directory, so a requested path is
// tried against an ordered list of candidates. The first existing file
// wins:
//
//	path, err := modelconfig.Locate("config/models.yaml", modelconfig.DefaultCandidates()...)
//	if errors.Is(err, modelconfig.ErrConfigNotFound) {
//	    // err lists every attempted path and the working directory
//	}
//
// Resolve combines Locate and Load. Nothing is cached; every call reads
// the source again.
//
// # Formats
//
// The format is chosen by file extension: ".toml" is TOML, ".json" and
// ".jsonc" are JSON with comments, anything else is YAML.
//
// # Policy
//
// Policy holds the reasoning auto-routing switch and the recognized
// reasoning technique keywords. It is a plain value passed to whoever
// needs it; LoadPolicy and PolicyFromEnv build one from a file or from
// environment variables.
package modelconfig
