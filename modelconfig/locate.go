package modelconfig

import (
	"os"
	"path/filepath"
)

// DefaultPath is the config location used when the caller does not supply one.
const DefaultPath = "config/models.yaml"

// EnvConfigPath names the environment variable consulted by FromEnv
// candidates built with DefaultEnvCandidate.
const EnvConfigPath = "MODELROUTER_CONFIG"

// Candidate is one strategy for turning the requested path into a
// location to check.
type Candidate struct {
	// Name identifies the strategy in logs ("as-given", "install-root", ...).
	Name string

	// Resolve maps the requested path to a location. An empty result means
	// the strategy has nothing to offer and is skipped.
	Resolve func(requested string) string
}

// AsGiven checks the requested path exactly as supplied.
func AsGiven() Candidate {
	return Candidate{
		Name:    "as-given",
		Resolve: func(requested string) string { return requested },
	}
}

// RelativeTo checks a fixed subpath under root, ignoring the requested path.
// An empty root disables the candidate.
func RelativeTo(root, subpath string) Candidate {
	return Candidate{
		Name: "relative:" + root,
		Resolve: func(string) string {
			if root == "" {
				return ""
			}
			return filepath.Join(root, subpath)
		},
	}
}

// FromEnv checks the path held by the named environment variable.
func FromEnv(name string) Candidate {
	return Candidate{
		Name:    "env:" + name,
		Resolve: func(string) string { return os.Getenv(name) },
	}
}

// DefaultEnvCandidate reads EnvConfigPath.
func DefaultEnvCandidate() Candidate {
	return FromEnv(EnvConfigPath)
}

// InstallRoot returns the parent of the directory holding the running
// executable, so a binary at <root>/bin/tool resolves to <root>.
// Returns "" if the executable path cannot be determined.
func InstallRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// DefaultCandidates returns the standard search order: the requested path
// as given, then DefaultPath under the install root.
func DefaultCandidates() []Candidate {
	return []Candidate{
		AsGiven(),
		RelativeTo(InstallRoot(), DefaultPath),
	}
}

// Locate returns the first candidate location that names an existing
// regular file. When none does, it returns a *NotFoundError listing every
// attempted path and the current working directory.
func Locate(requested string, candidates ...Candidate) (string, error) {
	if requested == "" {
		requested = DefaultPath
	}
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	tried := make([]string, 0, len(candidates))
	for _, c := range candidates {
		path := c.Resolve(requested)
		if path == "" {
			continue
		}
		tried = append(tried, path)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", &NotFoundError{
		Requested: requested,
		Tried:     tried,
		WorkDir:   workDir(),
	}
}
