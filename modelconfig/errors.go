package modelconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates no candidate location held a configuration file.
	ErrConfigNotFound = errors.New("model config not found")

	// ErrMalformedConfig indicates the file exists but is not a provider → tier → model mapping.
	ErrMalformedConfig = errors.New("malformed model config")

	// ErrGeneralTierMissing indicates a provider entry without the required "general" tier.
	ErrGeneralTierMissing = errors.New("provider has no general tier")

	// ErrEmptyModel indicates a tier mapped to an empty model identifier.
	ErrEmptyModel = errors.New("empty model identifier")

	// ErrInvalidPolicy indicates a routing policy failed validation.
	ErrInvalidPolicy = errors.New("invalid routing policy")
)

// NotFoundError reports every location tried while resolving a config path.
type NotFoundError struct {
	Requested string   // Path the caller asked for
	Tried     []string // Candidate paths in the order they were checked
	WorkDir   string   // Working directory at the time of the lookup
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfigNotFound.Error())
	b.WriteString(". Tried:")
	for _, p := range e.Tried {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	fmt.Fprintf(&b, "\nCurrent working directory: %s", e.WorkDir)
	return b.String()
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// ValidationError collects per-field problems found while validating a
// Config or Policy.
type ValidationError struct {
	Err    error             // ErrGeneralTierMissing, ErrInvalidPolicy, ...
	Fields map[string]string // field or provider name → problem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	keys := sortedKeys(e.Fields)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, "; "))
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error means no configuration file exists.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

// IsMalformed checks if an error means the configuration could not be parsed.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedConfig)
}
