package modelconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by PolicyFromEnv.
const (
	EnvAutoRouteReasoning  = "MODELROUTER_AUTO_ROUTE_REASONING"
	EnvReasoningTechniques = "MODELROUTER_REASONING_TECHNIQUES"
)

// Policy controls reasoning auto-routing.
//
// ReasoningTechniques is deliberately separate from the fixed keyword list
// used for tier inference; the two classifiers may disagree.
type Policy struct {
	// AutoRouteReasoning enables reasoning-tier routing. When false, no
	// technique requires a reasoning model.
	AutoRouteReasoning bool `yaml:"auto_route_reasoning" toml:"auto_route_reasoning" json:"auto_route_reasoning"`

	// ReasoningTechniques are lower-case keywords. A technique matches when
	// it equals a keyword or contains one.
	ReasoningTechniques []string `yaml:"reasoning_techniques" toml:"reasoning_techniques" json:"reasoning_techniques,omitempty" validate:"dive,required"`
}

// DefaultPolicy returns auto-routing enabled with the common reasoning
// prompt techniques.
func DefaultPolicy() Policy {
	return Policy{
		AutoRouteReasoning: true,
		ReasoningTechniques: []string{
			"cot",
			"tot",
			"chain_of_thought",
			"tree_of_thought",
			"self_consistency",
			"reasoning",
		},
	}
}

// Clone returns a copy that shares no memory with p.
func (p Policy) Clone() Policy {
	out := p
	out.ReasoningTechniques = append([]string(nil), p.ReasoningTechniques...)
	return out
}

var validate = validator.New()

// Validate rejects empty or whitespace-only keywords; an empty keyword is
// a substring of every technique.
func (p Policy) Validate() error {
	fields := make(map[string]string)
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
		}
		for _, fe := range verrs {
			fields[fe.Namespace()] = fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag())
		}
	}
	for i, kw := range p.ReasoningTechniques {
		if kw != "" && strings.TrimSpace(kw) == "" {
			key := fmt.Sprintf("Policy.ReasoningTechniques[%d]", i)
			fields[key] = fmt.Sprintf("%s is blank", key)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Err: ErrInvalidPolicy, Fields: fields}
}

// normalize lower-cases and trims keywords, dropping duplicates.
func (p Policy) normalize() Policy {
	seen := make(map[string]bool, len(p.ReasoningTechniques))
	out := make([]string, 0, len(p.ReasoningTechniques))
	for _, kw := range p.ReasoningTechniques {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	p.ReasoningTechniques = out
	return p
}

// policyDocument is the on-disk shape. A pointer distinguishes an absent
// auto_route_reasoning key from an explicit false.
type policyDocument struct {
	AutoRouteReasoning  *bool    `yaml:"auto_route_reasoning" toml:"auto_route_reasoning" json:"auto_route_reasoning"`
	ReasoningTechniques []string `yaml:"reasoning_techniques" toml:"reasoning_techniques" json:"reasoning_techniques"`
}

// LoadPolicy reads a policy file. Keys missing from the file keep their
// DefaultPolicy values. The result is validated and normalized.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read routing policy: %w", err)
	}

	var doc policyDocument
	if err := decode(data, FormatForPath(path), &doc); err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}

	p := DefaultPolicy()
	if doc.AutoRouteReasoning != nil {
		p.AutoRouteReasoning = *doc.AutoRouteReasoning
	}
	if doc.ReasoningTechniques != nil {
		p.ReasoningTechniques = doc.ReasoningTechniques
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p.normalize(), nil
}

// PolicyFromEnv starts from base and applies EnvAutoRouteReasoning and
// EnvReasoningTechniques. Values are read from the given dotenv files
// first, then from the process environment, which wins. Missing dotenv
// files are ignored. The process environment is never modified.
func PolicyFromEnv(base Policy, dotenvFiles ...string) (Policy, error) {
	vars := make(map[string]string)
	for _, file := range dotenvFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Policy{}, fmt.Errorf("read dotenv %s: %w", file, err)
		}
		for k, v := range values {
			vars[k] = v
		}
	}
	for _, key := range []string{EnvAutoRouteReasoning, EnvReasoningTechniques} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	p := base.Clone()
	if raw, ok := vars[EnvAutoRouteReasoning]; ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Policy{}, &ValidationError{
				Err:    ErrInvalidPolicy,
				Fields: map[string]string{EnvAutoRouteReasoning: fmt.Sprintf("%s: %q is not a boolean", EnvAutoRouteReasoning, raw)},
			}
		}
		p.AutoRouteReasoning = enabled
	}
	if raw, ok := vars[EnvReasoningTechniques]; ok {
		p.ReasoningTechniques = splitList(raw)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p.normalize(), nil
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
