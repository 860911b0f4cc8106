package modelconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// GeneralTier is the tier every provider entry must define. It is the
// fallback for any tier a provider does not list.
const GeneralTier = "general"

// Config maps provider → tier → model identifier.
type Config map[string]map[string]string

// Format identifies an on-disk serialization.
type Format string

// Supported configuration formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension. Unknown
// extensions are treated as YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads and parses the configuration file at path.
// Parse failures wrap ErrMalformedConfig together with the parser's error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Requested: path, Tried: []string{path}, WorkDir: workDir()}
		}
		return nil, fmt.Errorf("read model config: %w", err)
	}

	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format. An empty document yields an
// empty Config.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	if err := decode(data, format, &cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// Resolve locates the requested config among candidates and loads it.
func Resolve(requested string, candidates ...Candidate) (Config, error) {
	path, err := Locate(requested, candidates...)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// decode unmarshals data into v, wrapping any failure in ErrMalformedConfig.
func decode(data []byte, format Format, v any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	case FormatJSON:
		err = json.Unmarshal(jsonc.ToJSON(data), v)
	default:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return nil
}

// Providers returns the configured provider names in sorted order.
func (c Config) Providers() []string {
	return sortedKeys(c)
}

// Tiers returns the tiers configured for provider in sorted order.
func (c Config) Tiers(provider string) []string {
	return sortedKeys(c[provider])
}

// Lookup returns the model for provider and tier without any fallback.
func (c Config) Lookup(provider, tier string) (string, bool) {
	tiers, ok := c[provider]
	if !ok {
		return "", false
	}
	m, ok := tiers[tier]
	return m, ok
}

// Validate checks that every provider defines the general tier and that
// no model identifier is empty. A missing general tier takes precedence
// as the reported sentinel.
func (c Config) Validate() error {
	fields := make(map[string]string)
	sentinel := ErrEmptyModel
	for _, provider := range c.Providers() {
		tiers := c[provider]
		if _, ok := tiers[GeneralTier]; !ok {
			fields[provider] = fmt.Sprintf("provider %q has no %q tier", provider, GeneralTier)
			sentinel = ErrGeneralTierMissing
			continue
		}
		for _, tier := range sortedKeys(tiers) {
			if strings.TrimSpace(tiers[tier]) == "" {
				fields[provider+"."+tier] = fmt.Sprintf("provider %q tier %q has an empty model", provider, tier)
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Err: sentinel, Fields: fields}
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for provider, tiers := range c {
		copied := make(map[string]string, len(tiers))
		for tier, m := range tiers {
			copied[tier] = m
		}
		out[provider] = copied
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func workDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "<unknown>"
	}
	return wd
}
