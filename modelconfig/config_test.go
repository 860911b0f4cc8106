package modelconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `openai:
  general: gpt-4o-mini
  strong: gpt-4o
  reason: o3-mini
google:
  general: gemini-2.0-flash
  reason: gemini-2.5-pro
groq:
  general: llama-3.1-8b-instant
`

const sampleTOML = `[openai]
general = "gpt-4o-mini"
strong = "gpt-4o"
reason = "o3-mini"

[google]
general = "gemini-2.0-flash"
reason = "gemini-2.5-pro"

[groq]
general = "llama-3.1-8b-instant"
`

const sampleJSONC = `{
  // OpenAI tiers
  "openai": {"general": "gpt-4o-mini", "strong": "gpt-4o", "reason": "o3-mini",},
  "google": {"general": "gemini-2.0-flash", "reason": "gemini-2.5-pro"},
  /* Groq only has a general tier */
  "groq": {"general": "llama-3.1-8b-instant"},
}
`

func sampleConfig() Config {
	return Config{
		"openai": {"general": "gpt-4o-mini", "strong": "gpt-4o", "reason": "o3-mini"},
		"google": {"general": "gemini-2.0-flash", "reason": "gemini-2.5-pro"},
		"groq":   {"general": "llama-3.1-8b-instant"},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config/models.yaml", FormatYAML},
		{"config/models.yml", FormatYAML},
		{"models.TOML", FormatTOML},
		{"models.json", FormatJSON},
		{"models.jsonc", FormatJSON},
		{"models", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForPath(tt.path))
		})
	}
}

func TestLoad_Formats(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "models.yaml", sampleYAML},
		{"toml", "models.toml", sampleTOML},
		{"jsonc", "models.jsonc", sampleJSONC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.file, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sampleConfig(), cfg)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "models.yaml", "\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml syntax", "bad.yaml", "openai: [general: gpt\n"},
		{"yaml wrong shape", "shape.yaml", "openai:\n  - gpt-4o\n"},
		{"toml syntax", "bad.toml", "[openai\ngeneral = "},
		{"json syntax", "bad.json", `{"openai": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.file, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, IsMalformed(err), "expected ErrMalformedConfig, got %v", err)
			assert.False(t, IsNotFound(err))
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestConfig_Accessors(t *testing.T) {
	cfg := sampleConfig()

	assert.Equal(t, []string{"google", "groq", "openai"}, cfg.Providers())
	assert.Equal(t, []string{"general", "reason", "strong"}, cfg.Tiers("openai"))
	assert.Empty(t, cfg.Tiers("missing"))

	m, ok := cfg.Lookup("google", "reason")
	assert.True(t, ok)
	assert.Equal(t, "gemini-2.5-pro", m)

	_, ok = cfg.Lookup("google", "strong")
	assert.False(t, ok)

	_, ok = cfg.Lookup("anthropic", "general")
	assert.False(t, ok)
}

func TestConfig_Clone(t *testing.T) {
	cfg := sampleConfig()
	clone := cfg.Clone()
	clone["openai"]["general"] = "changed"
	clone["new"] = map[string]string{"general": "x"}

	assert.Equal(t, "gpt-4o-mini", cfg["openai"]["general"])
	assert.NotContains(t, cfg, "new")
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, sampleConfig().Validate())
	})

	t.Run("missing general", func(t *testing.T) {
		cfg := sampleConfig()
		cfg["mistral"] = map[string]string{"strong": "mistral-large"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGeneralTierMissing)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "mistral")
	})

	t.Run("empty model", func(t *testing.T) {
		cfg := sampleConfig()
		cfg["openai"]["strong"] = "  "

		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyModel)
		assert.Contains(t, err.Error(), `"strong"`)
	})
}

func TestShippedConfigs(t *testing.T) {
	cfg, err := Load(filepath.Join("..", DefaultPath))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"google", "groq", "openai"}, cfg.Providers())

	p, err := LoadPolicy(filepath.Join("..", "config", "routing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}
