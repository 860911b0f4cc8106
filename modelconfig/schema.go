package modelconfig

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// tierEntry documents one provider entry. Only general is required;
// further tier names are allowed.
type tierEntry struct {
	General string `json:"general" jsonschema:"minLength=1,description=Fallback model used when a tier is not listed"`
	Strong  string `json:"strong,omitempty" jsonschema:"minLength=1,description=Model for complex or advanced techniques"`
	Reason  string `json:"reason,omitempty" jsonschema:"minLength=1,description=Model for reasoning techniques such as CoT and ToT"`
}

// configDocument is the schema root: provider name → tier entry.
type configDocument map[string]tierEntry

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
}

// ConfigSchema returns the JSON schema of a model config document.
func ConfigSchema() *jsonschema.Schema {
	s := newReflector().Reflect(configDocument{})
	s.Title = "Model routing configuration"
	s.Description = "Provider name mapped to tier name mapped to model identifier"
	return s
}

// PolicySchema returns the JSON schema of a routing policy document.
func PolicySchema() *jsonschema.Schema {
	s := newReflector().Reflect(&Policy{})
	s.Title = "Model routing policy"
	return s
}

// SchemaJSON renders a schema as indented JSON.
func SchemaJSON(s *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
