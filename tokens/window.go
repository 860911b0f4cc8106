package tokens

import "strings"

// DefaultContextWindow is the conservative estimate used when no rule matches.
const DefaultContextWindow = 8_000

// ContextRule maps model name fragments to an approximate context window.
type ContextRule struct {
	Patterns []string
	Tokens   int
}

// ContextRules are evaluated top to bottom; the first rule with a pattern
// contained in the lower-cased model name wins. Order matters: "gpt-4o"
// and "gpt-4" share a rule, and families are grouped by provider.
var ContextRules = []ContextRule{
	// OpenAI
	{Patterns: []string{"gpt-4o", "o3", "o1", "gpt-4"}, Tokens: 128_000},
	{Patterns: []string{"gpt-3.5"}, Tokens: 16_385},

	// Google Gemini
	{Patterns: []string{"gemini-3"}, Tokens: 2_000_000},
	{Patterns: []string{"gemini-2"}, Tokens: 2_000_000},
	{Patterns: []string{"gemini-1.5"}, Tokens: 1_000_000},

	// Groq / open weights
	{Patterns: []string{"llama-3.1", "llama-3.2"}, Tokens: 131_072},
	{Patterns: []string{"deepseek-r1"}, Tokens: 65_536},
}

// GetContextWindow returns the approximate context window for a model
// identifier, or DefaultContextWindow if no rule matches. The estimate is
// independent of the routing configuration.
func GetContextWindow(model string) int {
	lower := strings.ToLower(model)
	for _, rule := range ContextRules {
		for _, p := range rule.Patterns {
			if strings.Contains(lower, p) {
				return rule.Tokens
			}
		}
	}
	return DefaultContextWindow
}

// FitsContextWindow reports whether text is estimated to fit in the
// model's context window.
func FitsContextWindow(model, text string) bool {
	return NewEstimatingCounter().FitsInLimit(text, GetContextWindow(model))
}
