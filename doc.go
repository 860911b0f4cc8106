// Package modelrouter picks which language model to call for a provider
// and a prompting technique.
//
// Each subpackage can be used independently:
//
//   - modelconfig: locate, parse, validate, and watch the provider → tier → model config
//   - model: tier inference, the Router, reasoning policy checks, tier escalation
//   - tokens: context window estimates and token counting
//
// # Quick Start
//
// Picking a model:
//
//	import "github.com/randalmurphal/modelrouter/model"
//	m, err := model.PickModel(model.ProviderOpenAI, "CoT-Prompting", "", "config/models.yaml")
//
// Listing the configuration (empty when no file is found):
//
//	cfg, err := model.ListAvailableModels("config/models.yaml")
//
// Context windows:
//
//	import "github.com/randalmurphal/modelrouter/tokens"
//	limit := tokens.GetContextWindow("gemini-1.5-pro") // 1000000
//
// The configuration is read on every call. Nothing is cached, so every
// function is safe for concurrent use.
package modelrouter
