// Package model picks a model identifier for a provider and a prompting
// technique.
//
// # Model Selection
//
// A Router reads the provider → tier → model configuration on every call
// and resolves the tier either explicitly or from the technique:
//
//	router := model.NewRouter(model.WithConfigPath("config/models.yaml"))
//	m, err := router.PickModel(model.ProviderOpenAI, "CoT-Prompting", "")
//	// "cot" selects TierReason; a provider without "reason" falls back to "general"
//
// Tiers are inferred by keyword, first match wins:
//   - TierReason: cot, tot, reason, think
//   - TierStrong: strong, complex, advanced
//   - TierGeneral: everything else
//
// # Reasoning Policy
//
// ShouldUseReasoningModel answers a separate question using a
// modelconfig.Policy supplied by the caller:
//
//	policy, _ := modelconfig.PolicyFromEnv(modelconfig.DefaultPolicy(), ".env")
//	if model.ShouldUseReasoningModel(policy, technique) { ... }
//
// # Tier Escalation
//
// Escalation chains retry with stronger tiers:
//
//	state := model.NewEscalationState(&model.DefaultEscalation, model.TierGeneral)
//	for !state.Exhausted() {
//	    m, err := router.PickEscalated(model.ProviderOpenAI, state)
//	    ...
//	    state.RecordFailure(err)
//	}
package model
