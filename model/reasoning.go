package model

import (
	"slices"
	"strings"

	"github.com/randalmurphal/modelrouter/modelconfig"
)

// ShouldUseReasoningModel reports whether policy mandates reasoning-tier
// routing for technique. It always returns false when auto-routing is
// disabled. Otherwise the lower-cased technique matches when it equals a
// policy keyword or contains one.
//
// This classifier uses the policy's keyword list, not ReasoningKeywords,
// so it may disagree with InferTier.
func ShouldUseReasoningModel(policy modelconfig.Policy, technique string) bool {
	if !policy.AutoRouteReasoning {
		return false
	}

	lower := strings.ToLower(technique)
	if slices.Contains(policy.ReasoningTechniques, lower) {
		return true
	}
	for _, kw := range policy.ReasoningTechniques {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
