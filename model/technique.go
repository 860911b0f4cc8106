package model

import "strings"

// Keyword groups used by InferTier, checked in this order.
// These are fixed and independent of modelconfig.Policy.ReasoningTechniques.
var (
	// ReasoningKeywords select TierReason.
	ReasoningKeywords = []string{"cot", "tot", "reason", "think"}

	// StrongKeywords select TierStrong when no reasoning keyword matched.
	StrongKeywords = []string{"strong", "complex", "advanced"}
)

// InferTier classifies a free-form technique string by keyword.
// Matching is a case-insensitive substring test; the first group with a
// hit wins and anything else is TierGeneral.
//
//	InferTier("CoT-Prompting")   // TierReason
//	InferTier("complex_summary") // TierStrong
//	InferTier("zero_shot")       // TierGeneral
func InferTier(technique string) Tier {
	lower := strings.ToLower(technique)

	if containsAny(lower, ReasoningKeywords) {
		return TierReason
	}
	if containsAny(lower, StrongKeywords) {
		return TierStrong
	}
	return TierGeneral
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
