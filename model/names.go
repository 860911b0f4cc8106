package model

import (
	"strings"

	"github.com/randalmurphal/modelrouter/modelconfig"
)

// Provider is a provider key in the routing configuration.
// Any configured key is accepted; the constants name the usual ones.
type Provider string

// Well-known provider keys.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
	ProviderGroq   Provider = "groq"
)

// Tier represents a model capability tier. The empty Tier means "not
// specified" and asks the router to infer one from the technique.
type Tier string

// Tier constants in ascending order of capability.
const (
	TierGeneral Tier = modelconfig.GeneralTier
	TierStrong  Tier = "strong"
	TierReason  Tier = "reason"
)

// Tiers lists the known tiers in ascending order of capability.
var Tiers = []Tier{TierGeneral, TierStrong, TierReason}

// String returns the tier name.
func (t Tier) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierGeneral, TierStrong, TierReason:
		return true
	default:
		return false
	}
}

// ParseTier normalizes a tier name. Unknown names are returned lower-cased
// and trimmed, so configurations may define extra tiers.
func ParseTier(s string) Tier {
	return Tier(strings.ToLower(strings.TrimSpace(s)))
}
