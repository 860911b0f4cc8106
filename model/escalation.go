package model

// EscalationChain defines the order of tiers to try when a request made
// with a weaker tier fails.
type EscalationChain struct {
	// Tiers in ascending order of capability.
	Tiers []Tier

	// MaxAttempts is the maximum total attempts before giving up.
	MaxAttempts int
}

// DefaultEscalation goes general → strong → reason.
var DefaultEscalation = EscalationChain{
	Tiers:       []Tier{TierGeneral, TierStrong, TierReason},
	MaxAttempts: 3,
}

// NoEscalation retries the same tier.
var NoEscalation = EscalationChain{
	Tiers:       nil,
	MaxAttempts: 3,
}

// Next returns the tier to try after attempt failures with current.
// A tier not in the chain restarts at the chain's first tier; the top
// tier stays put. Returns ("", false) once MaxAttempts is reached.
func (e *EscalationChain) Next(current Tier, attempt int) (Tier, bool) {
	if attempt >= e.MaxAttempts {
		return "", false
	}
	if len(e.Tiers) == 0 {
		return current, true
	}

	idx := e.index(current)
	switch {
	case idx < 0:
		return e.Tiers[0], true
	case idx >= len(e.Tiers)-1:
		return current, true
	default:
		return e.Tiers[idx+1], true
	}
}

// CanEscalate returns true if current has a stronger tier after it.
func (e *EscalationChain) CanEscalate(current Tier) bool {
	idx := e.index(current)
	return idx >= 0 && idx < len(e.Tiers)-1
}

// Highest returns the strongest tier in the chain, or TierGeneral for an
// empty chain.
func (e *EscalationChain) Highest() Tier {
	if len(e.Tiers) == 0 {
		return TierGeneral
	}
	return e.Tiers[len(e.Tiers)-1]
}

func (e *EscalationChain) index(t Tier) int {
	for i, candidate := range e.Tiers {
		if candidate == t {
			return i
		}
	}
	return -1
}

// EscalationState tracks one escalating request.
type EscalationState struct {
	Chain     *EscalationChain
	Tier      Tier
	Attempt   int
	LastError error
}

// NewEscalationState starts at tier. A nil chain uses DefaultEscalation.
// An empty start tier begins at TierGeneral.
func NewEscalationState(chain *EscalationChain, tier Tier) *EscalationState {
	if chain == nil {
		chain = &DefaultEscalation
	}
	if tier == "" {
		tier = TierGeneral
	}
	return &EscalationState{Chain: chain, Tier: tier}
}

// RecordFailure records a failed attempt and escalates if possible.
// Returns true while more attempts remain.
func (s *EscalationState) RecordFailure(err error) bool {
	s.Attempt++
	s.LastError = err

	next, ok := s.Chain.Next(s.Tier, s.Attempt)
	if !ok {
		return false
	}
	s.Tier = next
	return true
}

// Exhausted returns true if all attempts have been used.
func (s *EscalationState) Exhausted() bool {
	return s.Attempt >= s.Chain.MaxAttempts
}

// PickEscalated resolves the model for the state's current tier.
func (r *Router) PickEscalated(provider Provider, state *EscalationState) (string, error) {
	return r.PickModel(provider, "", state.Tier)
}
