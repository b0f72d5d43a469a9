package tier

import "math"

// Tier represents a discrete status derived from a numeric value.
type Tier string

const (
	// TierGood indicates a score at or above the good threshold.
	TierGood Tier = "good"

	// TierWarning indicates a score between the ready and good thresholds.
	TierWarning Tier = "warning"

	// TierCritical indicates a score below the ready threshold.
	TierCritical Tier = "critical"

	// TierNotStarted indicates no work has been recorded for a module.
	TierNotStarted Tier = "not_started"

	// TierInProgress indicates a module with partial progress.
	TierInProgress Tier = "in_progress"

	// TierCompliant indicates a module meeting its target score.
	TierCompliant Tier = "compliant"
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}

// Shared score thresholds. Every consumer of the 60/80 cutoffs references
// these constants rather than restating the literals.
const (
	// ReadyScore is the minimum score at which a module counts as ready. A
	// module scoring exactly ReadyScore is ready, not needs-attention.
	ReadyScore = 60

	// GoodScore is the minimum score for the good readiness tier and for a
	// module to count as compliant.
	GoodScore = 80
)

// Boundary is one inclusive-lower threshold: values >= Min classify as Tier,
// unless a higher boundary already matched.
type Boundary struct {
	Min  float64
	Tier Tier
}

// Scale is an ordered set of boundaries, highest threshold first. The final
// boundary should use math.Inf(-1) so the scale is total over all values.
type Scale []Boundary

// Classify maps a value to a tier: boundaries are evaluated from the highest
// threshold down and the first boundary the value meets or exceeds wins,
// which guarantees a single deterministic tier at exact boundary values.
//
// NaN is treated as 0 so that an undefined score degrades to the lowest tier
// rather than producing an unclassified value.
func (s Scale) Classify(value float64) Tier {
	if math.IsNaN(value) {
		value = 0
	}

	for _, b := range s {
		if value >= b.Min {
			return b.Tier
		}
	}

	// Unreachable for well-formed scales ending at -Inf; fall back to the
	// lowest tier in the scale.
	if len(s) > 0 {
		return s[len(s)-1].Tier
	}
	return ""
}

// Readiness is the 3-tier dashboard scale: good at GoodScore and above,
// warning between ReadyScore and GoodScore, critical below ReadyScore.
var Readiness = Scale{
	{Min: GoodScore, Tier: TierGood},
	{Min: ReadyScore, Tier: TierWarning},
	{Min: math.Inf(-1), Tier: TierCritical},
}

// Pipeline is the module lifecycle scale: compliant at GoodScore and above,
// not_started at zero and below, in_progress between. Module scores are
// integral, so the in_progress boundary sits at 1.
var Pipeline = Scale{
	{Min: GoodScore, Tier: TierCompliant},
	{Min: 1, Tier: TierInProgress},
	{Min: math.Inf(-1), Tier: TierNotStarted},
}
