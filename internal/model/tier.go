package model

// Tier represents the priority bucket of a recommendation.
// Tiers are assigned from criterion scores via fixed thresholds and
// drive the ordering of the recommendation list.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed. Higher values mean higher urgency,
// so sorting descending yields CRITICAL first.
type Tier int

const (
	// TierExcellent indicates the criterion is already in great shape.
	// Messages at this tier confirm what to keep doing rather than
	// asking for changes. They sort last.
	TierExcellent Tier = iota

	// TierLow indicates a minor improvement opportunity.
	TierLow

	// TierMedium indicates a worthwhile improvement with visible impact.
	TierMedium

	// TierHigh indicates a significant weakness that should be
	// addressed soon.
	TierHigh

	// TierCritical indicates a severe weakness that actively hurts the
	// page. These recommendations always sort first.
	TierCritical
)

// String returns a human-readable representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "EXCELLENT"
	case TierLow:
		return "LOW"
	case TierMedium:
		return "MEDIUM"
	case TierHigh:
		return "HIGH"
	case TierCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Tier score thresholds. A score below the threshold falls into the
// corresponding tier; scores of 95 and above are excellent.
const (
	criticalBelow = 50.0
	highBelow     = 70.0
	mediumBelow   = 85.0
	lowBelow      = 95.0
)

// TierForScore maps a criterion score (0-100) to its priority tier.
func TierForScore(score float64) Tier {
	switch {
	case score < criticalBelow:
		return TierCritical
	case score < highBelow:
		return TierHigh
	case score < mediumBelow:
		return TierMedium
	case score < lowBelow:
		return TierLow
	default:
		return TierExcellent
	}
}
