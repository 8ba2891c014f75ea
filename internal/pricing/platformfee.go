package pricing

import "github.com/felipeimp22/menuflow-backend/pkg/db/models"

// Platform fee rule outcomes.
const (
	FeeRuleDisabled       = "disabled"
	FeeRulePercentBelow   = "percentage_below_threshold"
	FeeRuleFlatAboveEqual = "flat_at_or_above_threshold"
)

// FeeQuote is the platform fee engine's output.
type FeeQuote struct {
	PlatformFeeCents int
	AppliedRule      string
}

// CalculateGlobalFee applies the marketplace fee rule to the subtotal.
// Exactly one branch executes: the percentage applies only while the subtotal
// is strictly below the threshold; at or above it the flat amount applies.
func CalculateGlobalFee(subtotalCents int, rule *models.GlobalFee) FeeQuote {
	if rule == nil || !rule.Enabled {
		return FeeQuote{AppliedRule: FeeRuleDisabled}
	}

	if subtotalCents < rule.ThresholdCents {
		return FeeQuote{
			PlatformFeeCents: roundCents(float64(subtotalCents) * rule.BelowPercent / 100),
			AppliedRule:      FeeRulePercentBelow,
		}
	}

	return FeeQuote{
		PlatformFeeCents: rule.AboveFlatCents,
		AppliedRule:      FeeRuleFlatAboveEqual,
	}
}
