package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

// PriceAdjustmentRule is a conditional pricing rule carried by a choice
// adjustment. A rule with a target option changes another selection's price;
// a fixed rule without a target overrides the owning choice's own price.
type PriceAdjustmentRule struct {
	TargetOptionID *uuid.UUID           `json:"target_option_id,omitempty"`
	TargetChoiceID *uuid.UUID           `json:"target_choice_id,omitempty"`
	AdjustmentType enums.AdjustmentType `json:"adjustment_type"`
	Value          float64              `json:"value"`
}

// IsSelfOverride reports whether the rule replaces the owning choice's price.
func (r PriceAdjustmentRule) IsSelfOverride() bool {
	return r.AdjustmentType == enums.AdjustmentTypeFixed && r.TargetOptionID == nil
}

// ChoiceAdjustment is the per-choice pricing override stored on a menu rule.
type ChoiceAdjustment struct {
	ChoiceID             uuid.UUID             `json:"choice_id"`
	PriceAdjustmentCents int                   `json:"price_adjustment_cents"`
	IsAvailable          bool                  `json:"is_available"`
	IsDefault            bool                  `json:"is_default"`
	PriceAdjustments     []PriceAdjustmentRule `json:"price_adjustments,omitempty"`
}

// ChoiceAdjustments is the JSONB column holding one entry per option choice.
type ChoiceAdjustments []ChoiceAdjustment

// Value serializes the adjustments to JSON.
func (c ChoiceAdjustments) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan decodes JSONB into the adjustment slice.
func (c *ChoiceAdjustments) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded ChoiceAdjustments
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*c = decoded
	return nil
}
