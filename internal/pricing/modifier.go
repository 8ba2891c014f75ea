package pricing

import (
	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// ChoicePricing is the resolved price of one selected choice. DirectCents is
// the first-pass price; CrossDeltaCents accumulates second-pass adjustments
// from other selections.
type ChoicePricing struct {
	OptionID        uuid.UUID
	ChoiceID        uuid.UUID
	OptionName      string
	ChoiceName      string
	Quantity        int
	DirectCents     int
	CrossDeltaCents int
	TotalCents      int
}

// ItemPricing is the modifier engine's output for one cart line, per unit of
// the menu item.
type ItemPricing struct {
	ItemTotalCents     int
	ModifierDeltaCents int
	Choices            []ChoicePricing
}

type resolvedSelection struct {
	pricing    *ChoicePricing
	adjustment *types.ChoiceAdjustment
}

// PriceItem resolves a menu item's base price plus its modifier selections
// into a single per-unit price. Directional cross-modifier rules run in a
// second pass against first-pass prices so an adjustment is never compounded
// by another rule's output. Selections that cannot be resolved against the
// rules or catalog are skipped and recorded on the trace.
func PriceItem(basePriceCents int, rules []models.MenuRule, options map[uuid.UUID]models.Option, selections []Selection, trace *Trace) ItemPricing {
	resolved := make([]resolvedSelection, 0, len(selections))

	// Direct pass: resolve each selection's own price in input order.
	for _, sel := range selections {
		rule := ruleForOption(rules, sel.OptionID)
		if rule == nil {
			trace.skipSelection(sel.OptionID, sel.ChoiceID, "no menu rule for option")
			continue
		}
		option, ok := options[sel.OptionID]
		if !ok {
			trace.skipSelection(sel.OptionID, sel.ChoiceID, "option not found")
			continue
		}
		choice := choiceByID(option.Choices, sel.ChoiceID)
		if choice == nil {
			trace.skipSelection(sel.OptionID, sel.ChoiceID, "choice not found")
			continue
		}
		adjustment := adjustmentForChoice(rule.ChoiceAdjustments, sel.ChoiceID)
		if adjustment == nil {
			trace.skipSelection(sel.OptionID, sel.ChoiceID, "no choice adjustment")
			continue
		}
		if !adjustment.IsAvailable || !choice.IsAvailable {
			trace.skipSelection(sel.OptionID, sel.ChoiceID, "choice not available")
			continue
		}

		qty := normalizeQty(sel.Quantity)
		direct := directPrice(choice.BasePriceCents, adjustment, qty)

		resolved = append(resolved, resolvedSelection{
			pricing: &ChoicePricing{
				OptionID:    sel.OptionID,
				ChoiceID:    sel.ChoiceID,
				OptionName:  option.Name,
				ChoiceName:  choice.Name,
				Quantity:    qty,
				DirectCents: direct,
			},
			adjustment: adjustment,
		})
	}

	// Cross pass: each selection's targeted rules adjust other selections,
	// computed against direct-pass prices and accumulated additively.
	for _, owner := range resolved {
		for _, rule := range owner.adjustment.PriceAdjustments {
			if rule.TargetOptionID == nil {
				continue
			}
			for _, target := range resolved {
				if target.pricing.OptionID != *rule.TargetOptionID {
					continue
				}
				if rule.TargetChoiceID != nil && target.pricing.ChoiceID != *rule.TargetChoiceID {
					continue
				}
				target.pricing.CrossDeltaCents += crossDelta(rule, target.pricing)
			}
		}
	}

	result := ItemPricing{Choices: make([]ChoicePricing, 0, len(resolved))}
	for _, entry := range resolved {
		entry.pricing.TotalCents = entry.pricing.DirectCents + entry.pricing.CrossDeltaCents
		result.ModifierDeltaCents += entry.pricing.TotalCents
		result.Choices = append(result.Choices, *entry.pricing)
	}
	result.ItemTotalCents = basePriceCents + result.ModifierDeltaCents
	return result
}

// directPrice resolves a choice's own price. A self-targeting fixed rule has
// the highest priority and replaces the price outright; otherwise the base
// plus per-item adjustment runs through the remaining self rules in order.
func directPrice(choiceBaseCents int, adjustment *types.ChoiceAdjustment, qty int) int {
	for _, rule := range adjustment.PriceAdjustments {
		if rule.IsSelfOverride() {
			return Cents(rule.Value) * qty
		}
	}

	running := (choiceBaseCents + adjustment.PriceAdjustmentCents) * qty
	for _, rule := range adjustment.PriceAdjustments {
		if rule.TargetOptionID != nil {
			continue
		}
		switch rule.AdjustmentType {
		case enums.AdjustmentTypeMultiplier:
			running = roundCents(float64(running) * rule.Value)
		case enums.AdjustmentTypeAddition:
			running += Cents(rule.Value) * qty
		}
	}
	return running
}

// crossDelta computes one targeted rule's contribution against the target's
// direct-pass price.
func crossDelta(rule types.PriceAdjustmentRule, target *ChoicePricing) int {
	switch rule.AdjustmentType {
	case enums.AdjustmentTypeAddition:
		return Cents(rule.Value) * target.Quantity
	case enums.AdjustmentTypeMultiplier:
		return roundCents(float64(target.DirectCents) * (rule.Value - 1))
	case enums.AdjustmentTypeFixed:
		return Cents(rule.Value)*target.Quantity - target.DirectCents
	default:
		return 0
	}
}

func ruleForOption(rules []models.MenuRule, optionID uuid.UUID) *models.MenuRule {
	for i := range rules {
		if rules[i].OptionID == optionID {
			return &rules[i]
		}
	}
	return nil
}

func choiceByID(choices []models.Choice, choiceID uuid.UUID) *models.Choice {
	for i := range choices {
		if choices[i].ID == choiceID {
			return &choices[i]
		}
	}
	return nil
}

func adjustmentForChoice(adjustments types.ChoiceAdjustments, choiceID uuid.UUID) *types.ChoiceAdjustment {
	for i := range adjustments {
		if adjustments[i].ChoiceID == choiceID {
			return &adjustments[i]
		}
	}
	return nil
}
