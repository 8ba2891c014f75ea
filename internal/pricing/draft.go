package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// CalculateOrderDraft runs the full pricing pipeline: modifier resolution per
// line, subtotal, taxes, delivery fee, platform fee, tip, total. An unknown
// menu item aborts the calculation; every other failure degrades to zero or a
// fallback so a pricing request always completes with a deterministic number.
func CalculateOrderDraft(ctx context.Context, input DraftInput, catalog Catalog) (*OrderDraftResult, error) {
	result := &OrderDraftResult{
		Items:        make([]OrderItemResult, 0, len(input.Lines)),
		TaxBreakdown: types.TaxLines{},
		TipCents:     input.TipCents,
	}
	trace := &result.Trace

	taxable := make([]TaxableItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		item, err := catalog.MenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}

		rules, err := catalog.MenuRules(ctx, item.ID)
		if err != nil {
			return nil, err
		}

		options, err := catalog.Options(ctx, optionIDs(line.Selections))
		if err != nil {
			return nil, err
		}

		priced := PriceItem(item.BasePriceCents, rules, options, line.Selections, trace)
		qty := normalizeQty(line.Quantity)

		orderItem := OrderItemResult{
			MenuItemID:          item.ID,
			Name:                item.Name,
			BasePriceCents:      item.BasePriceCents,
			AdjustmentsCents:    priced.ModifierDeltaCents,
			FinalPriceCents:     priced.ItemTotalCents,
			Quantity:            qty,
			TotalCents:          priced.ItemTotalCents * qty,
			SelectedOptions:     selectedOptions(priced.Choices),
			SpecialInstructions: line.SpecialInstructions,
		}
		result.Items = append(result.Items, orderItem)
		result.SubtotalCents += orderItem.TotalCents

		taxable = append(taxable, TaxableItem{
			Name:       orderItem.Name,
			PriceCents: orderItem.FinalPriceCents,
			Quantity:   orderItem.Quantity,
			TotalCents: orderItem.TotalCents,
		})
	}

	if len(input.Taxes) > 0 {
		taxes := CalculateTaxes(result.SubtotalCents, taxable, input.Taxes, trace)
		result.TaxCents = taxes.TotalTaxCents
		result.TaxBreakdown = taxes.Breakdown
	}

	if input.OrderType == enums.OrderTypeDelivery {
		result.DeliveryFeeCents, result.DeliveryDetails = resolveDeliveryFee(ctx, input, trace)
	}

	fee := CalculateGlobalFee(result.SubtotalCents, input.GlobalFee)
	result.PlatformFeeCents = fee.PlatformFeeCents

	result.TotalCents = result.SubtotalCents + result.TaxCents + result.DeliveryFeeCents + result.TipCents + result.PlatformFeeCents
	return result, nil
}

// resolveDeliveryFee prefers the external provider's estimate and falls back
// to tier math on any provider failure. Missing tiers and missing distance
// both degrade to a zero fee; upstream configuration owns that case.
func resolveDeliveryFee(ctx context.Context, input DraftInput, trace *Trace) (int, *types.DeliveryDetails) {
	if input.Provider != nil && input.PickupAddress != "" && input.DeliveryAddress != "" {
		estimate, err := input.Provider.GetEstimate(ctx, EstimateRequest{
			PickupAddress:   input.PickupAddress,
			DeliveryAddress: input.DeliveryAddress,
		})
		if err == nil && estimate != nil {
			return estimate.FeeCents, &types.DeliveryDetails{
				Provider:      estimate.Provider,
				Distance:      estimate.Distance,
				Unit:          input.DistanceUnit,
				TotalFeeCents: estimate.FeeCents,
			}
		}
		trace.providerFallback(fmt.Sprintf("provider estimate failed: %v", err))
	}

	distance, ok := resolveDistance(input)
	if !ok {
		trace.note("no distance available for delivery fee")
		return 0, nil
	}

	quote := CalculateDeliveryFee(distance, input.DeliveryTiers, input.DistanceUnit, trace)
	return quote.TotalFeeCents, &types.DeliveryDetails{
		TierName:         quote.TierName,
		Distance:         quote.Distance,
		Unit:             quote.Unit,
		BaseFeeCents:     quote.BaseFeeCents,
		DistanceFeeCents: quote.DistanceFeeCents,
		TotalFeeCents:    quote.TotalFeeCents,
	}
}

// resolveDistance prefers a caller-supplied distance over haversine between
// the restaurant and delivery coordinates.
func resolveDistance(input DraftInput) (float64, bool) {
	if input.Distance != nil {
		return *input.Distance, true
	}
	if input.RestaurantLocation != nil && input.DeliveryLocation != nil {
		return Haversine(*input.RestaurantLocation, *input.DeliveryLocation, input.DistanceUnit), true
	}
	return 0, false
}

func optionIDs(selections []Selection) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(selections))
	ids := make([]uuid.UUID, 0, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.OptionID]; ok {
			continue
		}
		seen[sel.OptionID] = struct{}{}
		ids = append(ids, sel.OptionID)
	}
	return ids
}

func selectedOptions(choices []ChoicePricing) types.SelectedOptions {
	selected := make(types.SelectedOptions, 0, len(choices))
	for _, choice := range choices {
		selected = append(selected, types.SelectedOption{
			OptionID:   choice.OptionID,
			ChoiceID:   choice.ChoiceID,
			OptionName: choice.OptionName,
			ChoiceName: choice.ChoiceName,
			Quantity:   choice.Quantity,
			PriceCents: choice.TotalCents,
		})
	}
	return selected
}
