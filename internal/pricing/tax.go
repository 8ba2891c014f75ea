package pricing

import (
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// TaxableItem is the per-item view the tax engine needs for per-item taxes.
type TaxableItem struct {
	Name       string
	PriceCents int
	Quantity   int
	TotalCents int
}

// TaxResult is the tax engine's output. TotalTaxCents sums the per-tax
// integer amounts; each breakdown entry is already integer cents so no
// double-rounding occurs.
type TaxResult struct {
	TotalTaxCents     int
	Breakdown         types.TaxLines
	SubtotalCents     int
	TotalWithTaxCents int
}

// CalculateTaxes applies the restaurant's enabled taxes in list order.
// Per-item percentage taxes round each item's amount independently, which can
// diverge from the entire-order result for the same nominal rate; that
// divergence is intentional and preserved.
func CalculateTaxes(subtotalCents int, items []TaxableItem, taxes []models.TaxSetting, trace *Trace) TaxResult {
	result := TaxResult{
		SubtotalCents: subtotalCents,
		Breakdown:     types.TaxLines{},
	}

	for _, tax := range taxes {
		if !tax.Enabled {
			continue
		}

		var amount int
		switch {
		case tax.Type == enums.TaxTypePercentage && tax.ApplyTo == enums.TaxApplyToEntireOrder:
			amount = roundCents(float64(subtotalCents) * tax.Rate / 100)
		case tax.Type == enums.TaxTypePercentage && tax.ApplyTo == enums.TaxApplyToPerItem:
			for _, item := range items {
				amount += roundCents(float64(item.TotalCents) * tax.Rate / 100)
			}
		case tax.Type == enums.TaxTypeFixed && tax.ApplyTo == enums.TaxApplyToEntireOrder:
			amount = Cents(tax.Rate)
		case tax.Type == enums.TaxTypeFixed && tax.ApplyTo == enums.TaxApplyToPerItem:
			for _, item := range items {
				amount += Cents(tax.Rate) * item.Quantity
			}
		}

		result.TotalTaxCents += amount
		result.Breakdown = append(result.Breakdown, types.TaxLine{
			Name:        tax.Name,
			Rate:        tax.Rate,
			Type:        tax.Type,
			ApplyTo:     tax.ApplyTo,
			AmountCents: amount,
		})
		trace.taxApplied(tax.Name)
	}

	result.TotalWithTaxCents = subtotalCents + result.TotalTaxCents
	return result
}
