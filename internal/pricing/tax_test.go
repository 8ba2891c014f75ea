package pricing

import (
	"testing"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

func TestCalculateTaxesPercentageEntireOrder(t *testing.T) {
	t.Parallel()

	taxes := []models.TaxSetting{
		{Name: "Sales Tax", Enabled: true, Rate: 8.5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
	}

	got := CalculateTaxes(1350, nil, taxes, nil)

	if got.TotalTaxCents != 115 {
		t.Fatalf("tax = %d, want 115", got.TotalTaxCents)
	}
	if got.TotalWithTaxCents != 1465 {
		t.Fatalf("total with tax = %d, want 1465", got.TotalWithTaxCents)
	}
	if len(got.Breakdown) != 1 || got.Breakdown[0].AmountCents != 115 {
		t.Fatalf("breakdown = %+v", got.Breakdown)
	}
}

func TestCalculateTaxesPerItemRoundingDiverges(t *testing.T) {
	t.Parallel()

	// three items at $0.33 each: per-item rounds 3×round(2.805)=9,
	// entire-order rounds round(8.415)=8
	items := []TaxableItem{
		{Name: "a", PriceCents: 33, Quantity: 1, TotalCents: 33},
		{Name: "b", PriceCents: 33, Quantity: 1, TotalCents: 33},
		{Name: "c", PriceCents: 33, Quantity: 1, TotalCents: 33},
	}

	perItem := CalculateTaxes(99, items, []models.TaxSetting{
		{Name: "t", Enabled: true, Rate: 8.5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToPerItem},
	}, nil)
	entire := CalculateTaxes(99, items, []models.TaxSetting{
		{Name: "t", Enabled: true, Rate: 8.5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
	}, nil)

	if perItem.TotalTaxCents != 9 {
		t.Fatalf("per-item tax = %d, want 9", perItem.TotalTaxCents)
	}
	if entire.TotalTaxCents != 8 {
		t.Fatalf("entire-order tax = %d, want 8", entire.TotalTaxCents)
	}
}

func TestCalculateTaxesFixed(t *testing.T) {
	t.Parallel()

	items := []TaxableItem{
		{Name: "a", PriceCents: 500, Quantity: 2, TotalCents: 1000},
		{Name: "b", PriceCents: 300, Quantity: 1, TotalCents: 300},
	}
	taxes := []models.TaxSetting{
		{Name: "bag fee", Enabled: true, Rate: 0.10, Type: enums.TaxTypeFixed, ApplyTo: enums.TaxApplyToPerItem},
		{Name: "surcharge", Enabled: true, Rate: 1.00, Type: enums.TaxTypeFixed, ApplyTo: enums.TaxApplyToEntireOrder},
	}

	got := CalculateTaxes(1300, items, taxes, nil)

	// bag fee: 10 cents × 3 units = 30; surcharge: 100 once
	if got.TotalTaxCents != 130 {
		t.Fatalf("tax = %d, want 130", got.TotalTaxCents)
	}
	if len(got.Breakdown) != 2 || got.Breakdown[0].AmountCents != 30 || got.Breakdown[1].AmountCents != 100 {
		t.Fatalf("breakdown = %+v", got.Breakdown)
	}
}

func TestCalculateTaxesDisabledRemovedEnabledRestores(t *testing.T) {
	t.Parallel()

	taxes := []models.TaxSetting{
		{Name: "Sales Tax", Enabled: true, Rate: 8.5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
		{Name: "City Tax", Enabled: true, Rate: 2.0, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
	}

	before := CalculateTaxes(1350, nil, taxes, nil)

	taxes[1].Enabled = false
	disabled := CalculateTaxes(1350, nil, taxes, nil)
	if len(disabled.Breakdown) != 1 {
		t.Fatalf("disabled tax still in breakdown: %+v", disabled.Breakdown)
	}
	if diff := before.TotalTaxCents - disabled.TotalTaxCents; diff != 27 {
		t.Fatalf("city tax removal changed total by %d, want 27", diff)
	}

	taxes[1].Enabled = true
	restored := CalculateTaxes(1350, nil, taxes, nil)
	if restored.TotalTaxCents != before.TotalTaxCents {
		t.Fatalf("re-enable: tax = %d, want %d", restored.TotalTaxCents, before.TotalTaxCents)
	}
}

func TestCalculateTaxesTraceRecordsApplied(t *testing.T) {
	t.Parallel()

	var trace Trace
	CalculateTaxes(1000, nil, []models.TaxSetting{
		{Name: "on", Enabled: true, Rate: 5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
		{Name: "off", Enabled: false, Rate: 5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
	}, &trace)

	if len(trace.TaxesApplied) != 1 || trace.TaxesApplied[0] != "on" {
		t.Fatalf("trace = %+v", trace.TaxesApplied)
	}
}
