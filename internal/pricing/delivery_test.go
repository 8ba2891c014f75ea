package pricing

import (
	"math"
	"testing"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

func testTiers() []models.DeliveryPricingTier {
	return []models.DeliveryPricingTier{
		{Name: "far", DistanceCovered: 10, BaseFeeCents: 900, AdditionalFeePerUnitCents: 150},
		{Name: "near", DistanceCovered: 5, BaseFeeCents: 500, AdditionalFeePerUnitCents: 100},
	}
}

func TestCalculateDeliveryFeeTierBoundary(t *testing.T) {
	t.Parallel()

	exact := CalculateDeliveryFee(5, testTiers(), enums.DistanceUnitMI, nil)
	if exact.TierName != "near" || exact.DistanceFeeCents != 0 || exact.TotalFeeCents != 500 {
		t.Fatalf("distance 5: %+v, want near tier with zero distance fee", exact)
	}

	past := CalculateDeliveryFee(5.01, testTiers(), enums.DistanceUnitMI, nil)
	if past.TierName != "far" || past.TotalFeeCents != 900 {
		t.Fatalf("distance 5.01: %+v, want far tier base fee", past)
	}
}

func TestCalculateDeliveryFeeMarginalExcess(t *testing.T) {
	t.Parallel()

	tiers := []models.DeliveryPricingTier{
		{Name: "only", DistanceCovered: 5, BaseFeeCents: 500, AdditionalFeePerUnitCents: 100},
	}

	got := CalculateDeliveryFee(7.5, tiers, enums.DistanceUnitMI, nil)
	if got.TierName != "only" || got.DistanceFeeCents != 250 || got.TotalFeeCents != 750 {
		t.Fatalf("got %+v, want 2.5 excess units at 100 cents", got)
	}
}

func TestCalculateDeliveryFeeDefaultFallback(t *testing.T) {
	t.Parallel()

	tiers := append(testTiers(), models.DeliveryPricingTier{
		Name: "citywide", DistanceCovered: 8, BaseFeeCents: 700, IsDefault: true,
	})

	var trace Trace
	got := CalculateDeliveryFee(50, tiers, enums.DistanceUnitMI, &trace)
	if got.TierName != "citywide" {
		t.Fatalf("got tier %q, want default tier", got.TierName)
	}
	if trace.TierMatched != "citywide" {
		t.Fatalf("trace tier = %q", trace.TierMatched)
	}
}

func TestCalculateDeliveryFeeLargestBoundFallback(t *testing.T) {
	t.Parallel()

	got := CalculateDeliveryFee(50, testTiers(), enums.DistanceUnitMI, nil)
	if got.TierName != "far" {
		t.Fatalf("got tier %q, want largest bound", got.TierName)
	}
	// 40 excess units at 150 cents on top of the base fee
	if got.TotalFeeCents != 900+6000 {
		t.Fatalf("total = %d", got.TotalFeeCents)
	}
}

func TestCalculateDeliveryFeeNoTiers(t *testing.T) {
	t.Parallel()

	var trace Trace
	got := CalculateDeliveryFee(3, nil, enums.DistanceUnitMI, &trace)
	if got.TotalFeeCents != 0 {
		t.Fatalf("fee = %d, want 0", got.TotalFeeCents)
	}
	if len(trace.Notes) == 0 {
		t.Fatal("expected a trace note for missing tiers")
	}
}

func TestHaversine(t *testing.T) {
	t.Parallel()

	// Portland, OR to Seattle, WA is roughly 145 miles / 233 km great-circle
	portland := LatLng{Latitude: 45.5152, Longitude: -122.6784}
	seattle := LatLng{Latitude: 47.6062, Longitude: -122.3321}

	mi := Haversine(portland, seattle, enums.DistanceUnitMI)
	if mi < 143 || mi > 147 {
		t.Fatalf("miles = %v, want ~145", mi)
	}

	km := Haversine(portland, seattle, enums.DistanceUnitKM)
	if km < 230 || km > 236 {
		t.Fatalf("km = %v, want ~233", km)
	}

	// rounded to three decimal places
	if mi != math.Round(mi*1000)/1000 {
		t.Fatalf("miles not rounded to 3dp: %v", mi)
	}

	if zero := Haversine(portland, portland, enums.DistanceUnitMI); zero != 0 {
		t.Fatalf("same point distance = %v", zero)
	}
}
